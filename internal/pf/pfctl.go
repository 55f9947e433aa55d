package pf

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Controller is the narrow pfctl surface the tool depends on. Rule syntax
// validation and activation semantics live entirely behind it; only the
// exit status is observed.
type Controller interface {
	LoadAnchor(anchor, rulesFile string) error
	Enable() error
	ShowAnchorRules(anchor string) error
	ShowStatus() error
	ReloadConfig(confFile string) error
}

// Pfctl shells out to pfctl with output inherited, so verification and
// status listings land directly on the user's terminal.
type Pfctl struct{}

func (Pfctl) run(args ...string) error {
	cmd := exec.Command("pfctl", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pfctl %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

func (p Pfctl) LoadAnchor(anchor, rulesFile string) error {
	return p.run("-a", anchor, "-f", rulesFile)
}

func (p Pfctl) Enable() error {
	return p.run("-e")
}

func (p Pfctl) ShowAnchorRules(anchor string) error {
	return p.run("-a", anchor, "-s", "rules")
}

func (p Pfctl) ShowStatus() error {
	return p.run("-s", "info")
}

func (p Pfctl) ReloadConfig(confFile string) error {
	return p.run("-f", confFile)
}
