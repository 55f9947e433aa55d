package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ComputerCraftr/SecureMacOS/internal/config"
	"github.com/ComputerCraftr/SecureMacOS/internal/pf"
	"github.com/ComputerCraftr/SecureMacOS/internal/ui"
)

const (
	ActionInstall   = "install"
	ActionReinstall = "reinstall"
	ActionUninstall = "uninstall"
)

// computeDefaultAction picks the prompt default: reinstall when the
// ruleset is already in place, install otherwise.
func computeDefaultAction(installed bool) string {
	if installed {
		return ActionReinstall
	}
	return ActionInstall
}

// resolveAction picks the action for this invocation. An explicit argument
// wins; otherwise prompt supplies one, with the empty answer meaning the
// computed default.
func resolveAction(arg, def string, prompt func(def string) (string, error)) (string, error) {
	action := strings.TrimSpace(arg)
	if action == "" {
		answer, err := prompt(def)
		if err != nil {
			return "", err
		}
		action = strings.TrimSpace(answer)
		if action == "" {
			action = def
		}
	}

	switch action {
	case ActionInstall, ActionReinstall, ActionUninstall:
		return action, nil
	default:
		return "", fmt.Errorf("unknown action %q (expected install, reinstall or uninstall)", action)
	}
}

// runDefault handles a bare invocation: detect the current state, prompt
// for an action with the computed default, dispatch.
func runDefault(cmd *cobra.Command, args []string) error {
	settings := config.Load()
	env := newEnv(cmd)
	def := computeDefaultAction(pf.Installed(env.Fs, env.Paths))

	prompt := promptPlain(cmd)
	if settings.AssumeDefault {
		prompt = func(def string) (string, error) { return def, nil }
	} else if isatty.IsTerminal(os.Stdin.Fd()) {
		prompt = promptSelector
	}

	action, err := resolveAction("", def, prompt)
	if err != nil {
		return err
	}

	switch action {
	case ActionInstall:
		return runInstall(cmd, false)
	case ActionReinstall:
		return runReinstall(cmd, false)
	default:
		return runUninstall(cmd)
	}
}

// promptPlain reads one line from the command's input stream.
func promptPlain(cmd *cobra.Command) func(def string) (string, error) {
	return func(def string) (string, error) {
		fmt.Fprintf(cmd.OutOrStdout(), "Action (install/reinstall/uninstall) [%s]: ", def)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading action: %w", err)
		}
		return scanner.Text(), nil
	}
}

func promptSelector(def string) (string, error) {
	actions := []ui.Action{
		{Name: ActionInstall, Description: "Write the ruleset and wire it into pf.conf"},
		{Name: ActionReinstall, Description: "Uninstall, then install from scratch"},
		{Name: ActionUninstall, Description: "Remove the ruleset and restore pf.conf"},
	}
	return ui.RunActionSelector(actions, def)
}
