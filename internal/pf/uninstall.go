package pf

import (
	"fmt"

	"github.com/spf13/afero"
)

// Uninstall removes the include block from pf.conf, deletes the anchor
// file and any boot LaunchDaemon, and reloads pf from the cleaned
// configuration. Safe to run repeatedly; a second run changes nothing.
func Uninstall(env Env) error {
	data, err := afero.ReadFile(env.Fs, env.Paths.Conf)
	if err != nil {
		return fmt.Errorf("reading %s: %w", env.Paths.Conf, err)
	}
	conf := string(data)
	if HasAnchorReference(conf) {
		stripped, removed := StripAnchorLines(conf)
		sidecar := env.Paths.Conf + ".bak"
		if err := afero.WriteFile(env.Fs, sidecar, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", sidecar, err)
		}
		if err := afero.WriteFile(env.Fs, env.Paths.Conf, []byte(stripped), 0644); err != nil {
			return fmt.Errorf("updating %s: %w", env.Paths.Conf, err)
		}
		fmt.Fprintf(env.Out, "Removed %d anchor line(s) from %s\n", removed, env.Paths.Conf)
	} else {
		fmt.Fprintf(env.Out, "%s has no reference to anchor %q\n", env.Paths.Conf, AnchorName)
	}

	exists, err := afero.Exists(env.Fs, env.Paths.Anchor)
	if err != nil {
		return fmt.Errorf("checking anchor file: %w", err)
	}
	if exists {
		if err := env.Fs.Remove(env.Paths.Anchor); err != nil {
			return fmt.Errorf("removing anchor file: %w", err)
		}
		fmt.Fprintf(env.Out, "Deleted %s\n", env.Paths.Anchor)
	} else {
		fmt.Fprintf(env.Out, "Anchor file %s not present, nothing to delete\n", env.Paths.Anchor)
	}

	if err := RemoveLaunchDaemon(env); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Reloading %s...\n", env.Paths.Conf)
	if err := env.Ctl.ReloadConfig(env.Paths.Conf); err != nil {
		return err
	}
	if err := env.Ctl.Enable(); err != nil {
		// pfctl -e exits non-zero when pf is already running
		fmt.Fprintln(env.Out, "pf already enabled")
	}
	return nil
}
