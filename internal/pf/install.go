package pf

import (
	"fmt"

	"github.com/spf13/afero"
)

// Install writes the ruleset to the anchor file, takes the one-time
// pf.conf backup, wires the include block in if absent, then loads and
// verifies the rules through pfctl. Every step is idempotent; running
// install twice leaves the same files behind as running it once.
func Install(env Env, persist bool) error {
	fmt.Fprintf(env.Out, "Writing ruleset to %s...\n", env.Paths.Anchor)
	if err := afero.WriteFile(env.Fs, env.Paths.Anchor, []byte(Ruleset), 0644); err != nil {
		return fmt.Errorf("writing anchor file: %w", err)
	}

	if err := backupConf(env); err != nil {
		return err
	}

	data, err := afero.ReadFile(env.Fs, env.Paths.Conf)
	if err != nil {
		return fmt.Errorf("reading %s: %w", env.Paths.Conf, err)
	}
	conf := string(data)
	if HasAnchorReference(conf) {
		fmt.Fprintf(env.Out, "%s already references anchor %q\n", env.Paths.Conf, AnchorName)
	} else {
		fmt.Fprintf(env.Out, "Adding anchor %q to %s...\n", AnchorName, env.Paths.Conf)
		if err := afero.WriteFile(env.Fs, env.Paths.Conf, []byte(AppendAnchorBlock(conf)), 0644); err != nil {
			return fmt.Errorf("updating %s: %w", env.Paths.Conf, err)
		}
	}

	if persist {
		if err := InstallLaunchDaemon(env); err != nil {
			return err
		}
	}

	fmt.Fprintf(env.Out, "Loading rules for anchor %q...\n", AnchorName)
	if err := env.Ctl.LoadAnchor(AnchorName, env.Paths.Anchor); err != nil {
		return err
	}
	if err := env.Ctl.Enable(); err != nil {
		// pfctl -e exits non-zero when pf is already running
		fmt.Fprintln(env.Out, "pf already enabled")
	}
	fmt.Fprintf(env.Out, "Active rules for anchor %q:\n", AnchorName)
	if err := env.Ctl.ShowAnchorRules(AnchorName); err != nil {
		return err
	}
	return env.Ctl.ShowStatus()
}

// backupConf snapshots pf.conf verbatim before its first modification.
// An existing backup is never overwritten.
func backupConf(env Env) error {
	exists, err := afero.Exists(env.Fs, env.Paths.Backup)
	if err != nil {
		return fmt.Errorf("checking for backup: %w", err)
	}
	if exists {
		fmt.Fprintf(env.Out, "Backup %s already exists, leaving it untouched\n", env.Paths.Backup)
		return nil
	}
	data, err := afero.ReadFile(env.Fs, env.Paths.Conf)
	if err != nil {
		return fmt.Errorf("reading %s: %w", env.Paths.Conf, err)
	}
	if err := afero.WriteFile(env.Fs, env.Paths.Backup, data, 0644); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	fmt.Fprintf(env.Out, "Backed up %s to %s\n", env.Paths.Conf, env.Paths.Backup)
	return nil
}
