package pf

import "github.com/spf13/afero"

// Installed reports whether the ruleset is currently in place: pf.conf
// references the anchor and the anchor rule file exists. Only used to pick
// the default action for the prompt; install and uninstall stay idempotent
// regardless.
func Installed(fs afero.Fs, paths Paths) bool {
	data, err := afero.ReadFile(fs, paths.Conf)
	if err != nil || !HasAnchorReference(string(data)) {
		return false
	}
	exists, err := afero.Exists(fs, paths.Anchor)
	return err == nil && exists
}
