// Package pf installs and removes the SecureMacOS ruleset in a dedicated
// pf anchor and keeps /etc/pf.conf wired to it.
package pf

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Env bundles the resources install and uninstall act on: the filesystem
// holding pf.conf and the anchor file, the pfctl controller, and the
// writer for progress output. Tests substitute a memory filesystem and a
// fake controller.
type Env struct {
	Fs    afero.Fs
	Paths Paths
	Ctl   Controller
	Out   io.Writer
}

// NewEnv returns an Env against the real filesystem and stdout.
func NewEnv(ctl Controller) Env {
	return Env{
		Fs:    afero.NewOsFs(),
		Paths: DefaultPaths(),
		Ctl:   ctl,
		Out:   os.Stdout,
	}
}
