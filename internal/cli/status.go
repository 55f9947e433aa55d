package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ComputerCraftr/SecureMacOS/internal/pf"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the ruleset is installed and the live pf state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newEnv(cmd)

		installed := pf.Installed(env.Fs, env.Paths)
		if installed {
			fmt.Fprintf(env.Out, "Anchor %q is installed\n", pf.AnchorName)
		} else {
			fmt.Fprintf(env.Out, "Anchor %q is not installed\n", pf.AnchorName)
		}

		if err := env.Ctl.ShowStatus(); err != nil {
			return err
		}
		if installed {
			fmt.Fprintf(env.Out, "Active rules for anchor %q:\n", pf.AnchorName)
			return env.Ctl.ShowAnchorRules(pf.AnchorName)
		}
		return nil
	},
}
