package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ComputerCraftr/SecureMacOS/internal/pf"
)

var reinstallCmd = &cobra.Command{
	Use:   "reinstall",
	Short: "Uninstall, then install the ruleset from scratch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		persist, _ := cmd.Flags().GetBool("persist")
		return runReinstall(cmd, persist)
	},
}

func init() {
	reinstallCmd.Flags().Bool("persist", false, "Also install a LaunchDaemon that re-enables pf at boot")
}

func runReinstall(cmd *cobra.Command, persist bool) error {
	env := newEnv(cmd)
	err := reinstall(env, persist)
	recordOperation(ActionReinstall, err == nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Reinstall complete")
	return nil
}

// reinstall runs uninstall then install unconditionally, whether or not
// anything was installed to begin with.
func reinstall(env pf.Env, persist bool) error {
	if err := pf.Uninstall(env); err != nil {
		return err
	}
	return pf.Install(env, persist)
}
