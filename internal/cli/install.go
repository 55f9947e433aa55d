package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ComputerCraftr/SecureMacOS/internal/pf"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the ruleset into the " + pf.AnchorName + " anchor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		persist, _ := cmd.Flags().GetBool("persist")
		return runInstall(cmd, persist)
	},
}

func init() {
	installCmd.Flags().Bool("persist", false, "Also install a LaunchDaemon that re-enables pf at boot")
}

func runInstall(cmd *cobra.Command, persist bool) error {
	env := newEnv(cmd)
	err := pf.Install(env, persist)
	recordOperation(ActionInstall, err == nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Install complete")
	return nil
}
