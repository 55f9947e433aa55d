package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ComputerCraftr/SecureMacOS/internal/pf"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the ruleset and restore pf.conf",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUninstall(cmd)
	},
}

func runUninstall(cmd *cobra.Command) error {
	env := newEnv(cmd)
	err := pf.Uninstall(env)
	recordOperation(ActionUninstall, err == nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Uninstall complete")
	return nil
}
