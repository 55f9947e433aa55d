package cli

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ComputerCraftr/SecureMacOS/internal/audit"
	"github.com/ComputerCraftr/SecureMacOS/internal/config"
	"github.com/ComputerCraftr/SecureMacOS/internal/history"
	"github.com/ComputerCraftr/SecureMacOS/internal/pf"
)

func newEnv(cmd *cobra.Command) pf.Env {
	return pf.Env{
		Fs:    afero.NewOsFs(),
		Paths: pf.DefaultPaths(),
		Ctl:   pf.Pfctl{},
		Out:   cmd.OutOrStdout(),
	}
}

// recordOperation writes the audit event and history row for a finished
// action. Both are best-effort; bookkeeping never fails the operation.
func recordOperation(action string, succeeded bool) {
	settings := config.Load()

	if err := audit.Event(settings.AuditLog, "pf_"+action, map[string]interface{}{
		"action":    action,
		"succeeded": succeeded,
	}); err != nil {
		log.Printf("Warning: failed to write audit event: %v", err)
	}

	db, err := history.Open(settings.HistoryDB)
	if err != nil {
		log.Printf("Warning: failed to open history database: %v", err)
		return
	}
	defer db.Close()

	if err := db.Record(action, succeeded); err != nil {
		log.Printf("Warning: failed to record operation: %v", err)
	}
}
