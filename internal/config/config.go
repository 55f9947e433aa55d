// Package config loads the ambient settings. The pf paths themselves are
// fixed system locations and intentionally not configurable.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/ComputerCraftr/SecureMacOS/internal/audit"
	"github.com/ComputerCraftr/SecureMacOS/internal/history"
)

type Settings struct {
	AuditLog      string
	HistoryDB     string
	AssumeDefault bool
}

// Load reads /etc/securemacos/config.yml if present, then the
// SECUREMACOS_* environment. A missing config file is fine.
func Load() Settings {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/securemacos")

	v.SetEnvPrefix("securemacos")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("audit_log", audit.DefaultLogFile)
	v.SetDefault("history_db", history.DefaultDBPath)
	v.SetDefault("assume_default", false)

	_ = v.ReadInConfig()

	return Settings{
		AuditLog:      v.GetString("audit_log"),
		HistoryDB:     v.GetString("history_db"),
		AssumeDefault: v.GetBool("assume_default"),
	}
}
