package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDefaultAction(t *testing.T) {
	assert.Equal(t, ActionReinstall, computeDefaultAction(true))
	assert.Equal(t, ActionInstall, computeDefaultAction(false))
}

func TestResolveAction(t *testing.T) {
	noPrompt := func(def string) (string, error) {
		t.Fatal("prompt must not run when an argument is given")
		return "", nil
	}
	answering := func(answer string) func(def string) (string, error) {
		return func(def string) (string, error) { return answer, nil }
	}

	tests := []struct {
		name    string
		arg     string
		def     string
		prompt  func(def string) (string, error)
		want    string
		wantErr bool
	}{
		{"explicit argument wins", "uninstall", ActionInstall, noPrompt, ActionUninstall, false},
		{"empty answer takes default", "", ActionReinstall, answering(""), ActionReinstall, false},
		{"answer overrides default", "", ActionReinstall, answering("uninstall"), ActionUninstall, false},
		{"answer is trimmed", "", ActionInstall, answering("  install  "), ActionInstall, false},
		{"unknown argument", "bogus", ActionInstall, noPrompt, "", true},
		{"unknown answer", "", ActionInstall, answering("bogus"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveAction(tt.arg, tt.def, tt.prompt)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveActionPromptError(t *testing.T) {
	failing := func(def string) (string, error) { return "", errors.New("no terminal") }

	_, err := resolveAction("", ActionInstall, failing)
	require.Error(t, err)
}

func TestUnknownSubcommandFailsValidation(t *testing.T) {
	// `securemacos bogus` must be a usage error before any hook runs.
	err := rootCmd.Args(rootCmd, []string{"bogus"})
	require.Error(t, err)
}
