package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventAppendsParseableLines(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "audit.log")

	require.NoError(t, Event(logFile, "pf_install", map[string]interface{}{
		"action":    "install",
		"succeeded": true,
	}))
	require.NoError(t, Event(logFile, "pf_uninstall", map[string]interface{}{
		"action":    "uninstall",
		"succeeded": false,
	}))

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	first, err := ParseEntry(lines[0])
	require.NoError(t, err)
	assert.Equal(t, "pf_install", first["event_type"])
	assert.NotEmpty(t, first["id"])
	assert.NotEmpty(t, first["timestamp"])

	second, err := ParseEntry(lines[1])
	require.NoError(t, err)
	assert.Equal(t, "pf_uninstall", second["event_type"])
}

func TestParseEntryRejectsGarbage(t *testing.T) {
	_, err := ParseEntry("not json")
	require.Error(t, err)
}
