// Package audit appends a JSON-lines trail of completed operations.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const DefaultLogFile = "/var/log/securemacos/audit.log"

// Event appends one JSON line describing a completed operation.
func Event(logFile, eventType string, details interface{}) error {
	entry := map[string]interface{}{
		"id":         uuid.NewString(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"event_type": eventType,
		"details":    details,
	}

	logJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling audit log entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return fmt.Errorf("creating audit log directory: %w", err)
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening audit log file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(string(logJSON) + "\n"); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}

	return nil
}

// ParseEntry decodes one line of the audit log.
func ParseEntry(line string) (map[string]interface{}, error) {
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return nil, fmt.Errorf("unmarshaling audit entry: %w", err)
	}
	return entry, nil
}
