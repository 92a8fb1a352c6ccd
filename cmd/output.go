// file: cmd/output.go
// version: 1.0.0
// guid: 7d9f1b3c-5e8a-4c0e-a2b4-6d8f0a2c4e6a

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osmlint/roadname-checker/internal/task"
)

// writeBatch writes the batch document to path as indented JSON.
func writeBatch(path string, batch *task.Batch) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
