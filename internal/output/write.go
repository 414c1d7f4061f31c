package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"extinv/internal/inventory"
)

// WriteDocument writes the inventory document to path as 2-space-indented
// JSON with a trailing newline, creating the output directory if absent.
// Key order is the struct order of inventory.Document, so reruns over
// unchanged inputs are byte-identical apart from generated_at.
func WriteDocument(path string, doc *inventory.Document) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}
