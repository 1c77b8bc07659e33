package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

// WriteJSON writes the element table as indented JSON
func WriteJSON(path string, table types.ElementTable) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
