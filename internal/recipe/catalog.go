package recipe

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// LoadCatalog reads the bundled recipe set from dir. The directory
// holds an index.json manifest listing the recipe files, plus one JSON
// document per recipe. Individual files that fail to parse are logged
// and skipped; only a missing or unreadable manifest is an error.
func LoadCatalog(dir string, log *slog.Logger) ([]Recipe, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "index.json"))
	if err != nil {
		return nil, fmt.Errorf("read catalog index: %w", err)
	}

	var files []string
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, fmt.Errorf("parse catalog index: %w", err)
	}

	recipes := make([]Recipe, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("skipping catalog recipe", "file", name, "error", err)
			continue
		}
		var r Recipe
		if err := json.Unmarshal(data, &r); err != nil {
			log.Warn("skipping malformed catalog recipe", "file", name, "error", err)
			continue
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}
