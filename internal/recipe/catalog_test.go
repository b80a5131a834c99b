package recipe

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.json", `["pasta.json", "missing.json", "broken.json"]`)
	writeFile(t, dir, "pasta.json", `{"id": 1, "title": "Pasta", "servings": 4}`)
	writeFile(t, dir, "broken.json", `{not json`)

	recipes, err := LoadCatalog(dir, discardLogger())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("len = %d, want 1", len(recipes))
	}
	if recipes[0].Title != "Pasta" || recipes[0].ID != 1 {
		t.Fatalf("recipe = %+v", recipes[0])
	}
}

func TestLoadCatalog_MissingIndex(t *testing.T) {
	if _, err := LoadCatalog(t.TempDir(), discardLogger()); err == nil {
		t.Fatal("expected error for missing index")
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[int64]bool)
	for range 100 {
		id := NewID()
		if IsCatalogID(id) {
			t.Fatalf("generated id %d falls in catalog range", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}

	if !IsCatalogID(42) {
		t.Fatal("IsCatalogID(42) = false")
	}
	if IsCatalogID(0) {
		t.Fatal("IsCatalogID(0) = true")
	}
}
