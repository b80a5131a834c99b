package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_WritesJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, closeLog := Open(path)
	log.Info("catalog loaded", "count", 3)
	if err := closeLog(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["msg"] != "catalog loaded" {
		t.Fatalf("msg = %v, want %q", record["msg"], "catalog loaded")
	}
	if record["count"] != float64(3) {
		t.Fatalf("count = %v, want 3", record["count"])
	}
}

func TestOpen_UnwritablePathDegradesToDiscard(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the parent directory should be.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	log, closeLog := Open(filepath.Join(blocker, "app.log"))
	if log == nil {
		t.Fatalf("Open returned nil logger")
	}
	log.Info("should not panic")
	if err := closeLog(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}
}
