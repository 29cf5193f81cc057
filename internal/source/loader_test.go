package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDir_MissingDirectory(t *testing.T) {
	records, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestLoadDir_MixedFormatsSorted(t *testing.T) {
	dir := t.TempDir()

	report := `{"sessions": [{"sessionId": "s2", "lastActivity": "2026-08-02T09:00:00Z", "totalTokens": 200}]}`
	jsonl := `{"session_id": "s1", "timestamp": "2026-08-01T09:00:00Z", "token_usage": {"total": 100}}`

	writeFile(t, filepath.Join(dir, "report.json"), report)
	writeFile(t, filepath.Join(dir, "stream.jsonl"), jsonl)
	writeFile(t, filepath.Join(dir, "ignored.txt"), "not an export")

	records, err := LoadDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].SessionID != "s1" || records[1].SessionID != "s2" {
		t.Errorf("records out of order: %q, %q", records[0].SessionID, records[1].SessionID)
	}
}

func TestLoadDir_EmptyDirectory(t *testing.T) {
	records, err := LoadDir(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
