package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitJSONLFileCreatesEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := initJSONLFile(dir); err != nil {
		t.Fatalf("initJSONLFile failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, runsJSONL))
	if err != nil {
		t.Fatalf("failed to stat %s: %v", runsJSONL, err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestInitJSONLFileKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, runsJSONL)
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := initJSONLFile(dir); err != nil {
		t.Fatalf("initJSONLFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}\n" {
		t.Errorf("existing content overwritten: %q", data)
	}
}

func TestReadJSONLSkipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), runsJSONL)
	content := "{\"a\":1}\n\n{broken\n[1,2]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if string(records[1]) != "[1,2]" {
		t.Errorf("unexpected second record %s", records[1])
	}
}

func TestReadJSONLMissingFile(t *testing.T) {
	if _, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteJSONLReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, runsJSONL)
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	records := []json.RawMessage{json.RawMessage(`{"day":1}`), json.RawMessage(`{"day":2}`)}
	if err := writeJSONL(path, records); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\"day\":1}\n{\"day\":2}\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestWriteJSONLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), runsJSONL)
	if err := writeJSONL(path, nil); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestWriteJSONLMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", runsJSONL)
	if err := writeJSONL(path, nil); err == nil {
		t.Error("expected error when directory does not exist")
	}
}
