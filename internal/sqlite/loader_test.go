package sqlite

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), dbFile))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}
	return db
}

func writeRuns(t *testing.T, dir string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, runsJSONL), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInsertRunSQL(t *testing.T) {
	want := "INSERT INTO runs (run_id, day, part1, part2, input_digest, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
	if insertRunSQL != want {
		t.Errorf("insertRunSQL = %q", insertRunSQL)
	}
}

func TestDecodeRun(t *testing.T) {
	tests := []struct {
		name string
		rec  string
		ok   bool
	}{
		{"valid", `{"run_id":"a","day":1,"created_at":"2020-12-01T00:00:00.000000000Z"}`, true},
		{"unknown field", `{"run_id":"a","day":1,"extra":true,"created_at":"2020-12-01T00:00:00.000000000Z"}`, true},
		{"no id", `{"day":1,"created_at":"2020-12-01T00:00:00.000000000Z"}`, false},
		{"day zero", `{"run_id":"a","day":0,"created_at":"2020-12-01T00:00:00.000000000Z"}`, false},
		{"wrong type", `{"run_id":"a","day":"one","created_at":"2020-12-01T00:00:00.000000000Z"}`, false},
		{"bad time", `{"run_id":"a","day":1,"created_at":"2020-12-01"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := decodeRun(json.RawMessage(tt.rec))
			if ok != tt.ok {
				t.Errorf("decodeRun ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestRunJSONRoundTrip(t *testing.T) {
	run := puzzle.Run{
		RunID:       "id",
		Day:         23,
		Part1:       "67384529",
		Part2:       "149245887792",
		InputDigest: "digest",
		DurationMS:  1200,
		CreatedAt:   time.Date(2020, 12, 23, 6, 0, 0, 42, time.UTC),
	}
	j := toRunJSON(run)
	if j.CreatedAt != "2020-12-23T06:00:00.000000042Z" {
		t.Errorf("created_at = %q", j.CreatedAt)
	}
	got, err := j.run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != run {
		t.Errorf("got %+v, want %+v", got, run)
	}
}

func TestFormatTimeSortsLexically(t *testing.T) {
	a := formatTime(time.Date(2020, 12, 1, 0, 0, 1, 0, time.UTC))
	b := formatTime(time.Date(2020, 12, 1, 0, 0, 1, 5, time.UTC))
	c := formatTime(time.Date(2020, 12, 1, 1, 0, 0, 0, time.FixedZone("E", 2*3600)))
	if !(c < a && a < b) {
		t.Errorf("unexpected order: %s %s %s", a, b, c)
	}
}

func TestLoadRunsJSONL(t *testing.T) {
	dir := t.TempDir()
	writeRuns(t, dir,
		`{"run_id":"a","day":1,"part1":"1","part2":"2","input_digest":"x","duration_ms":4,"created_at":"2020-12-01T00:00:00.000000000Z"}`,
		`{"run_id":"b","day":2,"part1":"3","part2":"","input_digest":"y","duration_ms":5,"created_at":"2020-12-02T00:00:00.000000000Z"}`,
		`garbage`,
		`{"run_id":"a","day":1,"created_at":"2020-12-03T00:00:00.000000000Z"}`,
	)

	db := openTestDB(t)
	n, err := loadRunsJSONL(db, dir)
	if err != nil {
		t.Fatalf("loadRunsJSONL failed: %v", err)
	}
	if n != 2 {
		t.Errorf("loaded %d runs, want 2", n)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("runs table has %d rows, want 2", count)
	}

	var part1 string
	if err := db.QueryRow("SELECT part1 FROM runs WHERE run_id = 'a'").Scan(&part1); err != nil {
		t.Fatal(err)
	}
	if part1 != "1" {
		t.Errorf("first record for a must win, got part1 %q", part1)
	}
}

func TestLoadRunsJSONLEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := initJSONLFile(dir); err != nil {
		t.Fatal(err)
	}
	n, err := loadRunsJSONL(openTestDB(t), dir)
	if err != nil {
		t.Fatalf("loadRunsJSONL failed: %v", err)
	}
	if n != 0 {
		t.Errorf("loaded %d runs from empty file", n)
	}
}

func TestLoadRunsJSONLMissingFile(t *testing.T) {
	if _, err := loadRunsJSONL(openTestDB(t), t.TempDir()); err == nil {
		t.Error("expected error for missing runs.jsonl")
	}
}
