package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// runColumns are the runs table columns in insert order; they match the
// runs.jsonl field names.
var runColumns = []string{"run_id", "day", "part1", "part2", "input_digest", "duration_ms", "created_at"}

var insertRunSQL = fmt.Sprintf(
	"INSERT INTO runs (%s) VALUES (%s)",
	strings.Join(runColumns, ", "),
	strings.TrimSuffix(strings.Repeat("?, ", len(runColumns)), ", "),
)

func (j runJSON) args() []any {
	return []any{j.RunID, j.Day, j.Part1, j.Part2, j.InputDigest, j.DurationMS, j.CreatedAt}
}

// decodeRun parses one JSONL record. Records with wrong field types, no id,
// no day or an unreadable timestamp are rejected; unknown fields are
// ignored.
func decodeRun(rec json.RawMessage) (runJSON, bool) {
	var j runJSON
	if err := json.Unmarshal(rec, &j); err != nil {
		return runJSON{}, false
	}
	if j.RunID == "" || j.Day < 1 {
		return runJSON{}, false
	}
	if _, err := j.run(); err != nil {
		return runJSON{}, false
	}
	return j, true
}

// loadRunsJSONL reads runs.jsonl from dataDir into the runs table and
// returns how many records were loaded. Loading is transactional: all
// accepted records load or the table stays empty. Malformed lines, rejected
// records and duplicate ids are skipped.
func loadRunsJSONL(db *sql.DB, dataDir string) (int, error) {
	records, err := readJSONL(filepath.Join(dataDir, runsJSONL))
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertRunSQL)
	if err != nil {
		return 0, fmt.Errorf("preparing insert for runs: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for _, rec := range records {
		j, ok := decodeRun(rec)
		if !ok {
			continue
		}
		if _, err := stmt.Exec(j.args()...); err != nil {
			continue
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}
