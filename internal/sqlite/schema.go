package sqlite

// Schema DDL for the answer log. Timestamps are stored as fixed-width UTC
// text so that string order is time order.
const (
	createRuns = `CREATE TABLE runs (
    run_id TEXT PRIMARY KEY,
    day INTEGER NOT NULL,
    part1 TEXT NOT NULL,
    part2 TEXT NOT NULL,
    input_digest TEXT NOT NULL,
    duration_ms INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	idxRunsDay    = `CREATE INDEX idx_runs_day ON runs(day, created_at);`
	idxRunsDigest = `CREATE INDEX idx_runs_digest ON runs(day, input_digest, created_at);`
)

// schemaDDL lists every statement executed on Attach, tables first.
var schemaDDL = []string{
	createRuns,
	idxRunsDay,
	idxRunsDigest,
}
