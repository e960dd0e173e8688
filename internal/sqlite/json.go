package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// timeFormat is RFC 3339 with a fixed nanosecond width.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// runJSON is one line of runs.jsonl.
type runJSON struct {
	RunID       string `json:"run_id"`
	Day         int    `json:"day"`
	Part1       string `json:"part1"`
	Part2       string `json:"part2"`
	InputDigest string `json:"input_digest"`
	DurationMS  int64  `json:"duration_ms"`
	CreatedAt   string `json:"created_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func toRunJSON(r puzzle.Run) runJSON {
	return runJSON{
		RunID:       r.RunID,
		Day:         r.Day,
		Part1:       r.Part1,
		Part2:       r.Part2,
		InputDigest: r.InputDigest,
		DurationMS:  r.DurationMS,
		CreatedAt:   formatTime(r.CreatedAt),
	}
}

func (j runJSON) run() (puzzle.Run, error) {
	created, err := time.Parse(timeFormat, j.CreatedAt)
	if err != nil {
		return puzzle.Run{}, fmt.Errorf("parsing created_at %q: %w", j.CreatedAt, err)
	}
	return puzzle.Run{
		RunID:       j.RunID,
		Day:         j.Day,
		Part1:       j.Part1,
		Part2:       j.Part2,
		InputDigest: j.InputDigest,
		DurationMS:  j.DurationMS,
		CreatedAt:   created,
	}, nil
}
