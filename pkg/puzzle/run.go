package puzzle

import "time"

// Run records one solve of a day: the answers, the digest of the input they
// were computed from, and how long the solve took. Runs are stored by the
// answer log.
type Run struct {
	RunID       string    `json:"run_id"`
	Day         int       `json:"day"`
	Part1       string    `json:"part1"`
	Part2       string    `json:"part2"`
	InputDigest string    `json:"input_digest"`
	DurationMS  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// Answer returns the answers stored in the run.
func (r Run) Answer() Answer {
	return Answer{Part1: r.Part1, Part2: r.Part2}
}

// Matches reports whether a fresh answer equals the recorded one. Parts that
// were not computed in the recorded run are not compared.
func (r Run) Matches(a Answer) bool {
	if r.Part1 != "" && r.Part1 != a.Part1 {
		return false
	}
	if r.Part2 != "" && r.Part2 != a.Part2 {
		return false
	}
	return true
}
