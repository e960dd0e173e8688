package puzzle

import (
	"fmt"

	"go.uber.org/zap"
)

// Solver computes the answers for one day from the raw contents of its input
// file. A Solver never mutates shared state; the same input and parameters
// always produce the same Answer.
type Solver func(input []byte, env Env) (Answer, error)

// Env carries the tunables and the logger a Solver may use.
type Env struct {
	Params Params
	Log    *zap.Logger
}

// NewEnv returns an Env with empty parameters and a no-op logger.
func NewEnv() Env {
	return Env{Params: ParamMap{}, Log: zap.NewNop()}
}

// Int returns the named parameter or def when it is not set.
func (e Env) Int(key string, def int) int {
	if e.Params == nil {
		return def
	}
	return e.Params.Int(key, def)
}

// Logger returns the Env logger, falling back to a no-op logger.
func (e Env) Logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Params looks up integer tunables for a single day (preamble sizes, round
// counts, targets).
type Params interface {
	Int(key string, def int) int
}

// ParamMap is an in-memory Params.
type ParamMap map[string]int

// Int implements Params.
func (m ParamMap) Int(key string, def int) int {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Answer holds the result of both puzzle parts. An empty part was not
// computed for this input.
type Answer struct {
	Part1 string `json:"part1"`
	Part2 string `json:"part2,omitempty"`
}

// Answers formats two values into an Answer. A nil value leaves the part
// empty.
func Answers(part1, part2 any) Answer {
	return Answer{Part1: format(part1), Part2: format(part2)}
}

func format(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Parts returns the computed parts in order, skipping empty ones.
func (a Answer) Parts() []string {
	var parts []string
	if a.Part1 != "" {
		parts = append(parts, a.Part1)
	}
	if a.Part2 != "" {
		parts = append(parts, a.Part2)
	}
	return parts
}
