// Package day19 solves "Monster Messages".
package day19

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/grammar"
	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Start is the rule every message must match.
const Start = 0

// Loops replaces rules 8 and 11 with their self-referencing forms.
var Loops = []string{"8: 42 | 42 8", "11: 42 31 | 42 11 31"}

// Solve counts messages matching rule 0, then counts again with Loops
// patched in. Part 2 is left empty when the rules have no 8 and 11 to
// replace.
func Solve(data []byte, env puzzle.Env) (puzzle.Answer, error) {
	sections := input.Sections(data)
	if len(sections) != 2 {
		return puzzle.Answer{}, &puzzle.ParseError{Reason: "want rules and messages separated by a blank line"}
	}
	rules, err := grammar.ParseRules(sections[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	messages := sections[1]

	m, err := grammar.New(rules, Start)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part1 := m.Count(messages)

	_, has8 := rules[8]
	_, has11 := rules[11]
	if !has8 || !has11 {
		env.Logger().Debug("rules 8 and 11 absent, skipping looped rules")
		return puzzle.Answers(part1, nil), nil
	}
	looped, err := rules.With(Loops...)
	if err != nil {
		return puzzle.Answer{}, err
	}
	m, err = grammar.New(looped, Start)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2 := m.Count(messages)
	env.Logger().Debug("matched messages", zap.Int("plain", part1), zap.Int("looped", part2))
	return puzzle.Answers(part1, part2), nil
}
