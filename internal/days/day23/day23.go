// Package day23 solves "Crab Cups".
package day23

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/cups"
	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Defaults for the "moves", "cups" and "bigmoves" params.
const (
	DefaultMoves    = 100
	DefaultCups     = 1_000_000
	DefaultBigMoves = 10_000_000
)

// Solve plays the labelled cups for "moves" rounds and reports the labels
// after cup 1, then plays a circle padded to "cups" cups for "bigmoves"
// rounds and multiplies the two labels after cup 1.
func Solve(data []byte, env puzzle.Env) (puzzle.Answer, error) {
	lines := input.Lines(data)
	if len(lines) != 1 {
		return puzzle.Answer{}, &puzzle.ParseError{Reason: "want one line of cup labels"}
	}
	labels, err := cups.Parse(lines[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	log := env.Logger()

	small, err := cups.New(labels, len(labels))
	if err != nil {
		return puzzle.Answer{}, err
	}
	if !small.Has(1) {
		return puzzle.Answer{}, puzzle.Invariantf("cup 1 is not in %v", labels)
	}
	small.Play(env.Int("moves", DefaultMoves))

	total, moves := env.Int("cups", DefaultCups), env.Int("bigmoves", DefaultBigMoves)
	log.Debug("playing large circle", zap.Int("cups", total), zap.Int("moves", moves))
	big, err := cups.New(labels, total)
	if err != nil {
		return puzzle.Answer{}, err
	}
	big.Play(moves)
	a := big.Next(1)
	b := big.Next(a)

	return puzzle.Answers(small.Order(1), a*b), nil
}
