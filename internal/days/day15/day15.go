// Package day15 solves "Rambunctious Recitation", the elves' memory game:
// each turn speaks 0 if the last number was new, otherwise how many turns
// ago it was spoken before.
package day15

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Default turn counts for the two parts.
const (
	DefaultTurns1 = 2020
	DefaultTurns2 = 30_000_000
)

// Parse reads the comma separated starting numbers.
func Parse(data []byte) ([]int, error) {
	lines := input.Lines(data)
	if len(lines) != 1 {
		return nil, &puzzle.ParseError{Reason: "want one line of starting numbers"}
	}
	var start []int
	for _, f := range strings.Split(lines[0], ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return nil, puzzle.Parsef(1, lines[0], "%q is not a non-negative number", f)
		}
		start = append(start, n)
	}
	return start, nil
}

// Spoken returns the number spoken on the given 1-based turn. The last
// turn each number was spoken is kept in a slice indexed by the number;
// no spoken number can exceed the turn count or the largest starting value.
func Spoken(start []int, turns int) (int, error) {
	if len(start) == 0 {
		return 0, puzzle.Invariantf("no starting numbers")
	}
	if turns < 1 {
		return 0, puzzle.Invariantf("turn %d is before the game starts", turns)
	}
	if turns <= len(start) {
		return start[turns-1], nil
	}
	if turns > math.MaxInt32 {
		return 0, puzzle.Invariantf("turn %d does not fit the 32-bit turn table", turns)
	}

	size := turns
	for _, s := range start {
		size = max(size, s+1)
	}
	// last[n] is the turn n was last spoken, 0 when never.
	last := make([]int32, size)
	for i, s := range start[:len(start)-1] {
		last[s] = int32(i + 1)
	}

	cur := start[len(start)-1]
	for turn := len(start); turn < turns; turn++ {
		prev := last[cur]
		last[cur] = int32(turn)
		if prev == 0 {
			cur = 0
		} else {
			cur = turn - int(prev)
		}
	}
	return cur, nil
}

// Solve plays to param "turns1" and "turns2" turns.
func Solve(data []byte, env puzzle.Env) (puzzle.Answer, error) {
	start, err := Parse(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var answers [2]int
	for i, key := range []string{"turns1", "turns2"} {
		turns := env.Int(key, []int{DefaultTurns1, DefaultTurns2}[i])
		env.Logger().Debug("playing memory game", zap.Int("turns", turns))
		if answers[i], err = Spoken(start, turns); err != nil {
			return puzzle.Answer{}, err
		}
	}
	return puzzle.Answers(answers[0], answers[1]), nil
}
