// Package day01 solves "Report Repair": find the expense entries that sum to
// a target and multiply them.
package day01

import (
	"fmt"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// DefaultTarget is the sum the entries must reach.
const DefaultTarget = 2020

// Solve reads one entry per line. Param "target" overrides DefaultTarget.
func Solve(data []byte, env puzzle.Env) (puzzle.Answer, error) {
	entries, err := input.Ints(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	target := env.Int("target", DefaultTarget)

	p1, err := Pair(entries, target)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := Triple(entries, target)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(p1, p2), nil
}

// Pair returns the product of two distinct entries summing to target.
func Pair(entries []int, target int) (int, error) {
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if seen[target-e] {
			return e * (target - e), nil
		}
		seen[e] = true
	}
	return 0, fmt.Errorf("%w: no two entries sum to %d", puzzle.ErrNoSolution, target)
}

// Triple returns the product of three distinct entries summing to target.
func Triple(entries []int, target int) (int, error) {
	for i, a := range entries {
		seen := make(map[int]bool, len(entries))
		for _, b := range entries[i+1:] {
			if seen[target-a-b] {
				return a * b * (target - a - b), nil
			}
			seen[b] = true
		}
	}
	return 0, fmt.Errorf("%w: no three entries sum to %d", puzzle.ErrNoSolution, target)
}
