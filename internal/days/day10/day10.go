// Package day10 solves "Adapter Array": chain every joltage adapter from the
// outlet (0) to the device (highest adapter + 3).
package day10

import (
	"slices"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// MaxGap is the largest joltage step an adapter accepts.
const MaxGap = 3

// Chain returns the outlet, the sorted adapters and the device. Every step
// must be between 1 and MaxGap jolts.
func Chain(adapters []int) ([]int, error) {
	chain := append([]int{0}, adapters...)
	slices.Sort(chain)
	chain = append(chain, chain[len(chain)-1]+MaxGap)
	for i := 1; i < len(chain); i++ {
		if gap := chain[i] - chain[i-1]; gap < 1 || gap > MaxGap {
			return nil, puzzle.Invariantf("gap of %d jolts between %d and %d", gap, chain[i-1], chain[i])
		}
	}
	return chain, nil
}

// Gaps multiplies the number of 1-jolt steps by the number of 3-jolt steps.
func Gaps(chain []int) int {
	var ones, threes int
	for i := 1; i < len(chain); i++ {
		switch chain[i] - chain[i-1] {
		case 1:
			ones++
		case 3:
			threes++
		}
	}
	return ones * threes
}

// Arrangements counts the subsets of adapters that still connect the outlet
// to the device.
func Arrangements(chain []int) int {
	ways := make([]int, len(chain))
	ways[0] = 1
	for i := 1; i < len(chain); i++ {
		for j := i - 1; j >= 0 && chain[i]-chain[j] <= MaxGap; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(ways)-1]
}

// Solve reads one adapter rating per line.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	adapters, err := input.Ints(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	chain, err := Chain(adapters)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(Gaps(chain), Arrangements(chain)), nil
}
