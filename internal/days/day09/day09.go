// Package day09 solves "Encoding Error" for the XMAS cipher: after a
// preamble, every number must be the sum of two of the numbers before it.
package day09

import (
	"fmt"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// DefaultPreamble is the window length.
const DefaultPreamble = 25

// FirstInvalid returns the first number after the preamble that is not the
// sum of two entries at different positions in the window before it.
func FirstInvalid(nums []int, preamble int) (int, error) {
	if preamble < 2 {
		return 0, puzzle.Invariantf("preamble %d is shorter than two numbers", preamble)
	}
	for i := preamble; i < len(nums); i++ {
		if !pairSums(nums[i-preamble:i], nums[i]) {
			return nums[i], nil
		}
	}
	return 0, fmt.Errorf("%w: every number follows the rule", puzzle.ErrNoSolution)
}

func pairSums(window []int, target int) bool {
	for a := range window {
		for b := a + 1; b < len(window); b++ {
			if window[a]+window[b] == target {
				return true
			}
		}
	}
	return false
}

// Weakness finds a contiguous run of at least two numbers summing to target
// and returns its smallest plus its largest value.
func Weakness(nums []int, target int) (int, error) {
	for i := range nums {
		sum := nums[i]
		lo, hi := nums[i], nums[i]
		for j := i + 1; j < len(nums); j++ {
			sum += nums[j]
			lo, hi = min(lo, nums[j]), max(hi, nums[j])
			if sum == target {
				return lo + hi, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: no contiguous run sums to %d", puzzle.ErrNoSolution, target)
}

// Solve reads one number per line. Param "preamble" overrides
// DefaultPreamble.
func Solve(data []byte, env puzzle.Env) (puzzle.Answer, error) {
	nums, err := input.Ints(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	invalid, err := FirstInvalid(nums, env.Int("preamble", DefaultPreamble))
	if err != nil {
		return puzzle.Answer{}, err
	}
	weak, err := Weakness(nums, invalid)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(invalid, weak), nil
}
