// Package day06 solves "Custom Customs".
package day06

import (
	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// answers is a set of questions a..z as a bitmask.
type answers uint32

func parseAnswers(line string) (answers, error) {
	var a answers
	for _, c := range line {
		if c < 'a' || c > 'z' {
			return 0, puzzle.Parsef(0, line, "question %q is not a..z", c)
		}
		a |= 1 << (c - 'a')
	}
	return a, nil
}

func (a answers) count() int {
	n := 0
	for ; a != 0; a &= a - 1 {
		n++
	}
	return n
}

// Group returns how many questions anyone in the group answered yes to and
// how many everyone answered yes to.
func Group(lines []string) (anyone, everyone int, err error) {
	var union answers
	all := ^answers(0)
	for _, line := range lines {
		a, err := parseAnswers(line)
		if err != nil {
			return 0, 0, err
		}
		union |= a
		all &= a
	}
	return union.count(), all.count(), nil
}

// Solve sums both counts over every group.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	var sumAny, sumAll int
	for _, group := range input.Sections(data) {
		anyone, everyone, err := Group(group)
		if err != nil {
			return puzzle.Answer{}, err
		}
		sumAny += anyone
		sumAll += everyone
	}
	return puzzle.Answers(sumAny, sumAll), nil
}
