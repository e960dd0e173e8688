// Package day03 solves "Toboggan Trajectory": count trees met on a slope
// through a map that repeats to the right.
package day03

import (
	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Slopes are the (right, down) steps multiplied together in part 2.
var Slopes = []grid.Point{{Col: 1, Row: 1}, {Col: 3, Row: 1}, {Col: 5, Row: 1}, {Col: 7, Row: 1}, {Col: 1, Row: 2}}

// ParseMap reads '#' as a tree and '.' as open ground.
func ParseMap(data []byte) (*grid.Grid[bool], error) {
	return grid.Parse(input.Lines(data), func(r rune) (bool, bool) {
		switch r {
		case '#':
			return true, true
		case '.':
			return false, true
		}
		return false, false
	})
}

// Trees counts the trees from the top-left corner down to the bottom row,
// moving by slope each step.
func Trees(m *grid.Grid[bool], slope grid.Point) int {
	n := 0
	for p := (grid.Point{}); ; p = p.Add(slope) {
		tree, ok := m.GetWrapped(p)
		if !ok {
			return n
		}
		if tree {
			n++
		}
	}
}

// Solve counts trees on slope 3,1 and multiplies the counts over Slopes.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	m, err := ParseMap(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if m.Rows() == 0 {
		return puzzle.Answer{}, &puzzle.ParseError{Reason: "empty map"}
	}
	product := 1
	for _, s := range Slopes {
		product *= Trees(m, s)
	}
	return puzzle.Answers(Trees(m, grid.Point{Col: 3, Row: 1}), product), nil
}
