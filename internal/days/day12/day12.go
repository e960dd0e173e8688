// Package day12 solves "Rain Risk": navigation instructions steer a ferry,
// first directly and then by moving a waypoint.
package day12

import (
	"strconv"

	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Instruction is an action letter and its value.
type Instruction struct {
	Action byte
	Value  int
}

// Compass headings as unit steps; north is up.
var headings = map[byte]grid.Point{
	'N': {Col: 0, Row: 1},
	'S': {Col: 0, Row: -1},
	'E': {Col: 1, Row: 0},
	'W': {Col: -1, Row: 0},
}

// Parse reads lines like "F10" or "R90". Turns must be whole quarter turns.
func Parse(data []byte) ([]Instruction, error) {
	lines := input.Lines(data)
	out := make([]Instruction, 0, len(lines))
	for i, line := range lines {
		if len(line) < 2 {
			return nil, puzzle.Parsef(i+1, line, "want an action and a value")
		}
		v, err := strconv.Atoi(line[1:])
		if err != nil || v < 0 {
			return nil, puzzle.Parsef(i+1, line, "value %q is not a non-negative number", line[1:])
		}
		in := Instruction{Action: line[0], Value: v}
		switch in.Action {
		case 'N', 'S', 'E', 'W', 'F':
		case 'L', 'R':
			if v%90 != 0 {
				return nil, puzzle.Parsef(i+1, line, "turn of %d degrees is not a multiple of 90", v)
			}
		default:
			return nil, puzzle.Parsef(i+1, line, "unknown action %q", in.Action)
		}
		out = append(out, in)
	}
	return out, nil
}

// rotate turns v by deg degrees, counter-clockwise for 'L'.
func rotate(v grid.Point, dir byte, deg int) grid.Point {
	quarters := (deg / 90) % 4
	if dir == 'L' {
		quarters = (4 - quarters) % 4
	}
	for range quarters {
		v = grid.Point{Col: v.Row, Row: -v.Col}
	}
	return v
}

func scale(v grid.Point, n int) grid.Point {
	return grid.Point{Col: v.Col * n, Row: v.Row * n}
}

func manhattan(p grid.Point) int {
	return abs(p.Col) + abs(p.Row)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Steer moves the ship itself: compass actions shift it, turns change its
// heading (initially east), F moves along the heading. It returns the
// Manhattan distance from the start.
func Steer(ins []Instruction) int {
	var pos grid.Point
	heading := headings['E']
	for _, in := range ins {
		switch in.Action {
		case 'L', 'R':
			heading = rotate(heading, in.Action, in.Value)
		case 'F':
			pos = pos.Add(scale(heading, in.Value))
		default:
			pos = pos.Add(scale(headings[in.Action], in.Value))
		}
	}
	return manhattan(pos)
}

// Waypoint moves a waypoint that starts 10 east and 1 north of the ship;
// F moves the ship to the waypoint Value times.
func Waypoint(ins []Instruction) int {
	var pos grid.Point
	wp := grid.Point{Col: 10, Row: 1}
	for _, in := range ins {
		switch in.Action {
		case 'L', 'R':
			wp = rotate(wp, in.Action, in.Value)
		case 'F':
			pos = pos.Add(scale(wp, in.Value))
		default:
			wp = wp.Add(scale(headings[in.Action], in.Value))
		}
	}
	return manhattan(pos)
}

// Solve reports the distance under both readings.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	ins, err := Parse(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(Steer(ins), Waypoint(ins)), nil
}
