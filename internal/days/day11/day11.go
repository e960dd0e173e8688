// Package day11 solves "Seating System": seats fill and empty by a local
// rule until the layout stops changing.
package day11

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/internal/sim"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Seat is one cell of the waiting area.
type Seat byte

// Cell values, as drawn in the input.
const (
	Floor    Seat = '.'
	Empty    Seat = 'L'
	Occupied Seat = '#'
)

func decode(r rune) (Seat, bool) {
	switch s := Seat(r); s {
	case Floor, Empty, Occupied:
		return s, true
	}
	return 0, false
}

func encode(s Seat) rune { return rune(s) }

// Rule decides which seats a person looks at and how crowded it may get.
type Rule struct {
	// LineOfSight looks past floor to the first seat in each direction;
	// otherwise only the eight adjacent cells count.
	LineOfSight bool
	// Tolerance is the number of occupied seats in view that makes a
	// person leave.
	Tolerance int
}

// Rules for the two parts.
var (
	Adjacent = Rule{Tolerance: 4}
	Visible  = Rule{LineOfSight: true, Tolerance: 5}
)

// Layout is one generation of the seating area.
type Layout struct {
	g    *grid.Grid[Seat]
	rule Rule
}

// Parse reads a layout to be evolved under rule.
func Parse(data []byte, rule Rule) (Layout, error) {
	g, err := grid.Parse(input.Lines(data), decode)
	if err != nil {
		return Layout{}, err
	}
	return Layout{g: g, rule: rule}, nil
}

func (l Layout) occupiedInView(p grid.Point) int {
	var seen []Seat
	if l.rule.LineOfSight {
		seen = l.g.Visible(p, grid.Dirs8, func(s Seat) bool { return s == Floor })
	} else {
		seen = l.g.Neighbours(p, grid.Dirs8)
	}
	n := 0
	for _, s := range seen {
		if s == Occupied {
			n++
		}
	}
	return n
}

// Step applies the rule to every seat at once: an empty seat with no
// occupied seat in view fills, an occupied seat with Tolerance or more
// occupied seats in view empties, and floor never changes.
func (l Layout) Step() Layout {
	next := l.g.Map(func(p grid.Point, s Seat) Seat {
		switch s {
		case Empty:
			if l.occupiedInView(p) == 0 {
				return Occupied
			}
		case Occupied:
			if l.occupiedInView(p) >= l.rule.Tolerance {
				return Empty
			}
		}
		return s
	})
	return Layout{g: next, rule: l.rule}
}

// Equal compares seats only.
func (l Layout) Equal(o Layout) bool { return l.g.Equal(o.g) }

// Occupied counts occupied seats.
func (l Layout) Occupied() int {
	return l.g.Count(func(s Seat) bool { return s == Occupied })
}

func (l Layout) String() string { return l.g.Render(encode) }

// Settle evolves the layout to its fixed point and returns it with the
// number of rounds that changed something.
func Settle(l Layout, log *zap.Logger) (Layout, int) {
	return sim.Stabilize(l, func(step int, next Layout) {
		log.Debug("seating round", zap.Int("round", step), zap.Int("occupied", next.Occupied()))
	})
}

// Solve counts occupied seats at the fixed point of both rules.
func Solve(data []byte, env puzzle.Env) (puzzle.Answer, error) {
	log := env.Logger()
	var counts [2]int
	for i, rule := range []Rule{Adjacent, Visible} {
		l, err := Parse(data, rule)
		if err != nil {
			return puzzle.Answer{}, err
		}
		final, rounds := Settle(l, log)
		log.Debug("seating settled", zap.Int("part", i+1), zap.Int("rounds", rounds))
		counts[i] = final.Occupied()
	}
	return puzzle.Answers(counts[0], counts[1]), nil
}
