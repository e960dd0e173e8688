// Package day17 solves "Conway Cubes": a Game of Life on an unbounded 3D
// or 4D lattice, seeded from a 2D slice.
package day17

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/internal/sim"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// DefaultCycles is the boot cycle count.
const DefaultCycles = 6

// Cube addresses a lattice point; unused dimensions stay zero.
type Cube [4]int

// Space is one generation: the set of active cubes.
type Space struct {
	active  map[Cube]bool
	offsets []Cube
}

// Parse reads the initial '#'/'.' slice into a space of dims dimensions
// (3 or 4).
func Parse(data []byte, dims int) (Space, error) {
	if dims < 2 || dims > 4 {
		return Space{}, puzzle.Invariantf("%d dimensions are not supported", dims)
	}
	s := Space{active: map[Cube]bool{}, offsets: neighbourOffsets(dims)}
	for y, line := range input.Lines(data) {
		for x, c := range line {
			switch c {
			case '#':
				s.active[Cube{x, y}] = true
			case '.':
			default:
				return Space{}, puzzle.Parsef(y+1, line, "unknown cell %q", c)
			}
		}
	}
	return s, nil
}

// neighbourOffsets lists the 3^dims - 1 unit offsets in the first dims axes.
func neighbourOffsets(dims int) []Cube {
	offsets := []Cube{{}}
	for axis := range dims {
		var next []Cube
		for _, o := range offsets {
			for d := -1; d <= 1; d++ {
				o[axis] = d
				next = append(next, o)
			}
		}
		offsets = next
	}
	out := offsets[:0]
	for _, o := range offsets {
		if o != (Cube{}) {
			out = append(out, o)
		}
	}
	return out
}

func (c Cube) add(o Cube) Cube {
	return Cube{c[0] + o[0], c[1] + o[1], c[2] + o[2], c[3] + o[3]}
}

// Step returns the next generation: an active cube stays active with 2 or
// 3 active neighbours, an inactive cube turns active with exactly 3.
func (s Space) Step() Space {
	counts := make(map[Cube]int, len(s.active)*len(s.offsets))
	for c := range s.active {
		for _, o := range s.offsets {
			counts[c.add(o)]++
		}
	}
	next := Space{active: make(map[Cube]bool, len(s.active)), offsets: s.offsets}
	for c, n := range counts {
		if n == 3 || (n == 2 && s.active[c]) {
			next.active[c] = true
		}
	}
	return next
}

// Equal reports whether both spaces hold the same active cubes.
func (s Space) Equal(o Space) bool {
	if len(s.active) != len(o.active) {
		return false
	}
	for c := range s.active {
		if !o.active[c] {
			return false
		}
	}
	return true
}

// Active counts active cubes.
func (s Space) Active() int { return len(s.active) }

// Boot runs the given number of cycles.
func Boot(s Space, cycles int, log *zap.Logger) Space {
	return sim.Advance(s, cycles, func(step int, next Space) {
		log.Debug("boot cycle", zap.Int("cycle", step), zap.Int("active", next.Active()))
	})
}

// Solve boots in 3D and 4D for param "cycles" cycles.
func Solve(data []byte, env puzzle.Env) (puzzle.Answer, error) {
	cycles := env.Int("cycles", DefaultCycles)
	var counts [2]int
	for i, dims := range []int{3, 4} {
		s, err := Parse(data, dims)
		if err != nil {
			return puzzle.Answer{}, err
		}
		counts[i] = Boot(s, cycles, env.Logger()).Active()
	}
	return puzzle.Answers(counts[0], counts[1]), nil
}
