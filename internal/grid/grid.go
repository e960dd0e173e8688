// Package grid provides a bounded rectangular grid of comparable cells.
//
// A Grid is treated as an immutable snapshot: Map builds the next grid from
// the current one, so every cell of a generation is computed from the same
// previous state.
package grid

import (
	"strings"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Point addresses a cell by column and row, both zero-based.
type Point struct {
	Col, Row int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{Col: p.Col + d.Col, Row: p.Row + d.Row}
}

// Neighbourhoods.
var (
	Dirs4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	Dirs8 = []Point{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

// Grid is a row-major rectangle of cells.
type Grid[T comparable] struct {
	cols  int
	cells []T
}

// New returns a cols x rows grid with every cell set to fill.
func New[T comparable](cols, rows int, fill T) *Grid[T] {
	cells := make([]T, cols*rows)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{cols: cols, cells: cells}
}

// Parse decodes one row per line. Every rune must be accepted by decode and
// every row must have the same width; otherwise a *puzzle.ParseError names
// the offending line.
func Parse[T comparable](lines []string, decode func(rune) (T, bool)) (*Grid[T], error) {
	g := &Grid[T]{cols: -1}
	for i, line := range lines {
		row := []rune(line)
		if g.cols < 0 {
			g.cols = len(row)
		} else if len(row) != g.cols {
			return nil, puzzle.Parsef(i+1, line, "row has %d cells, want %d", len(row), g.cols)
		}
		for _, r := range row {
			v, ok := decode(r)
			if !ok {
				return nil, puzzle.Parsef(i+1, line, "unknown cell %q", r)
			}
			g.cells = append(g.cells, v)
		}
	}
	if g.cols < 0 {
		g.cols = 0
	}
	return g, nil
}

// Cols returns the grid width.
func (g *Grid[T]) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid[T]) Rows() int {
	if g.cols == 0 {
		return 0
	}
	return len(g.cells) / g.cols
}

// In reports whether p lies inside the grid.
func (g *Grid[T]) In(p Point) bool {
	return p.Col >= 0 && p.Col < g.cols && p.Row >= 0 && p.Row < g.Rows()
}

// Get returns the cell at p. ok is false outside the grid.
func (g *Grid[T]) Get(p Point) (v T, ok bool) {
	if !g.In(p) {
		return v, false
	}
	return g.cells[p.Row*g.cols+p.Col], true
}

// GetWrapped returns the cell at p with the column taken modulo the width,
// for maps that repeat to the right. ok is false when the row is outside the
// grid.
func (g *Grid[T]) GetWrapped(p Point) (v T, ok bool) {
	if g.cols == 0 || p.Row < 0 || p.Row >= g.Rows() {
		return v, false
	}
	col := p.Col % g.cols
	if col < 0 {
		col += g.cols
	}
	return g.cells[p.Row*g.cols+col], true
}

// Set writes v at p. It panics outside the grid.
func (g *Grid[T]) Set(p Point, v T) {
	if !g.In(p) {
		panic("grid: Set outside bounds")
	}
	g.cells[p.Row*g.cols+p.Col] = v
}

// Neighbours returns the cells one step from p in each direction of dirs.
// Directions leading off the grid are left out rather than defaulted.
func (g *Grid[T]) Neighbours(p Point, dirs []Point) []T {
	out := make([]T, 0, len(dirs))
	for _, d := range dirs {
		if v, ok := g.Get(p.Add(d)); ok {
			out = append(out, v)
		}
	}
	return out
}

// Visible returns, for each direction of dirs, the first cell from p for
// which transparent is false. Directions that run off the grid before
// reaching such a cell contribute nothing.
func (g *Grid[T]) Visible(p Point, dirs []Point, transparent func(T) bool) []T {
	out := make([]T, 0, len(dirs))
	for _, d := range dirs {
		for q := p.Add(d); ; q = q.Add(d) {
			v, ok := g.Get(q)
			if !ok {
				break
			}
			if !transparent(v) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// Map returns a new grid whose cells are f applied to every cell of g. f
// only ever observes g, never the grid under construction.
func (g *Grid[T]) Map(f func(p Point, v T) T) *Grid[T] {
	next := &Grid[T]{cols: g.cols, cells: make([]T, len(g.cells))}
	for i, v := range g.cells {
		next.cells[i] = f(Point{Col: i % g.cols, Row: i / g.cols}, v)
	}
	return next
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{cols: g.cols, cells: cells}
}

// Equal reports whether g and o have the same shape and cells.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g.cols != o.cols || len(g.cells) != len(o.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells for which pred holds.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Cells returns a copy of the cells in row-major order.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Render draws the grid one row per line using encode.
func (g *Grid[T]) Render(encode func(T) rune) string {
	var b strings.Builder
	for i, v := range g.cells {
		if i > 0 && i%g.cols == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(encode(v))
	}
	return b.String()
}
