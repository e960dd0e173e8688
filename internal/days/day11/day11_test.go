package day11

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/internal/sim"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

const example = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL`

func TestStepAdjacent(t *testing.T) {
	l, err := Parse([]byte(example), Adjacent)
	require.NoError(t, err)

	round1 := l.Step()
	assert.Equal(t, strings.Count(example, "L"), round1.Occupied(), "every seat fills in round 1")

	want := `#.LL.L#.##
#LLLLLL.L#
L.L.L..L..
#LLL.LL.L#
#.LL.LL.LL
#.LLLL#.##
..L.L.....
#LLLLLLLL#
#.LLLLLL.L
#.#LLLL.##`
	if diff := cmp.Diff(want, round1.Step().String()); diff != "" {
		t.Errorf("round 2 mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, example, l.String(), "Step must not modify its receiver")
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		occupied int
		rounds   int
	}{
		{"adjacent", Adjacent, 37, 5},
		{"visible", Visible, 26, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse([]byte(example), tt.rule)
			require.NoError(t, err)
			final, rounds := Settle(l, zap.NewNop())
			assert.Equal(t, tt.occupied, final.Occupied())
			assert.Equal(t, tt.rounds, rounds)
			assert.True(t, final.Step().Equal(final), "fixed point")
		})
	}
}

func TestVisibleLooksPastFloor(t *testing.T) {
	in := `.......#.
...#.....
.#.......
.........
..#L....#
....#....
.........
#........
...#.....`
	l, err := Parse([]byte(in), Visible)
	require.NoError(t, err)
	assert.Equal(t, 8, l.occupiedInView(grid.Point{Col: 3, Row: 4}))
}

func TestSolveExample(t *testing.T) {
	got, err := Solve([]byte(example), puzzle.NewEnv())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "37", Part2: "26"}, got)
}

func TestParseRejectsUnknownCell(t *testing.T) {
	_, err := Parse([]byte("L.X\n"), Adjacent)
	assert.True(t, errors.Is(err, puzzle.ErrParse))
}

func TestAdvanceMatchesStep(t *testing.T) {
	l, err := Parse([]byte(example), Adjacent)
	require.NoError(t, err)
	assert.True(t, sim.Advance(l, 2, nil).Equal(l.Step().Step()))
}
