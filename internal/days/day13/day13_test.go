package day13

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

func TestSolveExample(t *testing.T) {
	got, err := Solve([]byte("939\n7,13,x,x,59,x,31,19\n"), puzzle.NewEnv())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "295", Part2: "1068781"}, got)
}

func TestContest(t *testing.T) {
	tests := map[string]int{
		"17,x,13,19":      3417,
		"67,7,59,61":      754018,
		"67,x,7,59,61":    779210,
		"67,7,x,59,61":    1261476,
		"1789,37,47,1889": 1202161486,
		"4,x,6":           4,
	}
	for schedule, want := range tests {
		t.Run(schedule, func(t *testing.T) {
			n, err := Parse([]byte("0\n" + schedule))
			require.NoError(t, err)
			got, err := n.Contest()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestContestConflict(t *testing.T) {
	// t must be even for 4 and odd for 6.
	n, err := Parse([]byte("0\n4,x,x,6\n"))
	require.NoError(t, err)
	_, err = n.Contest()
	assert.True(t, errors.Is(err, puzzle.ErrNoSolution))
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"939", "x\n7", "939\nx,x", "939\n7,0", "939\n7,a"} {
		_, err := Parse([]byte(in))
		assert.True(t, errors.Is(err, puzzle.ErrParse), in)
	}
}
