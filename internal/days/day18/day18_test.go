package day18

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		flat int
		add  int
	}{
		{"1 + 2 * 3 + 4 * 5 + 6", 71, 231},
		{"1 + (2 * 3) + (4 * (5 + 6))", 51, 51},
		{"2 * 3 + (4 * 5)", 26, 46},
		{"5 + (8 * 3 + 9 + 3 * 4 * 3)", 437, 1445},
		{"5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))", 12240, 669060},
		{"((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2", 13632, 23340},
		{"12*(3+4)", 84, 84},
		{"7", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(tt.expr, Flat)
			require.NoError(t, err)
			assert.Equal(t, tt.flat, got)

			got, err = Eval(tt.expr, AdditionFirst)
			require.NoError(t, err)
			assert.Equal(t, tt.add, got)
		})
	}
}

func TestEvalRejects(t *testing.T) {
	for _, expr := range []string{"(1 + 2", "1 + 2)", "1 - 2", "1 +", "", "1 2", "()", "* 3"} {
		_, err := Eval(expr, Flat)
		assert.True(t, errors.Is(err, puzzle.ErrParse), "%q: %v", expr, err)
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve([]byte("1 + 2 * 3 + 4 * 5 + 6\n2 * 3 + (4 * 5)\n"), puzzle.NewEnv())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "97", Part2: "277"}, got)

	_, err = Solve([]byte("1 + 2\n(3\n"), puzzle.NewEnv())
	var pe *puzzle.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}
