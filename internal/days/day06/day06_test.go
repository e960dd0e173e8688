package day06

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

const example = `abc

a
b
c

ab
ac

a
a
a
a

b
`

func TestGroup(t *testing.T) {
	tests := []struct {
		lines    []string
		anyone   int
		everyone int
	}{
		{[]string{"abc"}, 3, 3},
		{[]string{"a", "b", "c"}, 3, 0},
		{[]string{"ab", "ac"}, 3, 1},
		{[]string{"a", "a", "a", "a"}, 1, 1},
		{[]string{"abcdefghijklmnopqrstuvwxyz", "z"}, 26, 1},
	}
	for _, tt := range tests {
		anyone, everyone, err := Group(tt.lines)
		require.NoError(t, err)
		assert.Equal(t, tt.anyone, anyone, tt.lines)
		assert.Equal(t, tt.everyone, everyone, tt.lines)
	}
}

func TestSolveExample(t *testing.T) {
	got, err := Solve([]byte(example), puzzle.NewEnv())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "11", Part2: "6"}, got)
}

func TestSolveRejectsUppercase(t *testing.T) {
	_, err := Solve([]byte("aB\n"), puzzle.NewEnv())
	assert.True(t, errors.Is(err, puzzle.ErrParse))
}
