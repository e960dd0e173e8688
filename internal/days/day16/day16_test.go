package day16

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

func TestSolveErrorRate(t *testing.T) {
	in := `class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12
`
	got, err := Solve([]byte(in), puzzle.NewEnv())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "71"}, got)
}

func TestSolveDepartureProduct(t *testing.T) {
	in := `departure class: 0-1 or 4-19
departure row: 0-5 or 8-19
seat: 0-13 or 16-19

your ticket:
11,12,13

nearby tickets:
3,9,18
15,1,5
5,14,9
`
	got, err := Solve([]byte(in), puzzle.NewEnv())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "0", Part2: "132"}, got)
}

func TestSolveAmbiguous(t *testing.T) {
	in := `departure a: 0-10
departure b: 0-10

your ticket:
1,2

nearby tickets:
3,4
`
	_, err := Solve([]byte(in), puzzle.NewEnv())
	assert.True(t, errors.Is(err, puzzle.ErrInvariant))
}
