package day10

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

const short = "16\n10\n15\n5\n1\n11\n7\n19\n6\n12\n4\n"

const long = `28
33
18
42
31
14
46
20
48
47
24
23
49
45
19
38
39
11
1
32
25
35
8
17
7
9
4
2
34
10
3
`

func TestSolveExamples(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want puzzle.Answer
	}{
		{"short", short, puzzle.Answer{Part1: "35", Part2: "8"}},
		{"long", long, puzzle.Answer{Part1: "220", Part2: "19208"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve([]byte(tt.in), puzzle.NewEnv())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChain(t *testing.T) {
	chain, err := Chain([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 6}, chain)
	assert.Equal(t, 4, Arrangements(chain))
}

func TestChainRejectsGaps(t *testing.T) {
	for _, in := range [][]int{{1, 5}, {1, 1}, {4}} {
		_, err := Chain(in)
		assert.True(t, errors.Is(err, puzzle.ErrInvariant), "%v", in)
	}
}
