package day09

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

const example = "35\n20\n15\n25\n47\n40\n62\n55\n65\n95\n102\n117\n150\n182\n127\n219\n299\n277\n309\n576\n"

func TestSolveExample(t *testing.T) {
	env := puzzle.NewEnv()
	env.Params = puzzle.ParamMap{"preamble": 5}
	got, err := Solve([]byte(example), env)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "127", Part2: "62"}, got)
}

func TestFirstInvalidWindow(t *testing.T) {
	// Window 1..25: 26 and 49 are sums of two entries, 100 and 50 are not.
	nums := make([]int, 0, 26)
	for i := 1; i <= 25; i++ {
		nums = append(nums, i)
	}
	for _, tt := range []struct {
		next  int
		valid bool
	}{{26, true}, {49, true}, {100, false}, {50, false}} {
		got, err := FirstInvalid(append(nums[:25:25], tt.next), 25)
		if tt.valid {
			assert.True(t, errors.Is(err, puzzle.ErrNoSolution), "%d", tt.next)
		} else {
			require.NoError(t, err)
			assert.Equal(t, tt.next, got)
		}
	}
}

func TestWeaknessNeedsTwoNumbers(t *testing.T) {
	_, err := Weakness([]int{5, 1, 7}, 5)
	assert.True(t, errors.Is(err, puzzle.ErrNoSolution))

	got, err := Weakness([]int{5, 1, 4, 7}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestBadPreamble(t *testing.T) {
	_, err := FirstInvalid([]int{1, 2, 3}, 1)
	assert.True(t, errors.Is(err, puzzle.ErrInvariant))
}
