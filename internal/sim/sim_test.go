package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// halving moves every value one step closer to zero.
type halving []int

func (h halving) Step() halving {
	next := make(halving, len(h))
	for i, v := range h {
		next[i] = v / 2
	}
	return next
}

func (h halving) Equal(o halving) bool {
	if len(h) != len(o) {
		return false
	}
	for i := range h {
		if h[i] != o[i] {
			return false
		}
	}
	return true
}

// counter never settles.
type counter int

func (c counter) Step() counter        { return c + 1 }
func (c counter) Equal(o counter) bool { return c == o }

func TestStabilize(t *testing.T) {
	tests := []struct {
		name      string
		initial   halving
		wantSteps int
	}{
		{name: "already stable", initial: halving{0, 0}, wantSteps: 0},
		{name: "single value", initial: halving{1}, wantSteps: 1},
		{name: "largest value decides", initial: halving{8, 1}, wantSteps: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var observed []int
			final, steps := Stabilize(tt.initial, func(step int, _ halving) {
				observed = append(observed, step)
			})

			assert.Equal(t, tt.wantSteps, steps)
			assert.True(t, final.Equal(make(halving, len(tt.initial))))
			// The confirming step that produced no change is observed too.
			assert.Len(t, observed, tt.wantSteps+1)
		})
	}
}

func TestStabilizeLeavesInitialUntouched(t *testing.T) {
	initial := halving{16, 3}
	Stabilize(initial, nil)
	assert.Equal(t, halving{16, 3}, initial)
}

func TestStepIsPure(t *testing.T) {
	s := halving{9, 4, 7}
	assert.Equal(t, s.Step(), s.Step())
}

func TestAdvance(t *testing.T) {
	assert.Equal(t, counter(6), Advance(counter(0), 6, nil))
	assert.Equal(t, counter(3), Advance(counter(3), 0, nil))

	var last int
	Advance(counter(0), 4, func(step int, c counter) {
		assert.Equal(t, counter(step), c)
		last = step
	})
	assert.Equal(t, 4, last)
}
