package puzzle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMatchesErrParse(t *testing.T) {
	err := Parsef(3, "nop +x", "bad argument %q", "+x")

	assert.ErrorIs(t, err, ErrParse)
	assert.NotErrorIs(t, err, ErrInvariant)
	assert.Equal(t, `parse error on line 3 "nop +x": bad argument "+x"`, err.Error())

	wrapped := fmt.Errorf("day 8: %w", err)
	var pe *ParseError
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, 3, pe.Line)
}

func TestParseErrorWithoutLine(t *testing.T) {
	assert.Equal(t, `parse error in "abc": too short`, Parsef(0, "abc", "too short").Error())
	assert.Equal(t, "parse error: empty input", Parsef(0, "", "empty input").Error())
}

func TestAtLine(t *testing.T) {
	err := AtLine(Parsef(0, "abc", "too short"), 4)
	assert.Equal(t, `parse error on line 4 "abc": too short`, err.Error())

	err = AtLine(Parsef(2, "abc", "too short"), 4)
	assert.Contains(t, err.Error(), "line 2")

	other := errors.New("boom")
	assert.Same(t, other, AtLine(other, 4))
}

func TestInvariantf(t *testing.T) {
	err := Invariantf("gap of %d jolts", 4)
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Equal(t, "invariant violated: gap of 4 jolts", err.Error())
}

func TestAnswers(t *testing.T) {
	tests := []struct {
		name      string
		part1     any
		part2     any
		want      Answer
		wantParts []string
	}{
		{
			name:      "both parts",
			part1:     514579,
			part2:     "67384529",
			want:      Answer{Part1: "514579", Part2: "67384529"},
			wantParts: []string{"514579", "67384529"},
		},
		{
			name:      "part two missing",
			part1:     uint64(14897079),
			part2:     nil,
			want:      Answer{Part1: "14897079"},
			wantParts: []string{"14897079"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Answers(tt.part1, tt.part2)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantParts, got.Parts())
		})
	}
}

func TestEnvDefaults(t *testing.T) {
	var zero Env
	assert.Equal(t, 25, zero.Int("preamble", 25))
	assert.NotNil(t, zero.Logger())

	env := NewEnv()
	env.Params = ParamMap{"preamble": 5}
	assert.Equal(t, 5, env.Int("preamble", 25))
	assert.Equal(t, 2020, env.Int("target", 2020))
}

func TestRunMatches(t *testing.T) {
	run := Run{Day: 1, Part1: "514579", Part2: "241861950"}

	assert.True(t, run.Matches(Answer{Part1: "514579", Part2: "241861950"}))
	assert.False(t, run.Matches(Answer{Part1: "514579", Part2: "1"}))
	assert.False(t, run.Matches(Answer{Part1: "0", Part2: "241861950"}))

	partial := Run{Day: 25, Part1: "14897079"}
	assert.True(t, partial.Matches(Answer{Part1: "14897079", Part2: "x"}))
	assert.Equal(t, Answer{Part1: "14897079"}, partial.Answer())
}
