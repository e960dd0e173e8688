// Package day05 solves "Binary Boarding": boarding passes are binary seat
// ids written with F/B for rows and L/R for columns.
package day05

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// SeatID decodes a ten character pass: seven row letters then three column
// letters. The id is row*8 + column.
func SeatID(pass string) (int, error) {
	if len(pass) != 10 {
		return 0, puzzle.Parsef(0, pass, "pass must be 10 characters")
	}
	id := 0
	for i, c := range pass {
		id <<= 1
		switch {
		case i < 7 && c == 'B', i >= 7 && c == 'R':
			id |= 1
		case i < 7 && c == 'F', i >= 7 && c == 'L':
		default:
			return 0, puzzle.Parsef(0, pass, "unexpected %q at position %d", c, i+1)
		}
	}
	return id, nil
}

// Solve reports the highest seat id and the single free seat whose
// neighbours are both taken.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	lines := input.Lines(data)
	ids := make([]int, 0, len(lines))
	for i, line := range lines {
		id, err := SeatID(line)
		if err != nil {
			return puzzle.Answer{}, puzzle.AtLine(err, i+1)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return puzzle.Answer{}, fmt.Errorf("%w: no boarding passes", puzzle.ErrNoSolution)
	}
	slices.Sort(ids)

	free, err := FreeSeat(ids)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(ids[len(ids)-1], free), nil
}

// FreeSeat returns the first id missing between two consecutive sorted ids.
// A seat id listed twice is an invariant error.
func FreeSeat(sorted []int) (int, error) {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return 0, puzzle.Invariantf("seat %d is on two boarding passes", sorted[i])
		}
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return sorted[i-1] + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: no free seat between taken seats", puzzle.ErrNoSolution)
}
