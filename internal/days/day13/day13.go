// Package day13 solves "Shuttle Search".
package day13

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Bus is a shuttle with its position in the schedule list.
type Bus struct {
	Offset int
	ID     int
}

// Notes are the earliest departure time and the buses in service; "x"
// entries are out of service but still take up an offset.
type Notes struct {
	Earliest int
	Buses    []Bus
}

// Parse reads the two note lines.
func Parse(data []byte) (Notes, error) {
	lines := input.Lines(data)
	if len(lines) != 2 {
		return Notes{}, &puzzle.ParseError{Reason: fmt.Sprintf("want 2 lines, got %d", len(lines))}
	}
	earliest, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || earliest < 0 {
		return Notes{}, puzzle.Parsef(1, lines[0], "timestamp is not a non-negative number")
	}
	n := Notes{Earliest: earliest}
	for i, f := range strings.Split(lines[1], ",") {
		if f == "x" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil || id < 1 {
			return Notes{}, puzzle.Parsef(2, lines[1], "bus %q is not a positive id", f)
		}
		n.Buses = append(n.Buses, Bus{Offset: i, ID: id})
	}
	if len(n.Buses) == 0 {
		return Notes{}, puzzle.Parsef(2, lines[1], "no buses in service")
	}
	return n, nil
}

// EarliestBus returns the id of the first bus to leave at or after Earliest
// multiplied by the minutes spent waiting for it.
func (n Notes) EarliestBus() int {
	best, bestWait := 0, -1
	for _, b := range n.Buses {
		wait := (b.ID - n.Earliest%b.ID) % b.ID
		if bestWait < 0 || wait < bestWait {
			best, bestWait = b.ID, wait
		}
	}
	return best * bestWait
}

// Contest returns the earliest timestamp t at which every bus departs at
// t + Offset. Buses are added one at a time: once t satisfies the buses so
// far, stepping by the least common multiple of their ids keeps them
// satisfied. Ids need not be coprime; conflicting schedules yield
// puzzle.ErrNoSolution.
func (n Notes) Contest() (int, error) {
	t, step := 0, 1
	for _, b := range n.Buses {
		found := false
		for range b.ID {
			if (t+b.Offset)%b.ID == 0 {
				found = true
				break
			}
			t += step
		}
		if !found {
			return 0, fmt.Errorf("%w: bus %d can never leave at offset %d", puzzle.ErrNoSolution, b.ID, b.Offset)
		}
		step = lcm(step, b.ID)
	}
	return t, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// Solve answers both parts.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	n, err := Parse(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	t, err := n.Contest()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(n.EarliestBus(), t), nil
}
