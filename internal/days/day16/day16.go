// Package day16 solves "Ticket Translation".
package day16

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/tickets"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Prefix selects the fields whose values part 2 multiplies.
const Prefix = "departure"

// Solve reports the scanning error rate and the product of the Prefix
// fields on your ticket. Notes without such fields leave part 2 empty.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	notes, err := tickets.Parse(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	rate := notes.ErrorRate()

	wanted := 0
	for _, f := range notes.Fields {
		if strings.HasPrefix(f.Name, Prefix) {
			wanted++
		}
	}
	if wanted == 0 {
		return puzzle.Answers(rate, nil), nil
	}

	named, err := notes.Named()
	if err != nil {
		return puzzle.Answer{}, err
	}
	product := 1
	for name, v := range named {
		if strings.HasPrefix(name, Prefix) {
			product *= v
		}
	}
	return puzzle.Answers(rate, product), nil
}
