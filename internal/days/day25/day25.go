// Package day25 solves "Combo Breaker": recover a loop size from a public
// key and derive the shared encryption key. There is no second part.
package day25

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Handshake constants.
const (
	Modulus = 20201227
	Subject = 7
)

// LoopSize returns how many times Subject must be transformed to produce
// key.
func LoopSize(key int) (int, error) {
	v := 1
	for n := 0; n < Modulus; n++ {
		if v == key {
			return n, nil
		}
		v = v * Subject % Modulus
	}
	return 0, fmt.Errorf("%w: %d is not a power of %d mod %d", puzzle.ErrNoSolution, key, Subject, Modulus)
}

// Transform raises subject to the loop size modulo Modulus.
func Transform(subject, loop int) int {
	result, base := 1, subject%Modulus
	for ; loop > 0; loop >>= 1 {
		if loop&1 == 1 {
			result = result * base % Modulus
		}
		base = base * base % Modulus
	}
	return result
}

// Solve reads the card and door public keys.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	lines := input.Lines(data)
	if len(lines) != 2 {
		return puzzle.Answer{}, &puzzle.ParseError{Reason: "want two public keys"}
	}
	var keys [2]int
	for i, line := range lines {
		k, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || k < 1 || k >= Modulus {
			return puzzle.Answer{}, puzzle.Parsef(i+1, line, "public key out of range")
		}
		keys[i] = k
	}
	loop, err := LoopSize(keys[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(Transform(keys[1], loop), nil), nil
}
