// Package day02 solves "Password Philosophy".
package day02

import (
	"regexp"
	"strconv"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Policy is one line of the password database: "1-3 a: abcde".
type Policy struct {
	Lo, Hi   int
	Letter   rune
	Password string
}

var policyRE = regexp.MustCompile(`^(\d+)-(\d+) (\S): (.*)$`)

// ParsePolicy reads a single database line.
func ParsePolicy(line string) (Policy, error) {
	m := policyRE.FindStringSubmatch(line)
	if m == nil {
		return Policy{}, puzzle.Parsef(0, line, `want "lo-hi letter: password"`)
	}
	lo, _ := strconv.Atoi(m[1])
	hi, _ := strconv.Atoi(m[2])
	if lo < 1 || lo > hi {
		return Policy{}, puzzle.Parsef(0, line, "bounds %d-%d out of order", lo, hi)
	}
	return Policy{Lo: lo, Hi: hi, Letter: []rune(m[3])[0], Password: m[4]}, nil
}

// CountValid reports whether the letter occurs between Lo and Hi times.
func (p Policy) CountValid() bool {
	n := 0
	for _, r := range p.Password {
		if r == p.Letter {
			n++
		}
	}
	return p.Lo <= n && n <= p.Hi
}

// PositionValid reports whether exactly one of the 1-based positions Lo and
// Hi holds the letter. A position past the end of the password never does.
func (p Policy) PositionValid() bool {
	pw := []rune(p.Password)
	at := func(pos int) bool {
		return pos <= len(pw) && pw[pos-1] == p.Letter
	}
	return at(p.Lo) != at(p.Hi)
}

// Solve counts the passwords valid under each policy reading.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	var byCount, byPosition int
	for i, line := range input.Lines(data) {
		p, err := ParsePolicy(line)
		if err != nil {
			return puzzle.Answer{}, puzzle.AtLine(err, i+1)
		}
		if p.CountValid() {
			byCount++
		}
		if p.PositionValid() {
			byPosition++
		}
	}
	return puzzle.Answers(byCount, byPosition), nil
}
