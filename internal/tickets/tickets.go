// Package tickets reads ticket notes (field rules, your ticket, nearby
// tickets) and works out which ticket column holds which field.
package tickets

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Range is an inclusive interval of valid values.
type Range struct {
	Lo, Hi int
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool {
	return r.Lo <= v && v <= r.Hi
}

// Field is a named rule: a value is valid for it if any range contains it.
type Field struct {
	Name   string
	Ranges []Range
}

// Accepts reports whether v satisfies the field.
func (f Field) Accepts(v int) bool {
	for _, r := range f.Ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// Ticket is the list of values on one ticket, in column order.
type Ticket []int

// Notes is a parsed set of ticket notes.
type Notes struct {
	Fields []Field
	Mine   Ticket
	Nearby []Ticket
}

const (
	mineHeader   = "your ticket:"
	nearbyHeader = "nearby tickets:"
)

// Parse reads notes made of three blank-line separated sections. Every
// ticket must have the same number of values.
func Parse(data []byte) (*Notes, error) {
	sections := input.NumberedSections(data)
	if len(sections) != 3 {
		return nil, &puzzle.ParseError{Reason: "want 3 sections: fields, your ticket, nearby tickets, got " + strconv.Itoa(len(sections))}
	}

	n := &Notes{}
	seen := map[string]bool{}
	for i, line := range sections[0].Lines {
		f, err := parseField(line)
		if err != nil {
			return nil, puzzle.AtLine(err, sections[0].Line(i))
		}
		if seen[f.Name] {
			return nil, puzzle.Parsef(sections[0].Line(i), line, "field %q defined twice", f.Name)
		}
		seen[f.Name] = true
		n.Fields = append(n.Fields, f)
	}

	mine, err := parseTickets(sections[1], mineHeader)
	if err != nil {
		return nil, err
	}
	if len(mine) != 1 {
		return nil, puzzle.Parsef(sections[1].Start, mineHeader, "want exactly one ticket, got %d", len(mine))
	}
	n.Mine = mine[0]

	if n.Nearby, err = parseTickets(sections[2], nearbyHeader); err != nil {
		return nil, err
	}
	for i, t := range n.Nearby {
		if len(t) != len(n.Mine) {
			// Nearby tickets start after the header line.
			line := sections[2].Line(i + 1)
			return nil, puzzle.Parsef(line, sections[2].Lines[i+1],
				"ticket has %d values, yours has %d", len(t), len(n.Mine))
		}
	}
	return n, nil
}

// parseField reads "departure location: 25-80 or 90-961".
func parseField(line string) (Field, error) {
	name, body, ok := strings.Cut(line, ": ")
	if !ok || name == "" {
		return Field{}, puzzle.Parsef(0, line, "want \"name: lo-hi or lo-hi\"")
	}
	f := Field{Name: name}
	for _, part := range strings.Split(body, " or ") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return Field{}, puzzle.Parsef(0, line, "range %q has no '-'", part)
		}
		l, err1 := strconv.Atoi(lo)
		h, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil {
			return Field{}, puzzle.Parsef(0, line, "range %q is not numeric", part)
		}
		if l > h {
			return Field{}, puzzle.Parsef(0, line, "range %q is reversed", part)
		}
		f.Ranges = append(f.Ranges, Range{Lo: l, Hi: h})
	}
	return f, nil
}

func parseTickets(section input.Section, header string) ([]Ticket, error) {
	lines := section.Lines
	if strings.TrimSpace(lines[0]) != header {
		return nil, puzzle.Parsef(section.Start, lines[0], "want header %q", header)
	}
	tickets := make([]Ticket, 0, len(lines)-1)
	for n, line := range lines[1:] {
		fields := strings.Split(line, ",")
		t := make(Ticket, len(fields))
		for i, s := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, puzzle.Parsef(section.Line(n+1), line, "value %q is not a number", s)
			}
			t[i] = v
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// validForAny reports whether some field accepts v.
func (n *Notes) validForAny(v int) bool {
	for _, f := range n.Fields {
		if f.Accepts(v) {
			return true
		}
	}
	return false
}

// ErrorRate sums the nearby ticket values that no field accepts.
func (n *Notes) ErrorRate() int {
	sum := 0
	for _, t := range n.Nearby {
		for _, v := range t {
			if !n.validForAny(v) {
				sum += v
			}
		}
	}
	return sum
}

// ValidTickets returns the nearby tickets whose every value some field
// accepts.
func (n *Notes) ValidTickets() []Ticket {
	var valid []Ticket
	for _, t := range n.Nearby {
		ok := true
		for _, v := range t {
			if !n.validForAny(v) {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, t)
		}
	}
	return valid
}

// Resolve maps each field name to its column. A field is a candidate for a
// column when it accepts the column's value on every valid ticket. Columns
// with a single candidate are settled one at a time, lowest column first,
// and their field is struck from the rest. The notes are rejected with
// puzzle.ErrInvariant when some column has no candidate or when candidates
// remain that cannot be told apart.
func (n *Notes) Resolve() (map[string]int, error) {
	valid := n.ValidTickets()
	cols := len(n.Mine)

	candidates := make([]map[string]bool, cols)
	for c := range cols {
		candidates[c] = map[string]bool{}
		for _, f := range n.Fields {
			if acceptsColumn(f, valid, c) {
				candidates[c][f.Name] = true
			}
		}
		if len(candidates[c]) == 0 {
			return nil, puzzle.Invariantf("no field fits column %d", c)
		}
	}

	settled := make(map[string]int, cols)
	for {
		col := -1
		for c, cand := range candidates {
			if len(cand) == 1 {
				col = c
				break
			}
		}
		if col < 0 {
			break
		}
		name := only(candidates[col])
		settled[name] = col
		for _, cand := range candidates {
			delete(cand, name)
		}
	}

	for c, cand := range candidates {
		if len(cand) > 0 {
			names := make([]string, 0, len(cand))
			for name := range cand {
				names = append(names, name)
			}
			sort.Strings(names)
			return nil, puzzle.Invariantf("column %d is ambiguous between %s", c, strings.Join(names, ", "))
		}
	}
	if len(settled) != cols {
		done := make([]bool, cols)
		for _, c := range settled {
			done[c] = true
		}
		for c := range cols {
			if !done[c] {
				return nil, puzzle.Invariantf("column %d has no field left once the others are settled", c)
			}
		}
	}
	return settled, nil
}

// only returns the single key of a one-element set.
func only(set map[string]bool) string {
	for k := range set {
		return k
	}
	return ""
}

func acceptsColumn(f Field, tickets []Ticket, col int) bool {
	for _, t := range tickets {
		if !f.Accepts(t[col]) {
			return false
		}
	}
	return true
}

// Named resolves the columns and returns your ticket's value for each field.
func (n *Notes) Named() (map[string]int, error) {
	cols, err := n.Resolve()
	if err != nil {
		return nil, err
	}
	values := make(map[string]int, len(cols))
	for name, c := range cols {
		values[name] = n.Mine[c]
	}
	return values, nil
}
