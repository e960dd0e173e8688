// Package grammar matches messages against numbered rule sets such as
//
//	0: 4 1 5
//	1: 2 3 | 3 2
//	4: "a"
//
// Rules may refer to themselves (8: 42 | 42 8). The matcher follows every
// way a rule can consume input at once, carrying the set of candidate
// suffixes rather than backtracking along a single path.
package grammar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Kind tells which variant a Pattern holds.
type Kind int

// Pattern kinds.
const (
	Symbol Kind = iota
	Ref
	Seq
	Alt
)

// Pattern is a literal symbol, a reference to another rule, a sequence that
// must match in order, or an alternation of which any one may match.
type Pattern struct {
	Kind   Kind
	Symbol rune
	Ref    int
	Items  []Pattern
}

func (p Pattern) String() string {
	switch p.Kind {
	case Symbol:
		return strconv.Quote(string(p.Symbol))
	case Ref:
		return strconv.Itoa(p.Ref)
	case Seq, Alt:
		sep := " "
		if p.Kind == Alt {
			sep = " | "
		}
		parts := make([]string, len(p.Items))
		for i, item := range p.Items {
			parts[i] = item.String()
		}
		return strings.Join(parts, sep)
	}
	return fmt.Sprintf("Pattern(%d)", p.Kind)
}

// Rules maps rule ids to patterns.
type Rules map[int]Pattern

// ParseRules reads one "id: body" rule per line.
func ParseRules(lines []string) (Rules, error) {
	rules := make(Rules, len(lines))
	if err := rules.add(lines, false); err != nil {
		return nil, err
	}
	return rules, nil
}

// With returns a copy of r in which the given rule lines replace existing
// rules with the same id or add new ones.
func (r Rules) With(lines ...string) (Rules, error) {
	out := make(Rules, len(r)+len(lines))
	for id, p := range r {
		out[id] = p
	}
	if err := out.add(lines, true); err != nil {
		return nil, err
	}
	return out, nil
}

// IDs returns the rule ids in ascending order.
func (r Rules) IDs() []int {
	ids := make([]int, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (r Rules) add(lines []string, replace bool) error {
	for i, line := range lines {
		head, body, ok := strings.Cut(line, ":")
		if !ok {
			return puzzle.Parsef(i+1, line, "missing ':' after rule id")
		}
		id, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil || id < 0 {
			return puzzle.Parsef(i+1, line, "rule id %q is not a number", head)
		}
		if _, dup := r[id]; dup && !replace {
			return puzzle.Parsef(i+1, line, "rule %d defined twice", id)
		}
		p, err := parseBody(body)
		if err != nil {
			return puzzle.Parsef(i+1, line, "%s", err.Error())
		}
		r[id] = p
	}
	return nil
}

func parseBody(body string) (Pattern, error) {
	branches := strings.Split(body, "|")
	alts := make([]Pattern, 0, len(branches))
	for _, branch := range branches {
		p, err := parseSeq(branch)
		if err != nil {
			return Pattern{}, err
		}
		alts = append(alts, p)
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return Pattern{Kind: Alt, Items: alts}, nil
}

func parseSeq(s string) (Pattern, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Pattern{}, fmt.Errorf("empty alternative")
	}
	items := make([]Pattern, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, `"`) {
			sym := []rune(f)
			if len(sym) != 3 || sym[2] != '"' {
				return Pattern{}, fmt.Errorf("symbol %s must be one quoted character", f)
			}
			items = append(items, Pattern{Kind: Symbol, Symbol: sym[1]})
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil || id < 0 {
			return Pattern{}, fmt.Errorf("unknown pattern %q", f)
		}
		items = append(items, Pattern{Kind: Ref, Ref: id})
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return Pattern{Kind: Seq, Items: items}, nil
}
