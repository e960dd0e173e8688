package grammar

import (
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Matcher checks messages against a validated rule set.
type Matcher struct {
	rules Rules
	start int
}

// New validates rules for matching from start. The start rule and every
// referenced rule must exist, and no rule may reach itself without first
// consuming a symbol; such a rule would recurse forever.
func New(rules Rules, start int) (*Matcher, error) {
	if _, ok := rules[start]; !ok {
		return nil, puzzle.Invariantf("start rule %d is not defined", start)
	}
	for _, id := range rules.IDs() {
		if err := checkPattern(rules, id, rules[id]); err != nil {
			return nil, err
		}
	}
	if id, ok := leftRecursive(rules); ok {
		return nil, puzzle.Invariantf("rule %d is left-recursive", id)
	}
	return &Matcher{rules: rules, start: start}, nil
}

func checkPattern(rules Rules, owner int, p Pattern) error {
	switch p.Kind {
	case Symbol:
		return nil
	case Ref:
		if _, ok := rules[p.Ref]; !ok {
			return puzzle.Invariantf("rule %d refers to undefined rule %d", owner, p.Ref)
		}
		return nil
	case Seq, Alt:
		if len(p.Items) == 0 {
			return puzzle.Invariantf("rule %d has an empty %s", owner, p)
		}
		for _, item := range p.Items {
			if err := checkPattern(rules, owner, item); err != nil {
				return err
			}
		}
		return nil
	}
	return puzzle.Invariantf("rule %d has unknown pattern kind %d", owner, p.Kind)
}

// leftmost collects the rules p may enter before consuming any input.
// Every pattern consumes at least one symbol, so only the first item of a
// sequence can be entered without progress.
func leftmost(p Pattern, out map[int]bool) {
	switch p.Kind {
	case Ref:
		out[p.Ref] = true
	case Seq:
		leftmost(p.Items[0], out)
	case Alt:
		for _, item := range p.Items {
			leftmost(item, out)
		}
	}
}

// leftRecursive reports a rule that can reach itself through leftmost
// references.
func leftRecursive(rules Rules) (int, bool) {
	edges := make(map[int]map[int]bool, len(rules))
	for id, p := range rules {
		edges[id] = map[int]bool{}
		leftmost(p, edges[id])
	}

	const (
		unvisited = iota
		active
		done
	)
	state := make(map[int]int, len(rules))
	var visit func(id int) (int, bool)
	visit = func(id int) (int, bool) {
		state[id] = active
		for next := range edges[id] {
			switch state[next] {
			case active:
				return next, true
			case unvisited:
				if hit, ok := visit(next); ok {
					return hit, true
				}
			}
		}
		state[id] = done
		return 0, false
	}
	for _, id := range rules.IDs() {
		if state[id] == unvisited {
			if hit, ok := visit(id); ok {
				return hit, true
			}
		}
	}
	return 0, false
}

// Match reports whether the whole message matches the start rule: at least
// one way of consuming it must leave nothing over.
func (m *Matcher) Match(message string) bool {
	msg := []rune(message)
	for _, rest := range m.consume(m.rules[m.start], msg, []int{0}) {
		if rest == len(msg) {
			return true
		}
	}
	return false
}

// Count returns how many messages match.
func (m *Matcher) Count(messages []string) int {
	n := 0
	for _, msg := range messages {
		if m.Match(msg) {
			n++
		}
	}
	return n
}

// consume maps a set of candidate positions to the set of positions reached
// after p matches at any of them. Positions are offsets into msg; the
// candidate suffix for offset i is msg[i:]. Sets are kept sorted and free of
// duplicates.
func (m *Matcher) consume(p Pattern, msg []rune, cands []int) []int {
	if len(cands) == 0 {
		return nil
	}
	switch p.Kind {
	case Symbol:
		var out []int
		for _, i := range cands {
			if i < len(msg) && msg[i] == p.Symbol {
				out = append(out, i+1)
			}
		}
		return out
	case Ref:
		return m.consume(m.rules[p.Ref], msg, cands)
	case Seq:
		cur := cands
		for _, item := range p.Items {
			cur = m.consume(item, msg, cur)
			if len(cur) == 0 {
				return nil
			}
		}
		return cur
	case Alt:
		var out []int
		for _, item := range p.Items {
			out = union(out, m.consume(item, msg, cands))
		}
		return out
	}
	return nil
}

// union merges two sorted sets.
func union(a, b []int) []int {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
