// Package day07 solves "Handy Haversacks": bag rules form a containment
// graph; count the colors that can hold a shiny gold bag and the bags it
// must hold.
package day07

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Target is the bag both parts ask about.
const Target = "shiny gold"

// Content is a count of bags of one color.
type Content struct {
	Count int
	Color string
}

// Rules maps a bag color to the bags it must directly contain.
type Rules map[string][]Content

// Parse reads rules such as
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//	faded blue bags contain no other bags.
//
// Every color a rule mentions must have a rule of its own.
func Parse(data []byte) (Rules, error) {
	rules := Rules{}
	lines := input.Lines(data)
	for i, line := range lines {
		outer, inner, ok := strings.Cut(strings.TrimSuffix(line, "."), " bags contain ")
		if !ok {
			return nil, puzzle.Parsef(i+1, line, `want "<color> bags contain ..."`)
		}
		if _, dup := rules[outer]; dup {
			return nil, puzzle.Parsef(i+1, line, "color %q has two rules", outer)
		}
		var contents []Content
		if inner != "no other bags" {
			for _, part := range strings.Split(inner, ", ") {
				c, err := parseContent(part)
				if err != nil {
					return nil, puzzle.AtLine(err, i+1)
				}
				contents = append(contents, c)
			}
		}
		rules[outer] = contents
	}
	for outer, contents := range rules {
		for _, c := range contents {
			if _, ok := rules[c.Color]; !ok {
				return nil, puzzle.Parsef(0, outer, "contains %q, which has no rule", c.Color)
			}
		}
	}
	return rules, nil
}

// parseContent reads "2 muted yellow bags".
func parseContent(s string) (Content, error) {
	count, rest, ok := strings.Cut(s, " ")
	if !ok {
		return Content{}, puzzle.Parsef(0, s, "want \"<n> <color> bags\"")
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return Content{}, puzzle.Parsef(0, s, "count %q is not a positive number", count)
	}
	color, found := strings.CutSuffix(rest, " bags")
	if !found {
		color, found = strings.CutSuffix(rest, " bag")
	}
	if !found || color == "" {
		return Content{}, puzzle.Parsef(0, s, "missing bag color")
	}
	return Content{Count: n, Color: color}, nil
}

// Holders counts the colors that contain target at any depth.
func (r Rules) Holders(target string) int {
	parents := map[string][]string{}
	for outer, contents := range r {
		for _, c := range contents {
			parents[c.Color] = append(parents[c.Color], outer)
		}
	}
	seen := map[string]bool{}
	queue := []string{target}
	for len(queue) > 0 {
		color := queue[0]
		queue = queue[1:]
		for _, p := range parents[color] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	delete(seen, target)
	return len(seen)
}

// Inside counts the bags a color must contain. A rule set in which a color
// contains itself has no finite answer and yields puzzle.ErrInvariant.
func (r Rules) Inside(color string) (int, error) {
	memo := map[string]int{}
	active := map[string]bool{}
	var count func(string) (int, error)
	count = func(c string) (int, error) {
		if n, ok := memo[c]; ok {
			return n, nil
		}
		if active[c] {
			return 0, puzzle.Invariantf("bag %q contains itself", c)
		}
		active[c] = true
		total := 0
		for _, inner := range r[c] {
			n, err := count(inner.Color)
			if err != nil {
				return 0, err
			}
			total += inner.Count * (1 + n)
		}
		active[c] = false
		memo[c] = total
		return total, nil
	}
	return count(color)
}

// Solve answers both parts for Target.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	rules, err := Parse(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if _, ok := rules[Target]; !ok {
		return puzzle.Answer{}, fmt.Errorf("%w: no rule for %s bags", puzzle.ErrNoSolution, Target)
	}
	inside, err := rules.Inside(Target)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(rules.Holders(Target), inside), nil
}
