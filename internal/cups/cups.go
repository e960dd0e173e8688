// Package cups simulates the crab's cup game on a circle of uniquely
// labelled cups.
//
// The circle is an arena indexed by label: next[label] is the label of the
// cup clockwise of it. Picking up and placing cups only relinks three
// entries, so a round costs O(1) however many cups are in play.
package cups

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// pickUp is the number of cups the crab removes each round.
const pickUp = 3

// Circle is a cycle over the labels min..max.
type Circle struct {
	next    []int
	current int
	min     int
	max     int
}

// Parse reads a line of single-digit labels, such as "389125467".
func Parse(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	labels := make([]int, 0, len(line))
	for _, r := range line {
		if r < '0' || r > '9' {
			return nil, puzzle.Parsef(1, line, "cup label %q is not a digit", r)
		}
		labels = append(labels, int(r-'0'))
	}
	return labels, nil
}

// New arranges labels clockwise, starting with the current cup. When total
// exceeds len(labels) the circle is filled with ascending labels after the
// highest given one until it holds total cups.
//
// The given labels must be unique and cover a contiguous range of at least
// four values; otherwise the wraparound rule for choosing a destination
// could not find a cup.
func New(labels []int, total int) (*Circle, error) {
	if len(labels) < pickUp+1 {
		return nil, puzzle.Invariantf("need at least %d cups, got %d", pickUp+1, len(labels))
	}
	lo, hi := labels[0], labels[0]
	for _, l := range labels {
		lo = min(lo, l)
		hi = max(hi, l)
	}
	if lo < 0 || hi-lo+1 != len(labels) {
		return nil, puzzle.Invariantf("cup labels %v are not a contiguous range", labels)
	}
	seen := make([]bool, hi+1)
	for _, l := range labels {
		if seen[l] {
			return nil, puzzle.Invariantf("cup label %d appears twice", l)
		}
		seen[l] = true
	}

	size := max(total, len(labels))
	c := &Circle{
		next:    make([]int, lo+size),
		current: labels[0],
		min:     lo,
		max:     lo + size - 1,
	}
	prev := labels[0]
	for _, l := range labels[1:] {
		c.next[prev] = l
		prev = l
	}
	for l := hi + 1; l <= c.max; l++ {
		c.next[prev] = l
		prev = l
	}
	c.next[prev] = labels[0]
	return c, nil
}

// Len returns the number of cups.
func (c *Circle) Len() int { return c.max - c.min + 1 }

// Has reports whether label is one of the cups.
func (c *Circle) Has(label int) bool { return label >= c.min && label <= c.max }

// Current returns the label of the current cup.
func (c *Circle) Current() int { return c.current }

// Next returns the label clockwise of label.
func (c *Circle) Next(label int) int { return c.next[label] }

// PlayRound performs one move: the three cups after the current one are
// picked up, the destination is the next lower label that was not picked up
// (wrapping from the lowest label to the highest), the picked cups are placed
// after the destination in their original order, and the current cup
// advances one position.
func (c *Circle) PlayRound() {
	first := c.next[c.current]
	second := c.next[first]
	third := c.next[second]

	c.next[c.current] = c.next[third]

	dest := c.current
	for {
		dest--
		if dest < c.min {
			dest = c.max
		}
		if dest != first && dest != second && dest != third {
			break
		}
	}

	c.next[third] = c.next[dest]
	c.next[dest] = first

	c.current = c.next[c.current]
}

// Play performs n rounds.
func (c *Circle) Play(n int) {
	for range n {
		c.PlayRound()
	}
}

// LabelsAfter returns every other label clockwise from label.
func (c *Circle) LabelsAfter(label int) []int {
	out := make([]int, 0, c.Len()-1)
	for l := c.next[label]; l != label; l = c.next[l] {
		out = append(out, l)
	}
	return out
}

// Order returns the labels after label joined into a string, as the puzzle
// reports them for small circles.
func (c *Circle) Order(label int) string {
	var b strings.Builder
	for _, l := range c.LabelsAfter(label) {
		b.WriteString(strconv.Itoa(l))
	}
	return b.String()
}

// String renders the circle from the current cup, marking it with
// parentheses.
func (c *Circle) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d)", c.current)
	for l := c.next[c.current]; l != c.current; l = c.next[l] {
		fmt.Fprintf(&b, " %d", l)
	}
	return b.String()
}
