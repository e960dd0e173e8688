// Package days registers every solved puzzle day.
package days

import (
	"fmt"

	"github.com/mesh-intelligence/advent/internal/days/day01"
	"github.com/mesh-intelligence/advent/internal/days/day02"
	"github.com/mesh-intelligence/advent/internal/days/day03"
	"github.com/mesh-intelligence/advent/internal/days/day04"
	"github.com/mesh-intelligence/advent/internal/days/day05"
	"github.com/mesh-intelligence/advent/internal/days/day06"
	"github.com/mesh-intelligence/advent/internal/days/day07"
	"github.com/mesh-intelligence/advent/internal/days/day08"
	"github.com/mesh-intelligence/advent/internal/days/day09"
	"github.com/mesh-intelligence/advent/internal/days/day10"
	"github.com/mesh-intelligence/advent/internal/days/day11"
	"github.com/mesh-intelligence/advent/internal/days/day12"
	"github.com/mesh-intelligence/advent/internal/days/day13"
	"github.com/mesh-intelligence/advent/internal/days/day15"
	"github.com/mesh-intelligence/advent/internal/days/day16"
	"github.com/mesh-intelligence/advent/internal/days/day17"
	"github.com/mesh-intelligence/advent/internal/days/day18"
	"github.com/mesh-intelligence/advent/internal/days/day19"
	"github.com/mesh-intelligence/advent/internal/days/day22"
	"github.com/mesh-intelligence/advent/internal/days/day23"
	"github.com/mesh-intelligence/advent/internal/days/day25"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Day is a registered solver.
type Day struct {
	Number int
	Title  string
	Solve  puzzle.Solver
}

// Key is the config key for the day's parameters, e.g. "day09".
func (d Day) Key() string { return fmt.Sprintf("day%02d", d.Number) }

// InputName is the input file name, e.g. "day9.txt".
func (d Day) InputName() string { return fmt.Sprintf("day%d.txt", d.Number) }

// registry is ordered by day number.
var registry = []Day{
	{1, "Report Repair", day01.Solve},
	{2, "Password Philosophy", day02.Solve},
	{3, "Toboggan Trajectory", day03.Solve},
	{4, "Passport Processing", day04.Solve},
	{5, "Binary Boarding", day05.Solve},
	{6, "Custom Customs", day06.Solve},
	{7, "Handy Haversacks", day07.Solve},
	{8, "Handheld Halting", day08.Solve},
	{9, "Encoding Error", day09.Solve},
	{10, "Adapter Array", day10.Solve},
	{11, "Seating System", day11.Solve},
	{12, "Rain Risk", day12.Solve},
	{13, "Shuttle Search", day13.Solve},
	{15, "Rambunctious Recitation", day15.Solve},
	{16, "Ticket Translation", day16.Solve},
	{17, "Conway Cubes", day17.Solve},
	{18, "Operation Order", day18.Solve},
	{19, "Monster Messages", day19.Solve},
	{22, "Crab Combat", day22.Solve},
	{23, "Crab Cups", day23.Solve},
	{25, "Combo Breaker", day25.Solve},
}

// Lookup returns the solver for day n.
func Lookup(n int) (Day, error) {
	for _, d := range registry {
		if d.Number == n {
			return d, nil
		}
	}
	return Day{}, fmt.Errorf("%w: %d", puzzle.ErrUnknownDay, n)
}

// All returns every registered day in order.
func All() []Day {
	out := make([]Day, len(registry))
	copy(out, registry)
	return out
}
