// Command advent solves Advent of Code 2020 puzzles.
package main

import "github.com/mesh-intelligence/advent/internal/cli"

func main() {
	cli.Execute()
}
