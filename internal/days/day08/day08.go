// Package day08 solves "Handheld Halting": a boot program of acc/jmp/nop
// instructions either loops forever or terminates by running off its end.
package day08

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Op is an instruction code.
type Op string

// Instruction codes.
const (
	Acc Op = "acc"
	Jmp Op = "jmp"
	Nop Op = "nop"
)

// Instruction is one line of the program.
type Instruction struct {
	Op  Op
	Arg int
}

// Program is a list of instructions.
type Program []Instruction

// Parse reads "op +n" lines.
func Parse(data []byte) (Program, error) {
	var prog Program
	for i, line := range input.Lines(data) {
		op, arg, ok := strings.Cut(line, " ")
		if !ok {
			return nil, puzzle.Parsef(i+1, line, "want \"op arg\"")
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, puzzle.Parsef(i+1, line, "argument %q is not a number", arg)
		}
		switch Op(op) {
		case Acc, Jmp, Nop:
		default:
			return nil, puzzle.Parsef(i+1, line, "unknown op %q", op)
		}
		prog = append(prog, Instruction{Op: Op(op), Arg: n})
	}
	return prog, nil
}

// Run executes the program until an instruction is about to run a second
// time or the instruction pointer lands just past the last instruction.
// It returns the accumulator at that moment and whether the program
// terminated. A jump anywhere else outside the program is an invariant
// error.
func (p Program) Run() (acc int, terminated bool, err error) {
	seen := make([]bool, len(p))
	ip := 0
	for {
		if ip == len(p) {
			return acc, true, nil
		}
		if ip < 0 || ip > len(p) {
			return acc, false, puzzle.Invariantf("jump to %d leaves a program of %d instructions", ip, len(p))
		}
		if seen[ip] {
			return acc, false, nil
		}
		seen[ip] = true
		in := p[ip]
		switch in.Op {
		case Acc:
			acc += in.Arg
			ip++
		case Jmp:
			ip += in.Arg
		default:
			ip++
		}
	}
}

// Repair swaps one jmp for nop or nop for jmp, trying positions in order,
// and returns the accumulator of the first variant that terminates.
func (p Program) Repair() (int, error) {
	patched := make(Program, len(p))
	copy(patched, p)
	for i, in := range p {
		switch in.Op {
		case Jmp:
			patched[i].Op = Nop
		case Nop:
			patched[i].Op = Jmp
		default:
			continue
		}
		acc, ok, err := patched.Run()
		patched[i] = in
		if err == nil && ok {
			return acc, nil
		}
	}
	return 0, fmt.Errorf("%w: no single jmp/nop swap terminates", puzzle.ErrNoSolution)
}

// Solve reports the accumulator before the first repeat and after repair.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	prog, err := Parse(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	acc, _, err := prog.Run()
	if err != nil {
		return puzzle.Answer{}, err
	}
	fixed, err := prog.Repair()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answers(acc, fixed), nil
}
