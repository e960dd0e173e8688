// Package day18 solves "Operation Order": arithmetic with + and * where
// the usual precedence does not apply.
package day18

import (
	"strconv"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Precedence assigns a binding strength to each operator; higher binds
// tighter. Operators of equal strength apply left to right.
type Precedence map[byte]int

// Operator tables for the two parts.
var (
	Flat          = Precedence{'+': 1, '*': 1}
	AdditionFirst = Precedence{'+': 2, '*': 1}
)

type token struct {
	kind byte // 'n' for numbers, otherwise the operator or parenthesis
	val  int
}

func tokenize(line string) ([]token, error) {
	var toks []token
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == ' ':
		case c >= '0' && c <= '9':
			j := i
			for j < len(line) && line[j] >= '0' && line[j] <= '9' {
				j++
			}
			v, err := strconv.Atoi(line[i:j])
			if err != nil {
				return nil, puzzle.Parsef(0, line, "number %q out of range", line[i:j])
			}
			toks = append(toks, token{kind: 'n', val: v})
			i = j - 1
		case c == '+' || c == '*' || c == '(' || c == ')':
			toks = append(toks, token{kind: c})
		default:
			return nil, puzzle.Parsef(0, line, "unexpected %q at column %d", c, i+1)
		}
	}
	return toks, nil
}

type parser struct {
	line string
	toks []token
	pos  int
	prec Precedence
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) operand() (int, error) {
	t, ok := p.peek()
	if !ok {
		return 0, puzzle.Parsef(0, p.line, "expression ends where an operand is expected")
	}
	p.pos++
	switch t.kind {
	case 'n':
		return t.val, nil
	case '(':
		v, err := p.expr(0)
		if err != nil {
			return 0, err
		}
		if t, ok := p.peek(); !ok || t.kind != ')' {
			return 0, puzzle.Parsef(0, p.line, "unbalanced '('")
		}
		p.pos++
		return v, nil
	}
	return 0, puzzle.Parsef(0, p.line, "unexpected %q where an operand is expected", t.kind)
}

// expr parses operators binding at least as tight as minPrec (precedence
// climbing).
func (p *parser) expr(minPrec int) (int, error) {
	lhs, err := p.operand()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind == ')' {
			return lhs, nil
		}
		prec, isOp := p.prec[t.kind]
		if !isOp {
			return 0, puzzle.Parsef(0, p.line, "unexpected %q after an operand", t.kind)
		}
		if prec < minPrec {
			return lhs, nil
		}
		p.pos++
		rhs, err := p.expr(prec + 1)
		if err != nil {
			return 0, err
		}
		if t.kind == '+' {
			lhs += rhs
		} else {
			lhs *= rhs
		}
	}
}

// Eval evaluates one expression under prec.
func Eval(line string, prec Precedence) (int, error) {
	toks, err := tokenize(line)
	if err != nil {
		return 0, err
	}
	p := &parser{line: line, toks: toks, prec: prec}
	v, err := p.expr(0)
	if err != nil {
		return 0, err
	}
	if p.pos != len(toks) {
		return 0, puzzle.Parsef(0, line, "unbalanced ')'")
	}
	return v, nil
}

// Solve sums every line under both operator tables.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	var sums [2]int
	for i, line := range input.Lines(data) {
		for j, prec := range []Precedence{Flat, AdditionFirst} {
			v, err := Eval(line, prec)
			if err != nil {
				return puzzle.Answer{}, puzzle.AtLine(err, i+1)
			}
			sums[j] += v
		}
	}
	return puzzle.Answers(sums[0], sums[1]), nil
}
