// Package day22 solves "Crab Combat", a two-player card game, in its plain
// and recursive forms.
package day22

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Deck is a hand of cards, top card first.
type Deck []int

// Score weights each card by its position from the bottom.
func (d Deck) Score() int {
	s := 0
	for i, c := range d {
		s += c * (len(d) - i)
	}
	return s
}

// Parse reads the two "Player N:" sections. Card values must be positive
// and no card may appear twice.
func Parse(data []byte) (Deck, Deck, error) {
	sections := input.NumberedSections(data)
	if len(sections) != 2 {
		return nil, nil, &puzzle.ParseError{Reason: fmt.Sprintf("want 2 players, got %d", len(sections))}
	}
	var decks [2]Deck
	for p, section := range sections {
		header := fmt.Sprintf("Player %d:", p+1)
		if strings.TrimSpace(section.Lines[0]) != header {
			return nil, nil, puzzle.Parsef(section.Start, section.Lines[0], "want %q", header)
		}
		for i, line := range section.Lines[1:] {
			c, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || c < 1 {
				return nil, nil, puzzle.Parsef(section.Line(i+1), line, "card is not a positive number")
			}
			decks[p] = append(decks[p], c)
		}
	}
	seen := map[int]bool{}
	for _, d := range decks {
		for _, c := range d {
			if seen[c] {
				return nil, nil, puzzle.Invariantf("card %d is dealt twice", c)
			}
			seen[c] = true
		}
	}
	return decks[0], decks[1], nil
}

// Combat plays the plain game: the higher top card wins both cards, placed
// winner's card first. It returns the winner (1 or 2) and their deck.
func Combat(d1, d2 Deck) (int, Deck) {
	a, b := clone(d1), clone(d2)
	for len(a) > 0 && len(b) > 0 {
		ca, cb := a[0], b[0]
		a, b = a[1:], b[1:]
		if ca > cb {
			a = append(a, ca, cb)
		} else {
			b = append(b, cb, ca)
		}
	}
	if len(a) > 0 {
		return 1, a
	}
	return 2, b
}

// RecursiveCombat plays the recursive game. A repeated pair of decks within
// one game ends it in player 1's favour; when both players hold at least as
// many cards as the value they drew, the round is decided by a sub-game on
// copies of that many cards.
func RecursiveCombat(d1, d2 Deck, log *zap.Logger) (int, Deck) {
	games := 0
	return recursive(clone(d1), clone(d2), &games, log)
}

func recursive(a, b Deck, games *int, log *zap.Logger) (int, Deck) {
	*games++
	game := *games
	seen := map[string]bool{}
	for round := 1; len(a) > 0 && len(b) > 0; round++ {
		key := stateKey(a, b)
		if seen[key] {
			log.Debug("repeated round", zap.Int("game", game), zap.Int("round", round))
			return 1, a
		}
		seen[key] = true

		ca, cb := a[0], b[0]
		a, b = a[1:], b[1:]
		var p1 bool
		if len(a) >= ca && len(b) >= cb {
			w, _ := recursive(clone(a[:ca]), clone(b[:cb]), games, log)
			p1 = w == 1
		} else {
			p1 = ca > cb
		}
		if p1 {
			a = append(a, ca, cb)
		} else {
			b = append(b, cb, ca)
		}
	}
	if len(a) > 0 {
		return 1, a
	}
	return 2, b
}

func stateKey(a, b Deck) string {
	buf := make([]byte, 0, 4*(len(a)+len(b))+1)
	for _, c := range a {
		buf = strconv.AppendInt(buf, int64(c), 10)
		buf = append(buf, ',')
	}
	buf = append(buf, '|')
	for _, c := range b {
		buf = strconv.AppendInt(buf, int64(c), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}

func clone(d Deck) Deck {
	return append(Deck(nil), d...)
}

// Solve reports the winning score of both games.
func Solve(data []byte, env puzzle.Env) (puzzle.Answer, error) {
	d1, d2, err := Parse(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	_, plain := Combat(d1, d2)
	winner, rec := RecursiveCombat(d1, d2, env.Logger())
	env.Logger().Debug("recursive combat won", zap.Int("player", winner))
	return puzzle.Answers(plain.Score(), rec.Score()), nil
}
