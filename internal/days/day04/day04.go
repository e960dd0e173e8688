// Package day04 solves "Passport Processing".
package day04

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Passport maps field keys to their raw values.
type Passport map[string]string

// Required lists the fields a passport must carry; cid is optional.
var Required = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var known = append([]string{"cid"}, Required...)

var yearFields = map[string][2]int{
	"byr": {1920, 2002},
	"iyr": {2010, 2020},
	"eyr": {2020, 2030},
}

var eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

// Parse reads blank-line separated passports of space or newline separated
// key:value pairs. Unknown keys and non-numeric years are parse errors.
func Parse(data []byte) ([]Passport, error) {
	var passports []Passport
	for _, section := range input.Sections(data) {
		p := Passport{}
		for _, line := range section {
			for _, tok := range strings.Fields(line) {
				key, value, ok := strings.Cut(tok, ":")
				if !ok {
					return nil, puzzle.Parsef(0, tok, "field has no ':'")
				}
				if !slices.Contains(known, key) {
					return nil, puzzle.Parsef(0, tok, "unknown field %q", key)
				}
				if _, year := yearFields[key]; year {
					if _, err := strconv.Atoi(value); err != nil {
						return nil, puzzle.Parsef(0, tok, "year %q is not a number", value)
					}
				}
				p[key] = value
			}
		}
		passports = append(passports, p)
	}
	return passports, nil
}

// Complete reports whether every required field is present.
func (p Passport) Complete() bool {
	for _, k := range Required {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

// Valid reports whether the passport is complete and every field holds an
// acceptable value.
func (p Passport) Valid() bool {
	if !p.Complete() {
		return false
	}
	for key, bounds := range yearFields {
		y, _ := strconv.Atoi(p[key])
		if len(p[key]) != 4 || y < bounds[0] || y > bounds[1] {
			return false
		}
	}
	return validHeight(p["hgt"]) && validHair(p["hcl"]) &&
		slices.Contains(eyeColors, p["ecl"]) && validPID(p["pid"])
}

func validHeight(s string) bool {
	if len(s) < 3 {
		return false
	}
	n, err := strconv.Atoi(s[:len(s)-2])
	if err != nil {
		return false
	}
	switch s[len(s)-2:] {
	case "cm":
		return 150 <= n && n <= 193
	case "in":
		return 59 <= n && n <= 76
	}
	return false
}

func validHair(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

func validPID(s string) bool {
	if len(s) != 9 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Solve counts complete and fully valid passports.
func Solve(data []byte, _ puzzle.Env) (puzzle.Answer, error) {
	passports, err := Parse(data)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var complete, valid int
	for _, p := range passports {
		if p.Complete() {
			complete++
		}
		if p.Valid() {
			valid++
		}
	}
	return puzzle.Answers(complete, valid), nil
}
