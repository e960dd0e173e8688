package day04

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

const example = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
`

const invalid = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007
`

const valid = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719
`

func TestSolveExample(t *testing.T) {
	got, err := Solve([]byte(example), puzzle.NewEnv())
	require.NoError(t, err)
	assert.Equal(t, "2", got.Part1)
}

func TestValidation(t *testing.T) {
	ps, err := Parse([]byte(invalid))
	require.NoError(t, err)
	require.Len(t, ps, 4)
	for i, p := range ps {
		assert.False(t, p.Valid(), "passport %d", i)
	}

	ps, err = Parse([]byte(valid))
	require.NoError(t, err)
	require.Len(t, ps, 4)
	for i, p := range ps {
		assert.True(t, p.Valid(), "passport %d", i)
	}
}

func TestFieldRules(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		fn   func(string) bool
		in   string
	}{
		{"height in", true, validHeight, "60in"},
		{"height cm", true, validHeight, "190cm"},
		{"height too tall", false, validHeight, "190in"},
		{"height no unit", false, validHeight, "190"},
		{"height short", false, validHeight, "cm"},
		{"hair", true, validHair, "#123abc"},
		{"hair bad digit", false, validHair, "#123abz"},
		{"hair no hash", false, validHair, "123abc"},
		{"pid", true, validPID, "000000001"},
		{"pid too long", false, validPID, "0123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.fn(tt.in))
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"byr:abc", "foo:1", "byr"} {
		_, err := Parse([]byte(in))
		assert.True(t, errors.Is(err, puzzle.ErrParse), in)
	}
}
