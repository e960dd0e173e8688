// Package input reads puzzle input files and splits their text into lines
// and blank-line separated sections.
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// ReadFile returns the contents of path. A missing file is reported as
// puzzle.ErrInputMissing so callers can tell it apart from other I/O errors.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", puzzle.ErrInputMissing, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// normalize drops carriage returns and trailing newlines.
func normalize(data []byte) string {
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}

// Lines splits data into lines. Trailing newlines do not produce empty lines;
// empty input yields no lines.
func Lines(data []byte) []string {
	s := normalize(data)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Section is a run of non-blank lines. Start is the 1-based line number of
// the first line.
type Section struct {
	Start int
	Lines []string
}

// Line returns the 1-based input line number of Lines[i].
func (s Section) Line(i int) int { return s.Start + i }

// NumberedSections splits data at blank lines, keeping where each section
// starts. Runs of blank lines count as a single separator.
func NumberedSections(data []byte) []Section {
	var (
		sections []Section
		current  Section
	)
	for i, line := range Lines(data) {
		if strings.TrimSpace(line) == "" {
			if len(current.Lines) > 0 {
				sections = append(sections, current)
				current = Section{}
			}
			continue
		}
		if len(current.Lines) == 0 {
			current.Start = i + 1
		}
		current.Lines = append(current.Lines, line)
	}
	if len(current.Lines) > 0 {
		sections = append(sections, current)
	}
	return sections
}

// Sections splits data at blank lines. Each section is returned as its lines.
// Runs of blank lines count as a single separator.
func Sections(data []byte) [][]string {
	numbered := NumberedSections(data)
	if numbered == nil {
		return nil
	}
	out := make([][]string, len(numbered))
	for i, s := range numbered {
		out[i] = s.Lines
	}
	return out
}

// Ints parses one integer per line. The first malformed line is returned as
// a *puzzle.ParseError.
func Ints(data []byte) ([]int, error) {
	lines := Lines(data)
	values := make([]int, 0, len(lines))
	for i, line := range lines {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, puzzle.Parsef(i+1, line, "not an integer")
		}
		values = append(values, v)
	}
	return values, nil
}
