package camptrees

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadCamps parses a quota descriptor line: camp counts separated by commas,
// e.g. "1, 0, 2".
func ReadCamps(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("row or column descriptors must not be empty")
	}
	pieces := strings.Split(s, ",")
	camps := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		n, err := strconv.Atoi(strings.TrimSpace(piece))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("camp count must not be negative: %d", n)
		}
		camps = append(camps, n)
	}
	return camps, nil
}

// ParseLines builds a Board from a puzzle's lines: the row descriptor, the
// column descriptor, then the grid rows.
func ParseLines(lines []string) (*Board, error) {
	if len(lines) < 3 {
		return nil, fmt.Errorf("too few lines, there must be at least 3")
	}
	rows, err := ReadCamps(lines[0])
	if err != nil {
		return nil, err
	}
	columns, err := ReadCamps(lines[1])
	if err != nil {
		return nil, err
	}
	return ParseBoard(rows, columns, strings.Join(lines[2:], "\n"))
}

// BoardFromFile reads a puzzle file laid out like ParseLines expects.
// A single trailing newline is tolerated.
func BoardFromFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return ParseLines(strings.Split(text, "\n"))
}
