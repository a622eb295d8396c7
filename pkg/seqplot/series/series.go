// Package series reads the whitespace delimited tables written by the
// sequence generator.
package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Point is one row of a sequence: index and value.
type Point struct {
	X float64
	Y float64
}

// Table is a parsed data file. Column 0 is the independent variable.
type Table struct {
	// Header holds the column names from a leading "#" line, if any.
	Header []string
	// Rows holds the numeric fields of each data line.
	Rows [][]float64
}

// ParseError reports a malformed data line.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid number %q: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadFile parses the file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses a table from r. Blank lines are skipped; "#" lines are
// comments, and the first one before any data is kept as the header.
func Read(r io.Reader) (*Table, error) {
	t := &Table{}
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if t.Header == nil && len(t.Rows) == 0 {
				t.Header = strings.Fields(strings.TrimPrefix(line, "#"))
			}
			continue
		}

		fields := strings.Fields(line)
		row := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := parseValue(field)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Field: field, Err: err}
			}
			row = append(row, v)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Column returns the points formed by column 0 and column col.
// Rows too short to have col are skipped.
func (t *Table) Column(col int) []Point {
	var pts []Point
	for _, row := range t.Rows {
		if col < len(row) {
			pts = append(pts, Point{X: row[0], Y: row[col]})
		}
	}
	return pts
}

// Points returns columns 1 and 2 of the file, as the plot directives use them.
func (t *Table) Points() []Point {
	return t.Column(1)
}

// parseValue parses a numeric field. Integers wider than int64, which the
// generator prints for factorial-sized values, go through float parsing.
func parseValue(s string) (float64, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), nil
	}
	return strconv.ParseFloat(s, 64)
}
