package series

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "#n WidthV3 NumTypes\n1 1 1\n\n2\t2\t3\n3 6 2.5e+10\n# trailing comment\n"

	tbl, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "WidthV3", "NumTypes"}, tbl.Header)
	require.Len(t, tbl.Rows, 3)

	assert.Equal(t, []Point{{1, 1}, {2, 2}, {3, 6}}, tbl.Points())
	assert.Equal(t, []Point{{1, 1}, {2, 3}, {3, 2.5e10}}, tbl.Column(2))
	assert.Empty(t, tbl.Column(3))
}

func TestReadShortRows(t *testing.T) {
	tbl, err := Read(strings.NewReader("1 10\n2\n3 30\n"))
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 10}, {3, 30}}, tbl.Points())
}

func TestReadHugeIntegers(t *testing.T) {
	tbl, err := Read(strings.NewReader("80 71569457046263802294811533723186532165584657342365752577109445058227039255480148842668944867280814080000000000000000000\n"))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.InEpsilon(t, 7.156945704626380e118, tbl.Rows[0][1], 1e-12)
}

func TestReadInvalid(t *testing.T) {
	_, err := Read(strings.NewReader("1 2\n2 x\n"))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "x", pe.Field)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Density.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 1\n2 0.5\n"), 0644))

	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 1}, {2, 0.5}}, tbl.Points())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"123", 123},
		{"123.45", 123.45},
		{"-100", -100},
		{"2e+90", 2e90},
	}

	for _, tt := range tests {
		result, err := parseValue(tt.input)
		if err != nil {
			t.Errorf("parseValue(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
