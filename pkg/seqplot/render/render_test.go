package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/invoke"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type recordingRunner struct {
	cmds []invoke.Command
	err  error
}

func (r *recordingRunner) Run(commandLine string) error {
	r.cmds = append(r.cmds, invoke.Command{Path: "/bin/sh", Args: []string{"-c", commandLine}})
	return r.err
}

func (r *recordingRunner) RunCommand(cmd invoke.Command) error {
	r.cmds = append(r.cmds, cmd)
	return r.err
}

// writeFixtures writes <name>.txt files holding n and n*scale for n = 1..10.
func writeFixtures(t *testing.T, dir string, scales map[string]float64) {
	t.Helper()
	for name, scale := range scales {
		var buf bytes.Buffer
		buf.WriteString("#n " + name + "\n")
		for n := 1; n <= 10; n++ {
			buf.WriteString(formatRow(float64(n), float64(n)*scale))
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txt"), buf.Bytes(), 0644))
	}
}

func formatRow(x, y float64) string {
	return fmt.Sprintf("%g\t%g\n", x, y)
}

func TestGnuplotRender(t *testing.T) {
	r := &recordingRunner{}
	g := &Gnuplot{Runner: r, Dir: "data"}
	spec := &models.PlotSpec{Filename: "A.png", Script: "plot \"A.txt\" using 1:2 with lines title \"A\"\n"}

	require.NoError(t, g.Render(spec, models.PlotRequest{}))
	require.Len(t, r.cmds, 1)
	assert.Equal(t, "gnuplot", r.cmds[0].Path)
	assert.Equal(t, "data", r.cmds[0].Dir)
	assert.Equal(t, spec.Script, r.cmds[0].Stdin)
}

func TestGnuplotRenderFailure(t *testing.T) {
	r := &recordingRunner{err: &invoke.ExternalProcessFailure{Command: "gnuplot", ExitStatus: 1}}
	g := &Gnuplot{Runner: r, Path: "/usr/bin/gnuplot"}

	err := g.Render(&models.PlotSpec{Filename: "A.png"}, models.PlotRequest{})
	var epf *invoke.ExternalProcessFailure
	require.ErrorAs(t, err, &epf)
	assert.Equal(t, "/usr/bin/gnuplot", r.cmds[0].Path)
}

func TestOpening(t *testing.T) {
	r := &recordingRunner{}
	o := &Opening{
		Renderer: &Gnuplot{Runner: r},
		Runner:   r,
		Opener:   "open",
	}

	require.NoError(t, o.Render(&models.PlotSpec{Filename: "Density-friends-5.png"}, models.PlotRequest{}))
	require.Len(t, r.cmds, 2)
	assert.Equal(t, "open", r.cmds[1].Path)
	assert.Equal(t, []string{"Density-friends-5.png"}, r.cmds[1].Args)
}

func TestOpeningSkipsAfterFailure(t *testing.T) {
	r := &recordingRunner{err: &invoke.ExternalProcessFailure{Command: "gnuplot", ExitStatus: 1}}
	o := &Opening{Renderer: &Gnuplot{Runner: r}, Runner: r, Opener: "open"}

	assert.Error(t, o.Render(&models.PlotSpec{Filename: "A.png"}, models.PlotRequest{}))
	assert.Len(t, r.cmds, 1)
}

func TestNativeRender(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]float64{"WidthV3": 2, "NumTypes": 3})

	b := seqplot.NewBuilder(seqplot.BuilderConfig{
		Palette: map[string]string{"WidthV3": "#ff0000"},
	})
	req := models.PlotRequest{
		Sequences: []models.SequenceSpec{{Name: "WidthV3"}, {Name: "NumTypes"}},
		Options: models.DisplayOptions{
			XRange:   &models.Range{Low: 2, High: 8},
			LogScale: true,
		},
	}
	spec, err := b.Build(req)
	require.NoError(t, err)

	n := &Native{Builder: b, Dir: dir}
	require.NoError(t, n.Render(spec, req))

	data, err := os.ReadFile(filepath.Join(dir, "WidthV3-NumTypes-2-8-log.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestNativeRenderEmptyRange(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]float64{"A": 1})

	b := seqplot.NewBuilder(seqplot.BuilderConfig{})
	req := models.PlotRequest{
		Sequences: []models.SequenceSpec{{Name: "A"}},
		Options:   models.DisplayOptions{XRange: &models.Range{Low: 50, High: 80}},
	}
	spec, err := b.Build(req)
	require.NoError(t, err)

	err = (&Native{Builder: b, Dir: dir}).Render(spec, req)
	assert.ErrorContains(t, err, "no points")
}

func TestNativeRenderMissingData(t *testing.T) {
	b := seqplot.NewBuilder(seqplot.BuilderConfig{})
	req := models.PlotRequest{Sequences: []models.SequenceSpec{{Name: "Missing"}}}
	spec, err := b.Build(req)
	require.NoError(t, err)

	err = (&Native{Builder: b, Dir: t.TempDir()}).Render(spec, req)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]float64{"WidthV3": 2, "NumTypes": 3})

	b := seqplot.NewBuilder(seqplot.DefaultBuilderConfig())
	req := models.PlotRequest{
		Sequences: []models.SequenceSpec{{Name: "WidthV3", Color: "#ff0000"}, {Name: "NumTypes"}},
		Options:   models.DisplayOptions{XRange: &models.Range{Low: 3, High: 5}},
	}
	out := filepath.Join(dir, "out.xlsx")
	require.NoError(t, ExportWorkbook(out, dir, b, req))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{PlotSheet, "WidthV3", "NumTypes"}, f.GetSheetList())

	rows, err := f.GetRows("WidthV3")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"n", "WidthV3"},
		{"3", "6"},
		{"4", "8"},
		{"5", "10"},
	}, rows)

	rows, err = f.GetRows("NumTypes")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"5", "15"}, rows[3])
}

func TestWorkbookRender(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]float64{"A": 1})

	b := seqplot.NewBuilder(seqplot.BuilderConfig{})
	req := models.PlotRequest{Sequences: []models.SequenceSpec{{Name: "A"}}}
	out := filepath.Join(dir, "A.xlsx")

	w := &Workbook{Builder: b, Dir: dir, Output: out}
	require.NoError(t, w.Render(&models.PlotSpec{Filename: "A.png"}, req))
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestExportWorkbookInvalid(t *testing.T) {
	b := seqplot.NewBuilder(seqplot.BuilderConfig{})
	out := filepath.Join(t.TempDir(), "out.xlsx")

	err := ExportWorkbook(out, t.TempDir(), b, models.PlotRequest{})
	assert.ErrorIs(t, err, seqplot.ErrInvalidRequest)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkbookFilename(t *testing.T) {
	assert.Equal(t, "A-B-40-80.xlsx", WorkbookFilename("A-B-40-80.png"))
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"WidthV3", "WidthV3"},
		{"a/b:c", "a_b_c"},
		{"Plot", "Plot_"},
		{"WidthV3SuccessiveRatioAndFriendsToo", "WidthV3SuccessiveRatioAndFriend"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SheetName(tt.input), tt.input)
	}
}
