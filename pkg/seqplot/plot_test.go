package seqplot

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/admarks/seqplot/pkg/seqplot/invoke"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	specs []*models.PlotSpec
	err   error
}

func (r *recordingRenderer) Render(spec *models.PlotSpec, _ models.PlotRequest) error {
	r.specs = append(r.specs, spec)
	return r.err
}

func TestPlotterPlot(t *testing.T) {
	var buf bytes.Buffer
	rr := &recordingRenderer{}
	p := &Plotter{
		Builder:  NewBuilder(BuilderConfig{}),
		Renderer: rr,
		Logger:   log.New(&buf, "", 0),
	}

	spec, err := p.Plot(models.PlotRequest{Sequences: seqs("A")})
	require.NoError(t, err)
	assert.Equal(t, "A.png", spec.Filename)
	require.Len(t, rr.specs, 1)
	assert.Equal(t, "writing A.png\n", buf.String())
}

func TestPlotterRejectsBeforeRendering(t *testing.T) {
	rr := &recordingRenderer{}
	p := &Plotter{Builder: NewBuilder(BuilderConfig{}), Renderer: rr}

	_, err := p.Plot(models.PlotRequest{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, rr.specs)
}

func TestPlotterPlotAllStopsAtFailure(t *testing.T) {
	failure := &ExternalProcessFailure{Command: "gnuplot", ExitStatus: 1}
	rr := &recordingRenderer{err: failure}
	p := &Plotter{Builder: NewBuilder(BuilderConfig{}), Renderer: rr}

	specs, err := p.PlotAll([]models.PlotRequest{
		{Sequences: seqs("A")},
		{Sequences: seqs("B")},
	})
	require.Error(t, err)
	assert.Empty(t, specs)
	assert.Len(t, rr.specs, 1)

	var epf *invoke.ExternalProcessFailure
	require.True(t, errors.As(err, &epf))
	assert.Equal(t, 1, epf.ExitStatus)
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Range
	}{
		{"40:80", models.Range{Low: 40, High: 80}},
		{"0:80", models.Range{Low: 0, High: 80}},
		{"5:", models.Range{Low: 5, OpenHigh: true}},
		{" 1.5 : 2.5 ", models.Range{Low: 1.5, High: 2.5}},
	}
	for _, tt := range tests {
		r, err := ParseRange(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, *r, tt.input)
	}

	for _, bad := range []string{"40", "a:80", "40:b", ""} {
		_, err := ParseRange(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "", FormatRange(nil))
	assert.Equal(t, "40:80", FormatRange(&models.Range{Low: 40, High: 80}))
	assert.Equal(t, "5:", FormatRange(&models.Range{Low: 5, OpenHigh: true}))
}
