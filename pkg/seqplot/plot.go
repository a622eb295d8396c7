package seqplot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/admarks/seqplot/pkg/seqplot/models"
)

// Renderer draws a built plot.
type Renderer interface {
	Render(spec *models.PlotSpec, req models.PlotRequest) error
}

// Plotter builds requests and hands them to a renderer.
type Plotter struct {
	Builder  *Builder
	Renderer Renderer
	// Logger receives a "writing" line per plot. Nil disables it.
	Logger *log.Logger
}

// Plot builds req and renders it. The request is validated before the
// renderer runs.
func (p *Plotter) Plot(req models.PlotRequest) (*models.PlotSpec, error) {
	spec, err := p.Builder.Build(req)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		p.Logger.Printf("writing %s", spec.Filename)
	}
	if err := p.Renderer.Render(spec, req); err != nil {
		return spec, err
	}
	return spec, nil
}

// PlotAll plots each request in turn and stops at the first failure.
func (p *Plotter) PlotAll(reqs []models.PlotRequest) ([]*models.PlotSpec, error) {
	specs := make([]*models.PlotSpec, 0, len(reqs))
	for _, req := range reqs {
		spec, err := p.Plot(req)
		if err != nil {
			return specs, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// ParseRange parses "low:high" or "low:" into a Range.
func ParseRange(s string) (*models.Range, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid range %q (want low:high or low:)", s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range low %q: %w", lo, err)
	}
	r := &models.Range{Low: low}
	if strings.TrimSpace(hi) == "" {
		r.OpenHigh = true
		return r, nil
	}
	r.High, err = strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range high %q: %w", hi, err)
	}
	return r, nil
}

// FormatRange is the inverse of ParseRange.
func FormatRange(r *models.Range) string {
	if r == nil {
		return ""
	}
	return strings.Trim(formatRange(r), "[]")
}
