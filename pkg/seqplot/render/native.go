package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Native draws plots in-process with go-chart, for machines without gnuplot.
type Native struct {
	Builder *seqplot.Builder
	// Dir holds the data files and receives the image.
	Dir    string
	Width  int
	Height int
}

// Render draws req to spec.Filename.
func (n *Native) Render(spec *models.PlotSpec, req models.PlotRequest) error {
	cfg := n.Builder.Config()
	opts := req.Options

	var list []chart.Series
	maxX := math.Inf(-1)
	for _, s := range req.Sequences {
		pts, err := loadPoints(n.Dir, s, opts.XRange)
		if err != nil {
			return err
		}

		xs := make([]float64, 0, len(pts))
		ys := make([]float64, 0, len(pts))
		for _, p := range pts {
			y := p.Y
			if opts.LogScale {
				if y <= 0 {
					continue
				}
				y = math.Log(y) / math.Log(float64(cfg.LogBase))
			}
			xs = append(xs, p.X)
			ys = append(ys, y)
			maxX = math.Max(maxX, p.X)
		}
		if len(xs) == 0 {
			return fmt.Errorf("%s: no points to draw", s.DataFile())
		}

		list = append(list, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   n.seriesStyle(s, opts.XRange, len(list)),
		})
	}

	grid := chart.Style{
		StrokeColor: drawing.ColorFromHex("cccccc"),
		StrokeWidth: 1,
	}
	ch := chart.Chart{
		Width:  n.size(n.Width, 640),
		Height: n.size(n.Height, 480),
		XAxis: chart.XAxis{
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			GridMajorStyle: grid,
		},
		Series: list,
	}
	if opts.LogScale {
		ch.YAxis.Name = fmt.Sprintf("log%d", cfg.LogBase)
	}
	if r := opts.XRange; r != nil {
		high := r.High
		if r.OpenHigh {
			high = maxX
		}
		if high > r.Low {
			ch.XAxis.Range = &chart.ContinuousRange{Min: r.Low, Max: high}
		}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	f, err := os.Create(filepath.Join(n.Dir, spec.Filename))
	if err != nil {
		return err
	}
	if err := ch.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", spec.Filename, err)
	}
	return f.Close()
}

// seriesStyle mirrors the gnuplot style: dots are drawn for linespoints.
func (n *Native) seriesStyle(s models.SequenceSpec, r *models.Range, idx int) chart.Style {
	col := chart.GetDefaultColor(idx)
	if c := n.Builder.ColorFor(s); c != "" {
		col = drawing.ColorFromHex(hexColor(c))
	}
	st := chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
	if strings.HasPrefix(n.Builder.StyleFor(s, r), "linespoints") {
		st.DotColor = col
		st.DotWidth = 3
	}
	return st
}

func (n *Native) size(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
