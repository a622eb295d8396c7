package render

import (
	"fmt"
	"strings"

	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/xuri/excelize/v2"
)

// PlotSheet is the sheet holding the chart.
const PlotSheet = "Plot"

// maxSheetName is Excel's limit on sheet name length.
const maxSheetName = 31

// Workbook exports the sequences of a request to an xlsx workbook with one
// sheet per sequence and a scatter chart on PlotSheet.
type Workbook struct {
	Builder *seqplot.Builder
	// Dir holds the data files.
	Dir string
	// Output is the workbook path. Empty derives it from the plot filename.
	Output string
}

// Render writes the workbook for req.
func (w *Workbook) Render(spec *models.PlotSpec, req models.PlotRequest) error {
	out := w.Output
	if out == "" {
		out = WorkbookFilename(spec.Filename)
	}
	return ExportWorkbook(out, w.Dir, w.Builder, req)
}

// WorkbookFilename swaps the image extension of filename for ".xlsx".
func WorkbookFilename(filename string) string {
	return strings.TrimSuffix(filename, ".png") + ".xlsx"
}

// ExportWorkbook writes req's data and chart to path.
func ExportWorkbook(path, dir string, b *seqplot.Builder, req models.PlotRequest) error {
	if err := b.Validate(req); err != nil {
		return err
	}
	opts := req.Options

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PlotSheet); err != nil {
		return err
	}

	var chartSeries []excelize.ChartSeries
	for _, s := range req.Sequences {
		pts, err := loadPoints(dir, s, opts.XRange)
		if err != nil {
			return err
		}

		sheet := SheetName(s.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"n", s.Name}); err != nil {
			return err
		}
		for i, p := range pts {
			cell, err := excelize.CoordinatesToCellName(1, i+2) // header occupies row 1
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &[]interface{}{p.X, p.Y}); err != nil {
				return err
			}
		}
		if len(pts) == 0 {
			continue
		}

		chartSeries = append(chartSeries, seriesFor(b, s, opts.XRange, sheet, len(pts)+1))
	}

	if len(chartSeries) > 0 {
		if err := f.AddChart(PlotSheet, "A1", chartFor(b, opts, chartSeries)); err != nil {
			return fmt.Errorf("add chart: %w", err)
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// SheetName makes a sequence name usable as an Excel sheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']', '\'':
			return '_'
		}
		return r
	}, name)
	if name == PlotSheet {
		name += "_"
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

func seriesFor(b *seqplot.Builder, s models.SequenceSpec, r *models.Range, sheet string, lastRow int) excelize.ChartSeries {
	ref := "'" + sheet + "'!"
	cs := excelize.ChartSeries{
		Name:       ref + "$B$1",
		Categories: fmt.Sprintf("%s$A$2:$A$%d", ref, lastRow),
		Values:     fmt.Sprintf("%s$B$2:$B$%d", ref, lastRow),
		Line:       excelize.ChartLine{Width: 1.5},
		Marker:     excelize.ChartMarker{Symbol: "none"},
	}
	if strings.HasPrefix(b.StyleFor(s, r), "linespoints") {
		cs.Marker = excelize.ChartMarker{Symbol: "square", Size: 5}
	}
	if c := b.ColorFor(s); c != "" {
		cs.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexColor(c)}}
	}
	return cs
}

func chartFor(b *seqplot.Builder, opts models.DisplayOptions, cs []excelize.ChartSeries) *excelize.Chart {
	ch := &excelize.Chart{
		Type:   excelize.Scatter,
		Series: cs,
		Legend: excelize.ChartLegend{Position: "right"},
		XAxis:  excelize.ChartAxis{MajorGridLines: true},
		YAxis:  excelize.ChartAxis{MajorGridLines: true},
		Dimension: excelize.ChartDimension{
			Width:  960,
			Height: 540,
		},
	}
	if opts.LogScale {
		ch.YAxis.LogBase = float64(b.Config().LogBase)
	}
	if r := opts.XRange; r != nil {
		low := r.Low
		ch.XAxis.Minimum = &low
		if !r.OpenHigh {
			high := r.High
			ch.XAxis.Maximum = &high
		}
	}
	if rule, ok := b.YRange(opts); ok {
		low, high := rule.Low, rule.High
		ch.YAxis.Minimum = &low
		ch.YAxis.Maximum = &high
	}
	return ch
}
