package render

import (
	"path/filepath"
	"strings"

	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/admarks/seqplot/pkg/seqplot/series"
)

// loadPoints reads the data file of s from dir and keeps the points inside r.
func loadPoints(dir string, s models.SequenceSpec, r *models.Range) ([]series.Point, error) {
	t, err := series.ReadFile(filepath.Join(dir, s.DataFile()))
	if err != nil {
		return nil, err
	}
	pts := t.Points()
	if r == nil {
		return pts, nil
	}
	kept := pts[:0]
	for _, p := range pts {
		if p.X < r.Low || (!r.OpenHigh && p.X > r.High) {
			continue
		}
		kept = append(kept, p)
	}
	return kept, nil
}

// hexColor strips the leading "#" of a "#rrggbb" color.
func hexColor(c string) string {
	return strings.TrimPrefix(c, "#")
}
