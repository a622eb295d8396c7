// Package render draws plot requests as images or workbooks.
package render

import (
	"github.com/admarks/seqplot/pkg/seqplot/invoke"
	"github.com/admarks/seqplot/pkg/seqplot/models"
)

// Gnuplot pipes the built script into gnuplot.
type Gnuplot struct {
	Runner invoke.Runner
	// Path is the gnuplot executable. Defaults to "gnuplot".
	Path string
	// Dir is where gnuplot runs: it reads the data files and writes the
	// image there.
	Dir string
}

// Render runs gnuplot with spec.Script on stdin.
func (g *Gnuplot) Render(spec *models.PlotSpec, _ models.PlotRequest) error {
	path := g.Path
	if path == "" {
		path = "gnuplot"
	}
	return g.Runner.RunCommand(invoke.Command{
		Path:  path,
		Dir:   g.Dir,
		Stdin: spec.Script,
	})
}
