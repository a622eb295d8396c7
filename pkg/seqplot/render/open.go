package render

import (
	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/invoke"
	"github.com/admarks/seqplot/pkg/seqplot/models"
)

// Opening wraps a renderer and opens each image it writes with a viewer
// command such as "open" or "xdg-open".
type Opening struct {
	seqplot.Renderer
	Runner invoke.Runner
	Opener string
	// Dir is the directory the image was written to.
	Dir string
}

// Render renders spec and then opens the image.
func (o *Opening) Render(spec *models.PlotSpec, req models.PlotRequest) error {
	if err := o.Renderer.Render(spec, req); err != nil {
		return err
	}
	if o.Opener == "" {
		return nil
	}
	return o.Runner.RunCommand(invoke.Command{
		Path: o.Opener,
		Args: []string{spec.Filename},
		Dir:  o.Dir,
	})
}
