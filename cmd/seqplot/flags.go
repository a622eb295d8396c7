package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/spf13/pflag"
)

// rangeValue is a pflag.Value for "low:high" and "low:" ranges.
type rangeValue struct {
	r *models.Range
}

var _ pflag.Value = (*rangeValue)(nil)

func (v *rangeValue) String() string {
	return seqplot.FormatRange(v.r)
}

func (v *rangeValue) Set(s string) error {
	r, err := seqplot.ParseRange(s)
	if err != nil {
		return err
	}
	v.r = r
	return nil
}

func (v *rangeValue) Type() string {
	return "range"
}

// references converts --reference EXPR=TITLE pairs, sorted by expression
// so the script does not depend on map order.
func references(m map[string]string, leading bool) []models.Reference {
	exprs := make([]string, 0, len(m))
	for expr := range m {
		exprs = append(exprs, expr)
	}
	sort.Strings(exprs)

	refs := make([]models.Reference, 0, len(exprs))
	for _, expr := range exprs {
		refs = append(refs, models.Reference{
			Expr:    expr,
			Title:   m[expr],
			Leading: leading,
		})
	}
	return refs
}

// scriptPrinter prints scripts instead of rendering them.
type scriptPrinter struct {
	w io.Writer
}

func (p *scriptPrinter) Render(spec *models.PlotSpec, _ models.PlotRequest) error {
	_, err := fmt.Fprintf(p.w, "# %s\n%s", spec.Filename, spec.Script)
	return err
}
