package seqplot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/admarks/seqplot/pkg/seqplot/models"
)

// Builder turns plot requests into filenames and gnuplot scripts.
// All of its methods are pure functions of the request and the configuration.
type Builder struct {
	cfg BuilderConfig
}

// NewBuilder creates a Builder, filling unset scalar fields from DefaultBuilderConfig.
func NewBuilder(cfg BuilderConfig) *Builder {
	def := DefaultBuilderConfig()
	if cfg.Ordering == "" {
		cfg.Ordering = def.Ordering
	}
	if cfg.Terminal == "" {
		cfg.Terminal = def.Terminal
	}
	if cfg.PointType <= 0 {
		cfg.PointType = def.PointType
	}
	if cfg.LogBase <= 1 {
		cfg.LogBase = def.LogBase
	}
	return &Builder{cfg: cfg}
}

// Config returns the effective configuration.
func (b *Builder) Config() BuilderConfig {
	return b.cfg
}

// Validate checks that the request can produce a plot.
func (b *Builder) Validate(req models.PlotRequest) error {
	if len(req.Sequences) == 0 {
		return NewRequestError("sequences", "at least one sequence is required")
	}
	for i, s := range req.Sequences {
		if strings.TrimSpace(s.Name) == "" {
			return NewRequestError(fmt.Sprintf("sequences[%d]", i), "name is empty")
		}
	}
	if r := req.Options.XRange; r != nil && !r.OpenHigh && r.High < r.Low {
		return NewRequestError("xrange", fmt.Sprintf("high %s is below low %s", formatNumber(r.High), formatNumber(r.Low)))
	}
	return nil
}

// Filename returns the output image name for the request. An explicit
// Basename is used as is, without range or scale suffixes.
func (b *Builder) Filename(req models.PlotRequest) (string, error) {
	if err := b.Validate(req); err != nil {
		return "", err
	}
	opts := req.Options

	if opts.Basename != "" {
		return opts.Basename + ".png", nil
	}

	names := models.Names(req.Sequences)
	if b.cfg.Ordering == OrderSortedByName {
		sort.Strings(names)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(names, "-"))
	if r := opts.XRange; r.Restricting() {
		sb.WriteString("-" + formatNumber(r.Low))
		if !r.OpenHigh {
			sb.WriteString("-" + formatNumber(r.High))
		}
	}
	if opts.LogScale {
		sb.WriteString("-log")
	}
	sb.WriteString(".png")
	return sb.String(), nil
}

// PlotDirectives returns the comma separated clauses of the plot command,
// one per sequence in input order, with leading and trailing references.
func (b *Builder) PlotDirectives(req models.PlotRequest) (string, error) {
	if err := b.Validate(req); err != nil {
		return "", err
	}

	var clauses []string
	for _, ref := range req.Options.References {
		if ref.Leading {
			clauses = append(clauses, referenceDirective(ref))
		}
	}
	for _, s := range req.Sequences {
		clauses = append(clauses, b.sequenceDirective(s, req.Options.XRange))
	}
	for _, ref := range req.Options.References {
		if !ref.Leading {
			clauses = append(clauses, referenceDirective(ref))
		}
	}
	return strings.Join(clauses, ", "), nil
}

// GlobalDirectives returns the newline separated "set" commands and
// definitions that precede the plot command.
func (b *Builder) GlobalDirectives(req models.PlotRequest) (string, error) {
	filename, err := b.Filename(req)
	if err != nil {
		return "", err
	}
	opts := req.Options

	lines := []string{
		"set terminal " + b.cfg.Terminal,
		"set output " + quote(filename),
		"set grid xtics lt 0",
		"set grid ytics lt 0",
	}
	if opts.LogScale {
		lines = append(lines, "set logscale y "+strconv.Itoa(b.cfg.LogBase))
	}
	if opts.KeyPosition != "" {
		lines = append(lines, "set key "+opts.KeyPosition)
	}
	if r := opts.XRange; r != nil {
		lines = append(lines, "set xrange "+formatRange(r))
	}
	if rule, ok := b.YRange(opts); ok {
		lines = append(lines, fmt.Sprintf("set yrange [%s:%s]", formatNumber(rule.Low), formatNumber(rule.High)))
	}
	if opts.YFormat != "" {
		lines = append(lines, "set format y "+quote(opts.YFormat))
	}
	lines = append(lines, opts.Definitions...)
	return strings.Join(lines, "\n"), nil
}

// Build returns the filename and the complete script for the request.
func (b *Builder) Build(req models.PlotRequest) (*models.PlotSpec, error) {
	filename, err := b.Filename(req)
	if err != nil {
		return nil, err
	}
	global, err := b.GlobalDirectives(req)
	if err != nil {
		return nil, err
	}
	plot, err := b.PlotDirectives(req)
	if err != nil {
		return nil, err
	}
	return &models.PlotSpec{
		Filename: filename,
		Script:   global + "\nplot " + plot + "\n",
	}, nil
}

// YRange returns the dependent axis range pinned for opts. Rules only
// apply to log-scale plots with an x range.
func (b *Builder) YRange(opts models.DisplayOptions) (YRangeRule, bool) {
	if !opts.LogScale || opts.XRange == nil {
		return YRangeRule{}, false
	}
	return b.cfg.yRangeFor(opts.XRange.Low)
}

// ColorFor returns the explicit color of s, falling back to the palette.
func (b *Builder) ColorFor(s models.SequenceSpec) string {
	if s.Color != "" {
		return s.Color
	}
	return b.cfg.Palette[s.Name]
}

// StyleFor returns the gnuplot style used for s under the given range.
func (b *Builder) StyleFor(s models.SequenceSpec, xrange *models.Range) string {
	if s.Style != "" {
		return s.Style
	}
	if xrange.Restricting() {
		return "linespoints pt " + strconv.Itoa(b.cfg.PointType)
	}
	return "lines"
}

func (b *Builder) sequenceDirective(s models.SequenceSpec, xrange *models.Range) string {
	var sb strings.Builder
	sb.WriteString(quote(s.DataFile()))
	sb.WriteString(" using 1:2 with ")
	sb.WriteString(b.StyleFor(s, xrange))
	if c := b.ColorFor(s); c != "" {
		sb.WriteString(" linecolor rgbcolor " + quote(c))
	}
	sb.WriteString(" title " + quote(s.Name))
	return sb.String()
}

func referenceDirective(ref models.Reference) string {
	parts := []string{ref.Expr}
	if ref.Style != "" {
		parts = append(parts, "with "+ref.Style)
	}
	if ref.Color != "" {
		parts = append(parts, "linecolor rgbcolor "+quote(ref.Color))
	}
	if ref.Title != "" {
		parts = append(parts, "title "+quote(ref.Title))
	}
	return strings.Join(parts, " ")
}

func formatRange(r *models.Range) string {
	if r.OpenHigh {
		return "[" + formatNumber(r.Low) + ":]"
	}
	return "[" + formatNumber(r.Low) + ":" + formatNumber(r.High) + "]"
}

// formatNumber prints integers without a fraction and large values in
// exponent form ("80", "2e+90").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// quote returns s as a double quoted gnuplot string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
