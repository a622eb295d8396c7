package models

// Range is a range on the independent axis.
type Range struct {
	// Low is the lower bound.
	Low float64 `json:"low" yaml:"low"`
	// High is the upper bound, ignored when OpenHigh is set.
	High float64 `json:"high" yaml:"high"`
	// OpenHigh leaves the upper bound to the renderer ("[low:]").
	OpenHigh bool `json:"open_high,omitempty" yaml:"open_high,omitempty"`
}

// Restricting reports whether the range has a lower bound above zero.
// Such ranges change both the filename and the line style.
func (r *Range) Restricting() bool {
	return r != nil && r.Low > 0
}

// Reference is a closed-form curve drawn next to the data series.
type Reference struct {
	// Expr is the gnuplot expression, e.g. "f(x)".
	Expr string `json:"expr" yaml:"expr"`
	// Style is an optional gnuplot style.
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
	// Color is an optional "#rrggbb" line color.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	// Title is the legend title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Leading places the curve before the data series.
	Leading bool `json:"leading,omitempty" yaml:"leading,omitempty"`
}

// DisplayOptions controls axis ranges, scales and decorations.
type DisplayOptions struct {
	// XRange restricts the independent axis (nil means automatic).
	XRange *Range `json:"xrange,omitempty" yaml:"xrange,omitempty"`
	// LogScale plots the dependent axis on a log scale.
	LogScale bool `json:"log_scale,omitempty" yaml:"log_scale,omitempty"`
	// KeyPosition is passed to "set key" when non-empty.
	KeyPosition string `json:"key_position,omitempty" yaml:"key_position,omitempty"`
	// YFormat is passed to "set format y" when non-empty.
	YFormat string `json:"y_format,omitempty" yaml:"y_format,omitempty"`
	// Definitions are emitted verbatim before the plot line, e.g. "f(x) = x".
	Definitions []string `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	// References are additional curves.
	References []Reference `json:"references,omitempty" yaml:"references,omitempty"`
	// Basename, when set, is the whole output filename without extension.
	Basename string `json:"basename,omitempty" yaml:"basename,omitempty"`
}
