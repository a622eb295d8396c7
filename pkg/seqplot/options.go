// Package seqplot builds gnuplot scripts and filenames for named sequences.
package seqplot

import "fmt"

// Ordering controls how sequence names are ordered in output filenames.
type Ordering string

const (
	// OrderAsGiven keeps the caller's order.
	OrderAsGiven Ordering = "asGiven"
	// OrderSortedByName sorts names so the filename is canonical.
	OrderSortedByName Ordering = "sortedByName"
)

// ParseOrdering converts a configuration string to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch Ordering(s) {
	case "", OrderAsGiven:
		return OrderAsGiven, nil
	case OrderSortedByName:
		return OrderSortedByName, nil
	default:
		return "", fmt.Errorf("invalid ordering: %s (must be %s or %s)", s, OrderAsGiven, OrderSortedByName)
	}
}

// YRangeRule pins the dependent axis range of log-scale plots whose
// x range starts exactly at WhenLow.
type YRangeRule struct {
	WhenLow float64 `yaml:"when_low"`
	Low     float64 `yaml:"low"`
	High    float64 `yaml:"high"`
}

// BuilderConfig configures a Builder.
type BuilderConfig struct {
	// Ordering is the filename ordering policy.
	Ordering Ordering
	// Palette maps sequence names to colors for sequences without one.
	Palette map[string]string
	// YRangeRules are checked in order; the first match wins.
	YRangeRules []YRangeRule
	// Terminal is the gnuplot terminal type.
	Terminal string
	// PointType is the point type used with linespoints.
	PointType int
	// LogBase is the base passed to "set logscale y".
	LogBase int
}

// DefaultBuilderConfig returns the configuration the original width plots used.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Ordering: OrderAsGiven,
		YRangeRules: []YRangeRule{
			{WhenLow: 70, Low: 2e90, High: 2e120},
		},
		Terminal:  "png",
		PointType: 5,
		LogBase:   2,
	}
}

// yRangeFor returns the matching rule, if any.
func (c BuilderConfig) yRangeFor(low float64) (YRangeRule, bool) {
	for _, r := range c.YRangeRules {
		if r.WhenLow == low {
			return r, true
		}
	}
	return YRangeRule{}, false
}
