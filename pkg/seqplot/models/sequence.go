// Package models defines data structures for sequence plotting.
package models

// SequenceSpec identifies one named sequence and how to draw it.
type SequenceSpec struct {
	// Name is the sequence identifier. Its data lives in Name + ".txt".
	Name string `json:"name" yaml:"name"`
	// Color is an optional "#rrggbb" line color.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	// Style is an optional gnuplot style (lines, linespoints, points).
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
}

// DataFile returns the name of the two-column file holding the sequence.
func (s SequenceSpec) DataFile() string {
	return s.Name + ".txt"
}

// Names returns the names of the given sequences in order.
func Names(seqs []SequenceSpec) []string {
	names := make([]string, len(seqs))
	for i, s := range seqs {
		names[i] = s.Name
	}
	return names
}
