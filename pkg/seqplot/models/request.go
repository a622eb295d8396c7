package models

// PlotRequest is one plot: the sequences to draw and how to draw them.
type PlotRequest struct {
	Sequences []SequenceSpec `json:"sequences" yaml:"sequences"`
	Options   DisplayOptions `json:"options" yaml:"options"`
}

// PlotSpec is a rendered plot script and the image it writes.
type PlotSpec struct {
	// Filename is the output image name.
	Filename string `json:"filename"`
	// Script is the complete gnuplot program.
	Script string `json:"script"`
}

// GenerationRequest describes one run of the sequence generator.
type GenerationRequest struct {
	// Begin is the first index, inclusive.
	Begin int `json:"begin"`
	// End is the last index, inclusive.
	End int `json:"end"`
	// Names are the sequences to generate, one output column each.
	Names []string `json:"names"`
}
