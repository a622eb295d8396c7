package main

import (
	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/spf13/cobra"
)

var (
	graphRange      rangeValue
	graphLog        bool
	graphSort       bool
	graphColors     map[string]string
	graphStyles     map[string]string
	graphKey        string
	graphFormatY    string
	graphDefines    []string
	graphReferences map[string]string
	graphRefFirst   bool
	graphBasename   string
	graphOpen       bool
)

func newGraphCmd() *cobra.Command {
	graphRange = rangeValue{}
	cmd := &cobra.Command{
		Use:   "graph NAME...",
		Short: "Plot one or more sequences from their <name>.txt files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGraph,
	}

	cmd.Flags().Var(&graphRange, "xrange", "Independent axis range, low:high or low:")
	cmd.Flags().BoolVar(&graphLog, "log", false, "Log scale on the dependent axis")
	cmd.Flags().BoolVar(&graphSort, "sort", false, "Sort names in the output filename")
	cmd.Flags().StringToStringVar(&graphColors, "color", nil, "Line color per sequence, NAME=#rrggbb")
	cmd.Flags().StringToStringVar(&graphStyles, "style", nil, "Line style per sequence, NAME=style")
	cmd.Flags().StringVar(&graphKey, "key", "", "Legend position, e.g. \"center right\"")
	cmd.Flags().StringVar(&graphFormatY, "format-y", "", "Dependent axis tic format")
	cmd.Flags().StringArrayVar(&graphDefines, "define", nil, "Function definition emitted before plotting, e.g. \"f(x) = x\"")
	cmd.Flags().StringToStringVar(&graphReferences, "reference", nil, "Reference curve, EXPR=TITLE")
	cmd.Flags().BoolVar(&graphRefFirst, "reference-first", false, "Draw reference curves before the sequences")
	cmd.Flags().StringVar(&graphBasename, "basename", "", "Output filename without extension")
	cmd.Flags().BoolVar(&graphOpen, "open", false, "Open the image after rendering")

	return cmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	ordering := ""
	if graphSort {
		ordering = string(seqplot.OrderSortedByName)
	}
	a, err := newApp(cmd, ordering)
	if err != nil {
		return err
	}

	seqs := make([]models.SequenceSpec, len(args))
	for i, name := range args {
		seqs[i] = models.SequenceSpec{
			Name:  name,
			Color: graphColors[name],
			Style: graphStyles[name],
		}
	}

	req := models.PlotRequest{
		Sequences: seqs,
		Options: models.DisplayOptions{
			XRange:      graphRange.r,
			LogScale:    graphLog,
			KeyPosition: graphKey,
			YFormat:     graphFormatY,
			Definitions: graphDefines,
			References:  references(graphReferences, graphRefFirst),
			Basename:    graphBasename,
		},
	}

	_, err = a.plotter(graphOpen).Plot(req)
	return err
}
