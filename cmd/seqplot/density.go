package main

import (
	"fmt"
	"strconv"

	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/spf13/cobra"
)

var densityNoOpen bool

func newDensityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "density X_START",
		Short: "Plot Density against 1/x from X_START onwards",
		Args:  cobra.ExactArgs(1),
		RunE:  runDensity,
	}
	cmd.Flags().BoolVar(&densityNoOpen, "no-open", false, "Do not open the image")
	return cmd
}

func runDensity(cmd *cobra.Command, args []string) error {
	start, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid X_START: %s", args[0])
	}
	a, err := newApp(cmd, "")
	if err != nil {
		return err
	}
	_, err = a.plotter(!densityNoOpen).Plot(densityRequest(start))
	return err
}

// densityRequest draws Density with plain lines over [start:], leading with
// the 1/x curve it is compared against.
func densityRequest(start int) models.PlotRequest {
	return models.PlotRequest{
		Sequences: []models.SequenceSpec{
			{Name: "Density", Style: "lines"},
		},
		Options: models.DisplayOptions{
			XRange:      &models.Range{Low: float64(start), OpenHigh: true},
			Definitions: []string{"f1(x) = 1/x"},
			References: []models.Reference{
				{Expr: "f1(x)", Style: "lines", Title: "1/x", Leading: true},
			},
			Basename: fmt.Sprintf("Density-friends-%d", start),
		},
	}
}
