package main

import (
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/admarks/seqplot/pkg/seqplot/render"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportRange  rangeValue
	exportLog    bool
)

func newExportCmd() *cobra.Command {
	exportRange = rangeValue{}
	cmd := &cobra.Command{
		Use:   "export NAME...",
		Short: "Export sequences and a chart to an Excel workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExport,
	}
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: <names>.xlsx)")
	cmd.Flags().Var(&exportRange, "xrange", "Independent axis range, low:high or low:")
	cmd.Flags().BoolVar(&exportLog, "log", false, "Log scale on the dependent axis")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, "")
	if err != nil {
		return err
	}

	seqs := make([]models.SequenceSpec, len(args))
	for i, name := range args {
		seqs[i] = models.SequenceSpec{Name: name}
	}
	req := models.PlotRequest{
		Sequences: seqs,
		Options: models.DisplayOptions{
			XRange:   exportRange.r,
			LogScale: exportLog,
		},
	}

	out := exportOutput
	if out == "" {
		name, err := a.builder.Filename(req)
		if err != nil {
			return err
		}
		out = render.WorkbookFilename(name)
	}
	a.logger.Printf("writing %s", out)
	return render.ExportWorkbook(out, dataDir, a.builder, req)
}
