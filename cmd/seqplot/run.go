package main

import (
	"fmt"
	"strconv"

	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run BEGIN END NAME...",
		Short: "Generate sequences into <names>.txt with the sequence binary",
		Long: `run invokes the sequence generator for indices BEGIN..END. The table
goes to the names joined with "-" plus ".txt"; the generator's stderr goes to
the matching ".log" file.`,
		Args: cobra.MinimumNArgs(3),
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	begin, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid BEGIN: %s", args[0])
	}
	end, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid END: %s", args[1])
	}
	req := models.GenerationRequest{
		Begin: begin,
		End:   end,
		Names: args[2:],
	}

	a, err := newApp(cmd, "")
	if err != nil {
		return err
	}
	if err := seqplot.ValidateGeneration(req); err != nil {
		return err
	}
	a.logger.Printf("writing %s and %s", seqplot.DataFilename(req.Names), seqplot.LogFilename(req.Names))
	if dryRun {
		c, err := seqplot.GenerationCommand(a.cfg.SequenceBin, req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.String())
		return nil
	}
	return seqplot.Generate(a.invoker, a.cfg.SequenceBin, req)
}
