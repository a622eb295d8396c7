package main

import (
	"fmt"

	"github.com/admarks/seqplot/pkg/seqplot/config"
	"github.com/admarks/seqplot/pkg/seqplot/models"
	"github.com/spf13/cobra"
)

var (
	presetList bool
	presetLog  bool
	presetOpen bool
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset [NAME]",
		Short: "Run a named batch of plots from the configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreset,
	}
	cmd.Flags().BoolVar(&presetList, "list", false, "List available presets")
	cmd.Flags().BoolVar(&presetLog, "log", false, "Log scale on every plot")
	cmd.Flags().BoolVar(&presetOpen, "open", false, "Open each image after rendering")
	return cmd
}

func runPreset(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, "")
	if err != nil {
		return err
	}
	if presetList {
		for _, name := range a.cfg.PresetNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, a.cfg.Presets[name].Description)
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("preset name required (see --list)")
	}

	p, err := a.cfg.Preset(args[0])
	if err != nil {
		return err
	}
	if err := a.setOrdering(p.Ordering); err != nil {
		return err
	}
	_, err = a.plotter(presetOpen).PlotAll(presetRequests(p, presetLog))
	return err
}

// presetRequests returns the preset's plots, forcing log scale when asked.
func presetRequests(p config.Preset, logScale bool) []models.PlotRequest {
	reqs := make([]models.PlotRequest, len(p.Plots))
	copy(reqs, p.Plots)
	if logScale {
		for i := range reqs {
			reqs[i].Options.LogScale = true
		}
	}
	return reqs
}
