// Package main provides the CLI entry point for seqplot.
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/admarks/seqplot/pkg/seqplot"
	"github.com/admarks/seqplot/pkg/seqplot/config"
	"github.com/admarks/seqplot/pkg/seqplot/invoke"
	"github.com/admarks/seqplot/pkg/seqplot/render"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	rendererName string
	dataDir      string
	dryRun       bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "seqplot: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seqplot",
		Short: "Generate and plot integer sequences",
		Long: `seqplot runs the sequence generator and draws the resulting
two-column data files with gnuplot, go-chart or as an Excel workbook.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: $SEQPLOT_CONFIG or built-in)")
	rootCmd.PersistentFlags().StringVar(&rendererName, "renderer", "", "Renderer: gnuplot, native, xlsx (default from config)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Directory holding the <name>.txt data files")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the gnuplot script instead of rendering")

	rootCmd.AddCommand(
		newGraphCmd(),
		newDensityCmd(),
		newPresetCmd(),
		newRunCmd(),
		newExportCmd(),
	)
	return rootCmd
}

// app holds the collaborators shared by all subcommands.
type app struct {
	cfg     *config.Config
	builder *seqplot.Builder
	invoker *invoke.Invoker
	logger  *log.Logger
	out     io.Writer
}

// newApp loads the configuration. A non-empty ordering overrides the
// configured filename ordering.
func newApp(cmd *cobra.Command, ordering string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if rendererName != "" {
		cfg.Renderer = rendererName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger()
	a := &app{
		cfg:     cfg,
		invoker: invoke.New(logger),
		logger:  logger,
		out:     cmd.OutOrStdout(),
	}
	if err := a.setOrdering(ordering); err != nil {
		return nil, err
	}
	return a, nil
}

// setOrdering rebuilds the builder with the given filename ordering.
// Empty keeps the configured one.
func (a *app) setOrdering(ordering string) error {
	if ordering != "" {
		a.cfg.Ordering = ordering
	}
	bc, err := a.cfg.BuilderConfig()
	if err != nil {
		return err
	}
	a.builder = seqplot.NewBuilder(bc)
	return nil
}

// renderer returns the configured renderer, wrapped to open images when
// open is set.
func (a *app) renderer(open bool) seqplot.Renderer {
	if dryRun {
		return &scriptPrinter{w: a.out}
	}

	var r seqplot.Renderer
	switch a.cfg.Renderer {
	case "native":
		r = &render.Native{Builder: a.builder, Dir: dataDir}
	case "xlsx":
		return &render.Workbook{Builder: a.builder, Dir: dataDir}
	default:
		r = &render.Gnuplot{Runner: a.invoker, Path: a.cfg.Gnuplot, Dir: dataDir}
	}
	if open && a.cfg.Opener != "" {
		r = &render.Opening{Renderer: r, Runner: a.invoker, Opener: a.cfg.Opener, Dir: dataDir}
	}
	return r
}

func (a *app) plotter(open bool) *seqplot.Plotter {
	return &seqplot.Plotter{
		Builder:  a.builder,
		Renderer: a.renderer(open),
		Logger:   a.logger,
	}
}

// exitCode maps an error to the process exit status. External failures
// pass their own status through.
func exitCode(err error) int {
	var epf *seqplot.ExternalProcessFailure
	if errors.As(err, &epf) && epf.ExitStatus > 0 {
		return epf.ExitStatus
	}
	if errors.Is(err, seqplot.ErrInvalidRequest) {
		return 2
	}
	return 1
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, color.CyanString("seqplot: "), 0)
}
