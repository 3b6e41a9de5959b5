// Package cli wires the movie analyzer into a cobra command tree.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-movie-analyzer/config"
	"github.com/gcbaptista/go-movie-analyzer/internal/engine"
)

const (
	version = "1.0.0"
	appName = "movie-analyzer"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	cast       string
	rated      string
	gross      string
	headerRows int
	format     string
	outputPath string
	quiet      bool
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Join IMDB cast, top rated and top grossing lists and answer questions about them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if flags.quiet {
				log.SetOutput(io.Discard)
			} else {
				log.SetOutput(cmd.ErrOrStderr())
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML settings file")
	pf.StringVar(&flags.cast, "cast", "", "Cast list file (overrides settings)")
	pf.StringVar(&flags.rated, "rated", "", "Top rated list file (overrides settings)")
	pf.StringVar(&flags.gross, "gross", "", "Top grossing list file (overrides settings)")
	pf.IntVar(&flags.headerRows, "header-rows", -1, "Leading rows to discard from every file (overrides settings)")
	pf.StringVarP(&flags.format, "format", "f", "", "Output format: text, json or yaml (overrides settings)")
	pf.StringVarP(&flags.outputPath, "output", "o", "", "Write output to this file instead of stdout")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress progress logging")

	rootCmd.AddCommand(newReportCmd(flags))
	rootCmd.AddCommand(newQueryCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// settings loads the settings file and applies command line overrides.
func (f *globalFlags) settings() (config.AnalyzerSettings, error) {
	settings, err := config.Load(f.configPath)
	if err != nil {
		return config.AnalyzerSettings{}, err
	}
	if f.cast != "" {
		settings.Sources.Cast = f.cast
	}
	if f.rated != "" {
		settings.Sources.Rated = f.rated
	}
	if f.gross != "" {
		settings.Sources.Gross = f.gross
	}
	if f.headerRows >= 0 {
		settings.HeaderRows = f.headerRows
	}
	if f.format != "" {
		settings.Format = f.format
	}
	return settings, nil
}

// loadEngine builds an engine from the flags and joins the sources.
func (f *globalFlags) loadEngine() (*engine.Engine, error) {
	settings, err := f.settings()
	if err != nil {
		return nil, err
	}
	eng, err := engine.NewEngine(settings, nil)
	if err != nil {
		return nil, err
	}
	if err := eng.Load(); err != nil {
		return nil, err
	}
	return eng, nil
}

// output returns the writer results go to and a function closing it.
func (f *globalFlags) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if f.outputPath == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(f.outputPath) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", f.outputPath, err)
	}
	return file, file.Close, nil
}
