package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-movie-analyzer/internal/engine"
	"github.com/gcbaptista/go-movie-analyzer/internal/report"
	"github.com/gcbaptista/go-movie-analyzer/model"
)

func newQueryCmd(flags *globalFlags) *cobra.Command {
	var (
		params  engine.Params
		topOnly bool
	)

	cmd := &cobra.Command{
		Use:   "query <name>",
		Short: "Run a single query",
		Long:  "Run a single query over the joined movies.\n\nAvailable queries: " + strings.Join(engine.QueryNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := flags.loadEngine()
			if err != nil {
				return err
			}

			scope := model.ScopeAllMovies
			if topOnly {
				scope = model.ScopeTopMovies
			}
			section, err := eng.Ask(args[0], scope, params)
			if err != nil {
				return err
			}

			printer, err := report.NewPrinter(eng.Settings().Format)
			if err != nil {
				return err
			}
			w, closeOutput, err := flags.output(cmd)
			if err != nil {
				return err
			}
			if err := printer.PrintSection(w, section); err != nil {
				_ = closeOutput()
				return err
			}
			return closeOutput()
		},
	}

	cmd.Flags().IntVarP(&params.Count, "count", "n", 10, "Maximum number of entries for ranked queries")
	cmd.Flags().IntVarP(&params.MinAppearances, "min-appearances", "m", 1, "Minimum movies per cast member")
	cmd.Flags().BoolVar(&topOnly, "top-only", false, "Only consider movies that are both top rated and top grossing")
	return cmd
}
