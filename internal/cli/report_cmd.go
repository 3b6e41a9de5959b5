package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-movie-analyzer/internal/report"
)

func newReportCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Answer the full question set and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := flags.loadEngine()
			if err != nil {
				return err
			}
			result, err := eng.Run(cmd.Context())
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
			if err := printer.Print(w, result); err != nil {
				_ = closeOutput()
				return err
			}
			if err := closeOutput(); err != nil {
				return err
			}
			if flags.outputPath != "" {
				log.Printf("Report %s written to %s", result.RunID, flags.outputPath)
			}
			return nil
		},
	}
}
