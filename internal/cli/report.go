package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/report"
)

func newReportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the heatmap report",
		Long:  "Fetch the heatmap points from the server, or read them from a local CSV with --file, and print a summary.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				reports []report.Report
				err     error
			)
			if file != "" {
				reports, err = report.LoadFile(file)
			} else {
				reports, err = newAPIClient().Reports(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("loading report: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), reports)
			}
			return printReportSummary(cmd.OutOrStdout(), reports)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read points from a local CSV instead of the server")

	return cmd
}

func printReportSummary(w io.Writer, reports []report.Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "No report data.")
		return err
	}
	_, err := fmt.Fprintf(w, "%s points, %s active\n",
		humanize.Comma(int64(len(reports))), humanize.Comma(report.TotalActive(reports)))
	return err
}
