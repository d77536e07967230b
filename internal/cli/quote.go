package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/quote"
)

func newQuoteCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quotes := []string{quote.Random()}
			if all {
				quotes = quote.All()
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), quotes)
			}
			for _, q := range quotes {
				fmt.Fprintln(cmd.OutOrStdout(), q)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print every quote")

	return cmd
}
