package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/lang"
)

func newCommentCmd() *cobra.Command {
	var (
		name      string
		langCode  string
		sentiment float64
	)

	cmd := &cobra.Command{
		Use:   "comment <message>",
		Short: "Post a comment",
		Long:  "Post a comment to the server. The message is every argument joined by spaces.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				return fmt.Errorf("message is required")
			}
			if sentiment < -1 || sentiment > 1 {
				return fmt.Errorf("sentiment must be between -1 and 1, got %g", sentiment)
			}
			code, err := lang.Canonical(langCode)
			if err != nil {
				return err
			}

			nc := comment.NewComment{
				Name:      name,
				Message:   message,
				Lang:      code,
				Sentiment: sentiment,
			}
			if err := newAPIClient().AddComment(cmd.Context(), nc); err != nil {
				return fmt.Errorf("posting comment: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{"posted": true, "message": message})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comment posted.\n  %s\n", message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "author name (blank posts as anonymous)")
	cmd.Flags().StringVar(&langCode, "lang", "", "language code of the comment")
	cmd.Flags().Float64Var(&sentiment, "sentiment", 0, "sentiment score between -1 and 1")

	return cmd
}
