package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/lang"
	"github.com/evcraddock/portfolio/internal/view"
)

// commentPage is the JSON shape of the comments command.
type commentPage struct {
	Page     int                `json:"page"`
	Pages    int                `json:"pages"`
	Lang     string             `json:"lang,omitempty"`
	Total    int                `json:"total"`
	Comments []*comment.Comment `json:"comments"`
}

func newCommentsCmd() *cobra.Command {
	var (
		page     int
		langCode string
	)

	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Show one page of comments",
		Long:  "Fetch comments from the server and show the requested page, optionally filtered by language.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return fmt.Errorf("page must be at least 1, got %d", page)
			}
			code, err := lang.Canonical(langCode)
			if err != nil {
				return err
			}

			ctrl := view.NewController(newAPIClient(), view.Fixed{PageIndex: page, Lang: code}, view.NewList())
			res, err := ctrl.Fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading comments: %w", err)
			}
			ctrl.Render(res)

			out := commentPage{
				Page:     page,
				Pages:    view.PageCount(len(res.Comments), ctrl.PageSize()),
				Lang:     code,
				Total:    len(res.Comments),
				Comments: commentsOf(ctrl.List().Elements()),
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), out)
			}
			return printCommentPage(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().StringVar(&langCode, "lang", "", "language code to filter by (e.g. en, es)")

	return cmd
}

func commentsOf(elems []*view.Element) []*comment.Comment {
	out := make([]*comment.Comment, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.Comment)
	}
	return out
}
