package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/evcraddock/portfolio/internal/lang"
)

// printCommentPage prints one page of comments as a table.
func printCommentPage(w io.Writer, p commentPage) error {
	if len(p.Comments) == 0 {
		_, err := fmt.Fprintln(w, "No comments.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tSENTIMENT\tMESSAGE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "--\t----\t---------\t-------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}
	for _, c := range p.Comments {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			c.ID, truncate(c.AuthorName(), 20), formatSentiment(c.Sentiment), truncate(c.Message, 60)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\nPage %d of %d · %s · %s comments\n",
		p.Page, p.Pages, lang.Name(p.Lang), humanize.Comma(int64(p.Total)))
	return err
}

// formatSentiment renders a score with an explicit sign.
func formatSentiment(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
