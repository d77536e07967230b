package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid comment ID: %s", args[0])
			}

			if err := newAPIClient().DeleteComment(cmd.Context(), id); err != nil {
				return fmt.Errorf("deleting comment %d: %w", id, err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{"deleted": true, "id": id})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comment #%d deleted.\n", id)
			return nil
		},
	}
}
