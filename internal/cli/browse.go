package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/lang"
	"github.com/evcraddock/portfolio/internal/logging"
	"github.com/evcraddock/portfolio/internal/quote"
	"github.com/evcraddock/portfolio/internal/tui"
	"github.com/evcraddock/portfolio/internal/view"
)

func newBrowseCmd() *cobra.Command {
	var (
		page     int
		langCode string
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse comments in the terminal",
		Long:  "Open an interactive view of the comments: page with ←/→, cycle languages with l, delete with d.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := lang.Canonical(langCode)
			if err != nil {
				return err
			}
			langs, err := getLanguages()
			if err != nil {
				return err
			}

			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil {
						fmt.Fprintf(os.Stderr, "warning: closing log file: %v\n", cerr)
					}
				}()
				w = f
			}
			logger := logging.New(w, true)
			slog.SetDefault(logger)

			controls := tui.NewControls(page, langs, code)
			ctrl := view.NewController(newAPIClient(), controls, view.NewList(),
				view.WithLogger(logger),
				view.WithDeleteErrorHandler(func(_ *comment.Comment, err error) {
					logger.Warn("delete failed", "error", err)
				}),
			)
			slog.Debug("opening terminal view", "server", getServerURL())
			return tui.Run(ctrl, controls, quote.Random())
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "initial page number")
	cmd.Flags().StringVar(&langCode, "lang", "", "initial language filter")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")

	return cmd
}
