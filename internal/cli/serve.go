package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/lang"
	"github.com/evcraddock/portfolio/internal/logging"
	"github.com/evcraddock/portfolio/internal/report"
	"github.com/evcraddock/portfolio/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port      int
		reports   string
		languages string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio web server",
		Long:  "Start an HTTP server for the portfolio page and its /data, /delete-data and /report endpoints.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, reports, languages)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().StringVar(&reports, "reports", "", "heatmap CSV file served at /report (env: PORTFOLIO_REPORTS)")
	cmd.Flags().StringVar(&languages, "languages", "", "comma-separated language codes for the selector (env: PORTFOLIO_LANGUAGES)")

	return cmd
}

func runServe(port int, reportsPath, languages string) error {
	logging.Setup(isDevMode())

	if reportsPath == "" {
		reportsPath = getReportsPath()
	}
	reports, err := report.LoadFile(reportsPath)
	if err != nil {
		return fmt.Errorf("loading reports: %w", err)
	}

	var langs []string
	if languages != "" {
		langs, err = lang.ParseList(languages)
	} else {
		langs, err = getLanguages()
	}
	if err != nil {
		return err
	}

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	srv, err := web.NewServer(database, web.Config{
		Reports:   reports,
		Languages: langs,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting server",
		"url", fmt.Sprintf("http://localhost:%d", port),
		"reports", len(reports),
		"languages", langs,
	)
	return srv.ListenAndServe(ctx, port)
}
