// Package web provides the HTTP server for the portfolio page and its
// data endpoints.
package web

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/lang"
	"github.com/evcraddock/portfolio/internal/logging"
	"github.com/evcraddock/portfolio/internal/quote"
	"github.com/evcraddock/portfolio/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config holds server settings.
type Config struct {
	// Reports are served on /report.
	Reports []report.Report
	// Languages offered by the language selector on the index page.
	Languages []string
	// Quotes picks the quote shown on the index page. Nil uses a random picker.
	Quotes *quote.Picker
}

// Server is the portfolio HTTP server.
type Server struct {
	commentRepo *comment.Repository
	reportsJSON []byte
	languages   []string
	quotes      *quote.Picker
	templates   *template.Template
	mux         *http.ServeMux
}

// NewServer creates a web server with the given database.
func NewServer(db *sql.DB, cfg Config) (*Server, error) {
	funcMap := template.FuncMap{
		"langName":        lang.Name,
		"formatSentiment": tmplFormatSentiment,
		"add":             func(a, b int) int { return a + b },
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	reports := cfg.Reports
	if reports == nil {
		reports = []report.Report{}
	}
	reportsJSON, err := json.Marshal(reports)
	if err != nil {
		return nil, fmt.Errorf("encoding reports: %w", err)
	}

	quotes := cfg.Quotes
	if quotes == nil {
		quotes = quote.NewPicker(nil)
	}

	s := &Server{
		commentRepo: comment.NewRepository(db),
		reportsJSON: reportsJSON,
		languages:   cfg.Languages,
		quotes:      quotes,
		templates:   tmpl,
		mux:         http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/data", s.handleData)
	s.mux.HandleFunc("/delete-data", s.handleDeleteData)
	s.mux.HandleFunc("/report", s.handleReport)
	s.mux.HandleFunc("/", s.handleIndex)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server and shuts it down when ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           logging.RequestLogger(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting web server", "addr", "http://localhost"+srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("shutting down web server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleReport serves the precomputed heatmap data.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(s.reportsJSON); err != nil {
		slog.Warn("writing reports", "error", err)
	}
}

// render executes a named template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
	}
}

func tmplFormatSentiment(v float64) string {
	switch {
	case v > 0.25:
		return fmt.Sprintf("😊 %+.2f", v)
	case v < -0.25:
		return fmt.Sprintf("☹ %+.2f", v)
	default:
		return fmt.Sprintf("😐 %+.2f", v)
	}
}
