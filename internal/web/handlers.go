package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/lang"
	"github.com/evcraddock/portfolio/internal/view"
)

type indexData struct {
	Quote     string
	Elements  []*view.Element
	Page      int
	PageCount int
	Total     int
	Lang      string
	Languages []string
}

// repoSource adapts the comment repository to view.Source so the index
// page renders through the same controller as the other clients.
type repoSource struct {
	repo *comment.Repository
}

func (rs repoSource) Comments(_ context.Context, code string) ([]*comment.Comment, error) {
	return rs.repo.List(code)
}

func (rs repoSource) DeleteComment(_ context.Context, id int64) error {
	return rs.repo.Delete(id)
}

// handleIndex renders the portfolio page with the current comment page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{
		Quote:     s.quotes.Pick(),
		Page:      1,
		Languages: s.languages,
	}

	// Unreadable controls fall back to the first page of all languages.
	page, err := view.ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		slog.Debug("ignoring page control", "error", err)
	}
	code, err := lang.Canonical(r.URL.Query().Get("lang"))
	if err != nil {
		slog.Debug("ignoring language control", "error", err)
	}
	if page > 0 {
		data.Page = page
	}
	data.Lang = code

	list := view.NewList()
	ctrl := view.NewController(repoSource{repo: s.commentRepo}, view.Fixed{PageIndex: data.Page, Lang: code}, list)
	res, err := ctrl.Fetch(r.Context())
	if err != nil {
		slog.Debug("loading comments for index", "error", err)
	} else {
		ctrl.Render(res)
		data.Total = len(res.Comments)
		data.PageCount = view.PageCount(data.Total, ctrl.PageSize())
	}
	data.Elements = list.Elements()

	if r.Header.Get("HX-Request") == "true" {
		s.render(w, "comment-list", data)
		return
	}
	s.render(w, "index.html", data)
}
