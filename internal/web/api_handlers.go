package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/lang"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleData routes /data: GET lists comments, POST adds one.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.apiListComments(w, r)
	case http.MethodPost:
		s.handleCommentPost(w, r)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListComments returns the comment collection, optionally filtered by ?lang=.
func (s *Server) apiListComments(w http.ResponseWriter, r *http.Request) {
	code, err := lang.Canonical(r.URL.Query().Get("lang"))
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comments, err := s.commentRepo.List(code)
	if err != nil {
		apiError(w, fmt.Sprintf("listing comments: %v", err), http.StatusInternalServerError)
		return
	}
	if comments == nil {
		comments = []*comment.Comment{}
	}

	apiJSON(w, comments, http.StatusOK)
}

// handleCommentPost stores a comment submitted by the page form and
// redirects back to the page.
func (s *Server) handleCommentPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(r.FormValue("message"))
	if message == "" {
		http.Error(w, "Comment message is required", http.StatusBadRequest)
		return
	}

	code, err := lang.Canonical(r.FormValue("lang"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var sentiment float64
	if raw := strings.TrimSpace(r.FormValue("sentiment")); raw != "" {
		sentiment, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "Sentiment must be a number", http.StatusBadRequest)
			return
		}
	}

	_, err = s.commentRepo.Add(comment.NewComment{
		Name:      r.FormValue("name"),
		Message:   message,
		Lang:      code,
		Sentiment: sentiment,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Error adding comment: %v", err), http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDeleteData removes the comment named by the form field id.
func (s *Server) handleDeleteData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		apiError(w, "invalid form body", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		apiError(w, "invalid comment ID", http.StatusBadRequest)
		return
	}

	if err := s.commentRepo.Delete(id); err != nil {
		if errors.Is(err, comment.ErrNotFound) {
			apiError(w, "comment not found", http.StatusNotFound)
			return
		}
		apiError(w, fmt.Sprintf("deleting comment: %v", err), http.StatusInternalServerError)
		return
	}

	// The page has already dropped the item; HTMX swaps in the empty body.
	if r.Header.Get("HX-Request") == "true" {
		w.WriteHeader(http.StatusOK)
		return
	}

	apiJSON(w, map[string]interface{}{"deleted": true, "id": id}, http.StatusOK)
}
