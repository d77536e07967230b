// Package client provides an HTTP client for the portfolio data endpoints.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/report"
)

// Client is an HTTP client for the portfolio backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Comments returns the comment collection, filtered server-side when
// lang is non-empty. It satisfies view.Source.
func (c *Client) Comments(ctx context.Context, lang string) ([]*comment.Comment, error) {
	path := "/data"
	if lang != "" {
		path += "?" + url.Values{"lang": {lang}}.Encode()
	}

	var comments []*comment.Comment
	if err := c.get(ctx, path, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment submits a comment the way the page's form does.
func (c *Client) AddComment(ctx context.Context, nc comment.NewComment) error {
	form := url.Values{
		"name":      {nc.Name},
		"message":   {nc.Message},
		"lang":      {nc.Lang},
		"sentiment": {strconv.FormatFloat(nc.Sentiment, 'f', -1, 64)},
	}
	return c.postForm(ctx, "/data", form, nil)
}

// DeleteComment asks the backend to remove a comment. It satisfies view.Source.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	form := url.Values{"id": {strconv.FormatInt(id, 10)}}
	return c.postForm(ctx, "/delete-data", form, nil)
}

// Reports returns the heatmap data points.
func (c *Client) Reports(ctx context.Context) ([]report.Report, error) {
	var reports []report.Report
	if err := c.get(ctx, "/report", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// postForm performs a form-encoded POST request.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, result)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
