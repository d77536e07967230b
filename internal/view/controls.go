// Package view implements the comment view controller: it reads the
// current page and language filter from the hosting UI, fetches the
// comment collection, renders the page window into a List and wires a
// delete action onto every rendered element.
package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PageSize is the number of comments shown per page.
const PageSize = 5

var (
	// ErrMissingControl is returned when the host cannot provide a control value.
	ErrMissingControl = errors.New("view control missing")
	// ErrInvalidPage is returned when the page control does not hold a number.
	ErrInvalidPage = errors.New("invalid page")
)

// Controls exposes the current values of the host's page input and
// language selector. They are read on every load.
type Controls interface {
	Page() (int, error)
	Language() (string, error)
}

// Fixed is a Controls with values known up front, such as CLI flags or
// the query string of a request.
type Fixed struct {
	PageIndex int
	Lang      string
}

// Page implements Controls.
func (f Fixed) Page() (int, error) { return f.PageIndex, nil }

// Language implements Controls.
func (f Fixed) Language() (string, error) { return f.Lang, nil }

// ParsePage converts the raw text of a page input. Blank input selects
// the first page.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPage, raw)
	}
	return n, nil
}

// State is the view state derived from the controls for one load.
type State struct {
	Page int
	Lang string
}

// ReadState reads the page and language from c.
func ReadState(c Controls) (State, error) {
	if c == nil {
		return State{}, ErrMissingControl
	}
	page, err := c.Page()
	if err != nil {
		return State{}, fmt.Errorf("reading page: %w", err)
	}
	lang, err := c.Language()
	if err != nil {
		return State{}, fmt.Errorf("reading language: %w", err)
	}
	return State{Page: page, Lang: lang}, nil
}

// Window returns the half-open range [start, end) of a collection of
// total items shown on the 1-based page. The range is clamped to the
// collection, so a page past the end or below 1 is empty.
func Window(total, page, size int) (start, end int) {
	if page < 1 || size <= 0 {
		return 0, 0
	}
	if page > PageCount(total, size) {
		return total, total
	}
	start = (page - 1) * size
	end = min(page*size, total)
	return start, end
}

// PageCount returns how many pages total items span.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
