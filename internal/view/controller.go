package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/evcraddock/portfolio/internal/comment"
)

// Source is the remote comment collection the controller syncs with.
type Source interface {
	// Comments returns the collection in backend order. An empty lang
	// means unfiltered.
	Comments(ctx context.Context, lang string) ([]*comment.Comment, error)
	// DeleteComment asks the backend to remove a comment.
	DeleteComment(ctx context.Context, id int64) error
}

// Result is the outcome of the network half of a load.
type Result struct {
	State    State
	Comments []*comment.Comment
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize overrides PageSize.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithLogger sets the logger used for load and delete failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDeleteErrorHandler registers a hook run when a background delete
// fails. The optimistic removal is not undone.
func WithDeleteErrorHandler(fn func(*comment.Comment, error)) Option {
	return func(c *Controller) {
		c.onDeleteError = fn
	}
}

// Controller keeps a List in sync with a Source for the page and
// language currently selected in the Controls.
type Controller struct {
	source   Source
	controls Controls
	list     *List
	pageSize int
	logger   *slog.Logger

	onDeleteError func(*comment.Comment, error)
	inflight      sync.WaitGroup
}

// NewController creates a controller rendering into list.
func NewController(source Source, controls Controls, list *List, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		controls: controls,
		list:     list,
		pageSize: PageSize,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns the list the controller renders into.
func (c *Controller) List() *List {
	return c.list
}

// PageSize returns the configured page size.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// LoadComments reads the controls, fetches the collection and renders
// the current page. On any failure the list is left as it was and the
// error is returned; nothing is shown to the user.
//
// Concurrent calls are not serialized: the last one to finish wins.
func (c *Controller) LoadComments(ctx context.Context) error {
	res, err := c.Fetch(ctx)
	if err != nil {
		c.logger.Debug("loading comments failed", "error", err)
		return err
	}
	c.Render(res)
	return nil
}

// Fetch performs the network half of LoadComments. It does not touch
// the list, so hosts may run it off their UI loop.
func (c *Controller) Fetch(ctx context.Context) (*Result, error) {
	if c.list == nil {
		return nil, fmt.Errorf("comment list: %w", ErrMissingControl)
	}
	state, err := ReadState(c.controls)
	if err != nil {
		return nil, err
	}
	return c.FetchState(ctx, state)
}

// FetchState fetches the collection for a state the host has already
// read from its controls.
func (c *Controller) FetchState(ctx context.Context, state State) (*Result, error) {
	comments, err := c.source.Comments(ctx, state.Lang)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	return &Result{State: state, Comments: comments}, nil
}

// Render replaces the list contents with the page window of res.
func (c *Controller) Render(res *Result) {
	start, end := Window(len(res.Comments), res.State.Page, c.pageSize)
	elems := make([]*Element, 0, end-start)
	for _, cm := range res.Comments[start:end] {
		elems = append(elems, c.CreateCommentElement(cm))
	}
	c.list.Replace(elems)
}

// CreateCommentElement maps a comment to its rendered element. The
// element's delete action sends the delete request and removes the
// element right away, without waiting for the request.
func (c *Controller) CreateCommentElement(cm *comment.Comment) *Element {
	return &Element{
		Comment: cm,
		Label:   Label(cm),
		onDelete: func(e *Element) {
			c.DeleteComment(cm)
			e.Remove()
		},
	}
}

// DeleteComment sends the delete request for cm in the background.
// There is no retry and no rollback of the displayed list.
func (c *Controller) DeleteComment(cm *comment.Comment) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if err := c.source.DeleteComment(context.Background(), cm.ID); err != nil {
			c.logger.Debug("deleting comment failed", "id", cm.ID, "error", err)
			if c.onDeleteError != nil {
				c.onDeleteError(cm, err)
			}
		}
	}()
}

// Wait blocks until every delete request started so far has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}
