package view

import (
	"fmt"
	"sync"

	"github.com/evcraddock/portfolio/internal/comment"
)

// Element is a rendered comment: its label plus a bound delete action.
// It lives until the next render replaces it or it is deleted.
type Element struct {
	Comment *comment.Comment
	Label   string

	onDelete func(*Element)

	mu     sync.Mutex
	parent *List
}

// Label formats the text shown for a comment.
func Label(c *comment.Comment) string {
	return fmt.Sprintf("%s: %s", c.AuthorName(), c.Message)
}

// Delete runs the element's delete action.
func (e *Element) Delete() {
	if e.onDelete != nil {
		e.onDelete(e)
	}
}

// Remove detaches the element from the list it was appended to.
// It reports whether the element was attached.
func (e *Element) Remove() bool {
	e.mu.Lock()
	parent := e.parent
	e.mu.Unlock()
	if parent == nil {
		return false
	}
	return parent.Remove(e)
}

// Attached reports whether the element is currently in a list.
func (e *Element) Attached() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.parent != nil
}

func (e *Element) setParent(l *List) {
	e.mu.Lock()
	e.parent = l
	e.mu.Unlock()
}

// List is the container the rendered elements are appended to.
type List struct {
	mu       sync.Mutex
	elements []*Element
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Replace swaps the contents of the list for elems in one step.
func (l *List) Replace(elems []*Element) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.detachAll()
	l.elements = make([]*Element, 0, len(elems))
	for _, e := range elems {
		l.elements = append(l.elements, e)
		e.setParent(l)
	}
}

// Remove deletes e from the list, reporting whether it was present.
func (l *List) Remove(e *Element) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cur := range l.elements {
		if cur == e {
			l.elements = append(l.elements[:i], l.elements[i+1:]...)
			e.setParent(nil)
			return true
		}
	}
	return false
}

// Elements returns a snapshot of the current elements in display order.
func (l *List) Elements() []*Element {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Element, len(l.elements))
	copy(out, l.elements)
	return out
}

// Len returns the number of elements shown.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.elements)
}

func (l *List) detachAll() {
	for _, e := range l.elements {
		e.setParent(nil)
	}
}
