// Package comment provides the comment domain model and data access.
package comment

import "time"

// Comment is a visitor note left on the portfolio page.
// Lang and CreatedAt are stored but not part of the /data payload.
type Comment struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Sentiment float64   `json:"sentiment"`
	Lang      string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// AuthorName returns the author, falling back to "anonymous".
func (c *Comment) AuthorName() string {
	if c.Name == "" {
		return "anonymous"
	}
	return c.Name
}
