package comment

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a comment ID does not exist.
var ErrNotFound = errors.New("comment not found")

// Repository provides CRUD operations for comments.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a comment repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// NewComment holds the fields a visitor submits.
type NewComment struct {
	Name      string
	Message   string
	Lang      string
	Sentiment float64
}

// Add stores a new comment and returns it as read back from the database.
func (r *Repository) Add(nc NewComment) (*Comment, error) {
	message := strings.TrimSpace(nc.Message)
	if message == "" {
		return nil, fmt.Errorf("comment message is required")
	}
	if nc.Sentiment < -1 || nc.Sentiment > 1 {
		return nil, fmt.Errorf("sentiment must be between -1 and 1")
	}

	result, err := r.db.Exec(
		"INSERT INTO comments (name, message, lang, sentiment) VALUES (?, ?, ?, ?)",
		strings.TrimSpace(nc.Name), message, nc.Lang, nc.Sentiment,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a single comment.
func (r *Repository) GetByID(id int64) (*Comment, error) {
	var c Comment
	err := r.db.QueryRow(
		"SELECT id, name, message, sentiment, lang, created_at FROM comments WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.Message, &c.Sentiment, &c.Lang, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading comment: %w", err)
	}
	return &c, nil
}

// List returns comments in insertion order. A non-empty lang restricts
// the result to comments stored with that language code.
func (r *Repository) List(lang string) (comments []*Comment, err error) {
	query := "SELECT id, name, message, sentiment, lang, created_at FROM comments"
	var args []interface{}
	if lang != "" {
		query += " WHERE lang = ?"
		args = append(args, lang)
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Name, &c.Message, &c.Sentiment, &c.Lang, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}

	return comments, nil
}

// Delete removes a comment by ID.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}

	return nil
}
