package repo

import (
	"fmt"

	"shelftrack/book"
	"shelftrack/logger"
)

// AddAuthor inserts a new author row. The id is caller-supplied; a collision
// with an existing author reports ErrDuplicateID.
func (r *Repo) AddAuthor(a book.Author) error {
	QUERY := `INSERT INTO author (id, name, country) VALUES (?, ?, ?)`

	_, err := r.db.Exec(QUERY, a.ID, a.Name, a.Country)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("add author %d: %w", a.ID, ErrDuplicateID)
		}
		return fmt.Errorf("add author %d: %w", a.ID, err)
	}

	logger.Debug("Author added", "id", a.ID, "name", a.Name)
	return nil
}

// UpdateAuthorDetails replaces the author's name and country. The change is
// visible through every book referencing the author. Identity (the id) never
// changes, so stored book references stay intact even when the new details
// describe a different person.
func (r *Repo) UpdateAuthorDetails(id int64, name, country string) error {
	QUERY := `UPDATE author SET name = ?, country = ? WHERE id = ?`

	result, err := r.db.Exec(QUERY, name, country, id)
	if err != nil {
		return fmt.Errorf("update author %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update author %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update author %d: %w", id, ErrNotFound)
	}

	logger.Debug("Author updated", "id", id, "name", name)
	return nil
}

// ListAuthors returns every author ordered by id ascending.
func (r *Repo) ListAuthors() ([]book.Author, error) {
	QUERY := `SELECT id, name, country FROM author ORDER BY id`

	rows, err := r.db.Query(QUERY)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	defer rows.Close()

	authors := make([]book.Author, 0)
	for rows.Next() {
		var a book.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Country); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}

	return authors, nil
}
