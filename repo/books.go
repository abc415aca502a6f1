package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"shelftrack/book"
	"shelftrack/logger"
)

// AddBook inserts a new book row. The referenced author must already exist;
// the check runs before the insert so a bad reference writes nothing.
func (r *Repo) AddBook(b book.Book) error {
	var authorID int64
	err := r.db.QueryRow(`SELECT id FROM author WHERE id = ?`, b.AuthorID).Scan(&authorID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("add book %d: author %d: %w", b.ID, b.AuthorID, ErrAuthorNotFound)
	}
	if err != nil {
		return fmt.Errorf("add book %d: check author: %w", b.ID, err)
	}

	QUERY := `INSERT INTO book (id, title, author_id, qty) VALUES (?, ?, ?, ?)`

	_, err = r.db.Exec(QUERY, b.ID, b.Title, b.AuthorID, b.Qty)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("add book %d: %w", b.ID, ErrDuplicateID)
		}
		return fmt.Errorf("add book %d: %w", b.ID, err)
	}

	logger.Debug("Book added", "id", b.ID, "title", b.Title)
	return nil
}

// GetBookWithAuthor returns the book joined with its author, or ErrNotFound.
func (r *Repo) GetBookWithAuthor(id int64) (*book.BookDetail, error) {
	QUERY := `
		SELECT book.id, book.title, author.id, author.name, author.country, book.qty
		FROM book
		INNER JOIN author ON book.author_id = author.id
		WHERE book.id = ?
	`

	var d book.BookDetail
	err := r.db.QueryRow(QUERY, id).Scan(
		&d.ID, &d.Title, &d.AuthorID, &d.AuthorName, &d.AuthorCountry, &d.Qty,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get book %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}

	return &d, nil
}

// UpdateBookQuantity sets the on-hand quantity of a single book.
func (r *Repo) UpdateBookQuantity(id, qty int64) error {
	return r.updateBook(id, `UPDATE book SET qty = ? WHERE id = ?`, qty)
}

// UpdateBookTitle sets the title of a single book.
func (r *Repo) UpdateBookTitle(id int64, title string) error {
	return r.updateBook(id, `UPDATE book SET title = ? WHERE id = ?`, title)
}

func (r *Repo) updateBook(id int64, query string, value any) error {
	result, err := r.db.Exec(query, value, id)
	if err != nil {
		return fmt.Errorf("update book %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update book %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update book %d: %w", id, ErrNotFound)
	}

	logger.Debug("Book updated", "id", id)
	return nil
}

// DeleteBook removes the book row. Zero rows affected means the id did not
// exist, reported as ErrNotFound rather than a storage failure.
func (r *Repo) DeleteBook(id int64) error {
	QUERY := `DELETE FROM book WHERE id = ?`

	result, err := r.db.Exec(QUERY, id)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete book %d: %w", id, ErrNotFound)
	}

	logger.Debug("Book deleted", "id", id)
	return nil
}

// ListBooks returns every book with its author details, ordered by book id
// ascending.
func (r *Repo) ListBooks() ([]book.Listing, error) {
	QUERY := `
		SELECT book.title, author.name, author.country
		FROM book
		JOIN author ON book.author_id = author.id
		ORDER BY book.id
	`

	rows, err := r.db.Query(QUERY)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	listings := make([]book.Listing, 0)
	for rows.Next() {
		var l book.Listing
		if err := rows.Scan(&l.Title, &l.AuthorName, &l.AuthorCountry); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	return listings, nil
}
