package repo

import (
	"context"
	"fmt"

	"shelftrack/book"
)

// SearchBooks matches keyword as a substring of the book title, the author
// name, or the decimal text of the book id. Plain LIKE wildcards, not
// full-text search; rows come back in natural storage order.
func (r *Repo) SearchBooks(ctx context.Context, keyword string) ([]book.SearchResult, error) {
	QUERY := `
		SELECT book.id, book.title, author.name, author.country, book.qty
		FROM book
		JOIN author ON book.author_id = author.id
		WHERE book.title LIKE ? OR author.name LIKE ? OR CAST(book.id AS TEXT) LIKE ?
	`

	pattern := "%" + keyword + "%"
	rows, err := r.db.QueryContext(ctx, QUERY, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	defer rows.Close()

	results := make([]book.SearchResult, 0)
	for rows.Next() {
		var res book.SearchResult
		if err := rows.Scan(&res.BookID, &res.Title, &res.AuthorName, &res.AuthorCountry, &res.Qty); err != nil {
			return nil, fmt.Errorf("scan search result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search results: %w", err)
	}

	return results, nil
}
