package repo

import (
	"fmt"

	"shelftrack/book"
	"shelftrack/logger"
)

// SeedAuthors and SeedBooks are the fixed sample dataset inserted on first
// run. Every SeedBooks author id must appear in SeedAuthors.
var SeedAuthors = []book.Author{
	{ID: 1290, Name: "J.K. Rowling", Country: "England"},
	{ID: 8937, Name: "Charles Dickens", Country: "England"},
	{ID: 2356, Name: "C.S. Lewis", Country: "Ireland"},
	{ID: 6380, Name: "J.R.R. Tolkien", Country: "South Africa"},
	{ID: 5620, Name: "Lewis Carroll", Country: "England"},
}

var SeedBooks = []book.Book{
	{ID: 3001, Title: "A Tale of Two Cities", AuthorID: 8937, Qty: 30},
	{ID: 3002, Title: "Harry Potter and the Philosopher's Stone", AuthorID: 1290, Qty: 40},
	{ID: 3003, Title: "The Lion, the Witch and the Wardrobe", AuthorID: 2356, Qty: 25},
	{ID: 3004, Title: "The Lord of the Rings", AuthorID: 6380, Qty: 37},
	{ID: 3005, Title: "Alice's Adventures in Wonderland", AuthorID: 5620, Qty: 12},
}

// Seed populates any table that is currently empty with the given sample
// rows. Each table is checked independently, so data surviving from earlier
// runs is never touched.
func (r *Repo) Seed(authors []book.Author, books []book.Book) error {
	empty, err := r.tableEmpty("author")
	if err != nil {
		return err
	}
	if empty {
		for _, a := range authors {
			if _, err := r.db.Exec(
				`INSERT INTO author (id, name, country) VALUES (?, ?, ?)`,
				a.ID, a.Name, a.Country,
			); err != nil {
				return fmt.Errorf("seed author %d: %w", a.ID, err)
			}
		}
		logger.Info("Seeded authors", "count", len(authors))
	}

	empty, err = r.tableEmpty("book")
	if err != nil {
		return err
	}
	if empty {
		for _, b := range books {
			if _, err := r.db.Exec(
				`INSERT INTO book (id, title, author_id, qty) VALUES (?, ?, ?, ?)`,
				b.ID, b.Title, b.AuthorID, b.Qty,
			); err != nil {
				return fmt.Errorf("seed book %d: %w", b.ID, err)
			}
		}
		logger.Info("Seeded books", "count", len(books))
	}

	return nil
}

func (r *Repo) tableEmpty(table string) (bool, error) {
	// table is one of our two fixed names, never user input
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s rows: %w", table, err)
	}
	return count == 0, nil
}
