// Package book holds the domain types shared by the store and the menu.
package book

import "fmt"

type Author struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Book struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	AuthorID int64  `json:"author_id"`
	Qty      int64  `json:"qty"`
}

// BookDetail is a book joined with its author, as shown in the update flow.
type BookDetail struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	AuthorID      int64  `json:"author_id"`
	AuthorName    string `json:"author_name"`
	AuthorCountry string `json:"author_country"`
	Qty           int64  `json:"qty"`
}

// SearchResult is one row of a keyword search across books and authors.
type SearchResult struct {
	BookID        int64  `json:"book_id"`
	Title         string `json:"title"`
	AuthorName    string `json:"author_name"`
	AuthorCountry string `json:"author_country"`
	Qty           int64  `json:"qty"`
}

func (r SearchResult) String() string {
	return fmt.Sprintf("ID: %d | Title: %s | Author: %s (%s) | Qty: %d",
		r.BookID, r.Title, r.AuthorName, r.AuthorCountry, r.Qty)
}

// Listing is the shape of a "view all books" row.
type Listing struct {
	Title         string `json:"title"`
	AuthorName    string `json:"author_name"`
	AuthorCountry string `json:"author_country"`
}
