package repo

import (
	"context"
	"errors"

	"shelftrack/book"
)

// ErrNotFound is returned when a record is not found in the repository
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned when an insert collides with an existing primary key
var ErrDuplicateID = errors.New("id already exists")

// ErrAuthorNotFound is returned when a book insert references an unknown author
var ErrAuthorNotFound = errors.New("author not found")

// Repository defines the interface for data access operations
type Repository interface {
	// Close closes the database connection
	Close() error

	// Health check
	Ping() error

	// Authors. Authors can be added and have their attributes changed, but
	// never deleted; the author's identity (id) is immutable.
	AddAuthor(a book.Author) error
	UpdateAuthorDetails(id int64, name, country string) error
	ListAuthors() ([]book.Author, error)

	// Books
	AddBook(b book.Book) error
	GetBookWithAuthor(id int64) (*book.BookDetail, error)
	UpdateBookQuantity(id, qty int64) error
	UpdateBookTitle(id int64, title string) error
	DeleteBook(id int64) error
	ListBooks() ([]book.Listing, error)

	// SearchBooks matches keyword as a substring of the title, the author
	// name, or the book id's decimal text. Rows come back in storage order.
	SearchBooks(ctx context.Context, keyword string) ([]book.SearchResult, error)

	// Seed inserts the given rows into any table that is currently empty.
	Seed(authors []book.Author, books []book.Book) error
}
