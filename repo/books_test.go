package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack/book"
)

func TestAddBookRoundTrip(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	b := book.Book{ID: 3006, Title: "The Casual Vacancy", AuthorID: 1290, Qty: 7}
	require.NoError(t, r.AddBook(b))

	detail, err := r.GetBookWithAuthor(3006)
	require.NoError(t, err)
	assert.Equal(t, b.Title, detail.Title)
	assert.Equal(t, b.AuthorID, detail.AuthorID)
	assert.Equal(t, "J.K. Rowling", detail.AuthorName)
	assert.Equal(t, "England", detail.AuthorCountry)
	assert.Equal(t, b.Qty, detail.Qty)
}

func TestAddBookUnknownAuthor(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	err := r.AddBook(book.Book{ID: 3006, Title: "Ghost Book", AuthorID: 9999, Qty: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	// nothing may have been written
	assert.EqualValues(t, 5, countRows(t, r, "book"))
	_, err = r.GetBookWithAuthor(3006)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddBookDuplicateID(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	err := r.AddBook(book.Book{ID: 3001, Title: "Impostor", AuthorID: 1290, Qty: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)

	// first row stays intact
	detail, err := r.GetBookWithAuthor(3001)
	require.NoError(t, err)
	assert.Equal(t, "A Tale of Two Cities", detail.Title)
}

func TestGetBookWithAuthorNotFound(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	_, err := r.GetBookWithAuthor(4444)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookQuantityOnlyTouchesQty(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	before, err := r.GetBookWithAuthor(3002)
	require.NoError(t, err)

	require.NoError(t, r.UpdateBookQuantity(3002, 99))

	after, err := r.GetBookWithAuthor(3002)
	require.NoError(t, err)
	assert.EqualValues(t, 99, after.Qty)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.AuthorID, after.AuthorID)
	assert.Equal(t, before.AuthorName, after.AuthorName)
}

func TestUpdateBookTitle(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	require.NoError(t, r.UpdateBookTitle(3004, "The Fellowship of the Ring"))

	detail, err := r.GetBookWithAuthor(3004)
	require.NoError(t, err)
	assert.Equal(t, "The Fellowship of the Ring", detail.Title)
	assert.EqualValues(t, 37, detail.Qty)
}

func TestUpdateBookNotFound(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	assert.ErrorIs(t, r.UpdateBookQuantity(4444, 1), ErrNotFound)
	assert.ErrorIs(t, r.UpdateBookTitle(4444, "Nope"), ErrNotFound)
}

func TestDeleteBook(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	require.NoError(t, r.DeleteBook(3003))
	assert.EqualValues(t, 4, countRows(t, r, "book"))

	_, err := r.GetBookWithAuthor(3003)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBookNotFound(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	err := r.DeleteBook(4444)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	// row count invariant
	assert.EqualValues(t, 5, countRows(t, r, "book"))
}

func TestListBooksOrderedByID(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	// Insert out of id order; listing must still come back ascending
	require.NoError(t, r.AddBook(book.Book{ID: 1005, Title: "Hard Times", AuthorID: 8937, Qty: 3}))

	listings, err := r.ListBooks()
	require.NoError(t, err)
	require.Len(t, listings, 6)
	assert.Equal(t, "Hard Times", listings[0].Title)
	assert.Equal(t, "A Tale of Two Cities", listings[1].Title)
	assert.Equal(t, "Alice's Adventures in Wonderland", listings[5].Title)
}
