package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack/book"
)

func TestSeedFreshDatabase(t *testing.T) {
	r := setupTestRepo(t)

	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	authors, err := r.ListAuthors()
	require.NoError(t, err)
	require.Len(t, authors, 5)

	wantIDs := []int64{1290, 2356, 5620, 6380, 8937}
	for i, a := range authors {
		assert.Equal(t, wantIDs[i], a.ID)
	}

	books, err := r.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 5)
	assert.Equal(t, "A Tale of Two Cities", books[0].Title)
}

func TestSeedIsIdempotent(t *testing.T) {
	r := setupTestRepo(t)

	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	assert.EqualValues(t, 5, countRows(t, r, "author"))
	assert.EqualValues(t, 5, countRows(t, r, "book"))
}

func TestSeedTablesIndependently(t *testing.T) {
	r := setupTestRepo(t)
	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	// Empty out the books and mutate an author; reseeding must restore the
	// books without touching the surviving author rows.
	for _, b := range SeedBooks {
		require.NoError(t, r.DeleteBook(b.ID))
	}
	require.NoError(t, r.UpdateAuthorDetails(1290, "Robert Galbraith", "England"))

	require.NoError(t, r.Seed(SeedAuthors, SeedBooks))

	assert.EqualValues(t, 5, countRows(t, r, "book"))

	authors, err := r.ListAuthors()
	require.NoError(t, err)
	var got book.Author
	for _, a := range authors {
		if a.ID == 1290 {
			got = a
		}
	}
	assert.Equal(t, "Robert Galbraith", got.Name)
}
