package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"shelftrack/book"
	"shelftrack/logger"
	"shelftrack/repo"
	"shelftrack/validator"
)

// command enumerates every menu choice. Unknown input maps to cmdUnknown,
// which reports and redisplays instead of terminating.
type command int

const (
	cmdExit command = iota
	cmdAddBook
	cmdUpdateBook
	cmdDeleteBook
	cmdSearchBooks
	cmdListBooks
	cmdAddAuthor
	cmdListAuthors
	cmdUnknown
)

func parseCommand(choice string) command {
	switch choice {
	case "0":
		return cmdExit
	case "1":
		return cmdAddBook
	case "2":
		return cmdUpdateBook
	case "3":
		return cmdDeleteBook
	case "4":
		return cmdSearchBooks
	case "5":
		return cmdListBooks
	case "6":
		return cmdAddAuthor
	case "7":
		return cmdListAuthors
	default:
		return cmdUnknown
	}
}

type menu struct {
	storage repo.Repository
	in      *bufio.Scanner
	out     io.Writer
}

func newMenu(storage repo.Repository, in io.Reader, out io.Writer) *menu {
	return &menu{
		storage: storage,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// run shows the menu until the exit choice is made or input ends. Every
// operation failure is reported and the loop re-entered; nothing here is
// fatal.
func (m *menu) run() {
	for {
		fmt.Fprintln(m.out, "\n=== eBookstore System ===")
		fmt.Fprintln(m.out, "1. Add book  2. Update book  3. Remove book  4. Search books")
		fmt.Fprintln(m.out, "5. View all books  6. Add author  7. View all authors  0. Exit")

		choice, ok := m.prompt("Choice: ")
		if !ok {
			return
		}

		switch parseCommand(choice) {
		case cmdExit:
			return
		case cmdAddBook:
			m.addBook()
		case cmdUpdateBook:
			m.updateBook()
		case cmdDeleteBook:
			m.deleteBook()
		case cmdSearchBooks:
			m.searchBooks()
		case cmdListBooks:
			m.listBooks()
		case cmdAddAuthor:
			m.addAuthor()
		case cmdListAuthors:
			m.listAuthors()
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

// prompt prints label and reads one trimmed line. ok is false once input is
// exhausted, which ends the session the same way the exit choice does.
func (m *menu) prompt(label string) (line string, ok bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) addBook() {
	input, ok := m.prompt("Type a 4-digit book ID: ")
	if !ok {
		return
	}
	id, err := validator.ID(input)
	if err != nil {
		m.oops(err)
		return
	}

	input, ok = m.prompt("Book title: ")
	if !ok {
		return
	}
	title, err := validator.NonEmpty(input, "Title")
	if err != nil {
		m.oops(err)
		return
	}

	input, ok = m.prompt("Author ID (must exist): ")
	if !ok {
		return
	}
	authorID, err := validator.ID(input)
	if err != nil {
		m.oops(err)
		return
	}

	input, ok = m.prompt("Quantity of copies: ")
	if !ok {
		return
	}
	qty, err := validator.Quantity(input)
	if err != nil {
		m.oops(err)
		return
	}

	err = m.storage.AddBook(book.Book{ID: id, Title: title, AuthorID: authorID, Qty: qty})
	switch {
	case errors.Is(err, repo.ErrAuthorNotFound):
		fmt.Fprintln(m.out, "Author ID not found. Add author first.")
	case errors.Is(err, repo.ErrDuplicateID):
		fmt.Fprintln(m.out, "Book ID already exists.")
	case err != nil:
		m.storeError(err)
	default:
		fmt.Fprintf(m.out, "'%s' added successfully!\n", title)
	}
}

func (m *menu) addAuthor() {
	input, ok := m.prompt("Enter a 4-digit author ID: ")
	if !ok {
		return
	}
	id, err := validator.ID(input)
	if err != nil {
		m.oops(err)
		return
	}

	input, ok = m.prompt("Author's name: ")
	if !ok {
		return
	}
	name, err := validator.NonEmpty(input, "Name")
	if err != nil {
		m.oops(err)
		return
	}

	input, ok = m.prompt("Country: ")
	if !ok {
		return
	}
	country, err := validator.NonEmpty(input, "Country")
	if err != nil {
		m.oops(err)
		return
	}

	err = m.storage.AddAuthor(book.Author{ID: id, Name: name, Country: country})
	switch {
	case errors.Is(err, repo.ErrDuplicateID):
		fmt.Fprintln(m.out, "Author ID already exists.")
	case err != nil:
		m.storeError(err)
	default:
		fmt.Fprintf(m.out, "Author '%s' added.\n", name)
	}
}

func (m *menu) updateBook() {
	input, ok := m.prompt("Enter the book ID to update: ")
	if !ok {
		return
	}
	id, err := validator.ID(input)
	if err != nil {
		m.oops(err)
		return
	}

	detail, err := m.storage.GetBookWithAuthor(id)
	if errors.Is(err, repo.ErrNotFound) {
		fmt.Fprintln(m.out, "No book found.")
		return
	}
	if err != nil {
		m.storeError(err)
		return
	}

	fmt.Fprintf(m.out, "\nCurrent details:\nTitle: %s\nQty: %d\nAuthor: %s (%s)\n",
		detail.Title, detail.Qty, detail.AuthorName, detail.AuthorCountry)
	fmt.Fprintln(m.out, "\n1. Quantity\n2. Title\n3. Author details")

	choice, ok := m.prompt("Choice [1-3]: ")
	if !ok {
		return
	}
	if choice == "" {
		choice = "1"
	}

	switch choice {
	case "1":
		m.updateQuantity(detail)
	case "2":
		m.updateTitle(detail)
	case "3":
		m.updateAuthorDetails(detail)
	default:
		fmt.Fprintln(m.out, "Invalid choice.")
	}
}

func (m *menu) updateQuantity(detail *book.BookDetail) {
	input, ok := m.prompt("Enter new quantity: ")
	if !ok {
		return
	}
	qty, err := validator.Quantity(input)
	if err != nil {
		m.oops(err)
		return
	}

	if err := m.storage.UpdateBookQuantity(detail.ID, qty); err != nil {
		m.storeError(err)
		return
	}
	fmt.Fprintln(m.out, "Quantity updated!")
}

func (m *menu) updateTitle(detail *book.BookDetail) {
	input, ok := m.prompt("Enter new title: ")
	if !ok {
		return
	}
	title, err := validator.NonEmpty(input, "Title")
	if err != nil {
		m.oops(err)
		return
	}

	if err := m.storage.UpdateBookTitle(detail.ID, title); err != nil {
		m.storeError(err)
		return
	}
	fmt.Fprintln(m.out, "Title updated!")
}

// updateAuthorDetails rewrites the author's name and country. Empty input
// keeps the current value.
func (m *menu) updateAuthorDetails(detail *book.BookDetail) {
	name, ok := m.prompt(fmt.Sprintf("Author name [%s]: ", detail.AuthorName))
	if !ok {
		return
	}
	if name == "" {
		name = detail.AuthorName
	}

	country, ok := m.prompt(fmt.Sprintf("Author country [%s]: ", detail.AuthorCountry))
	if !ok {
		return
	}
	if country == "" {
		country = detail.AuthorCountry
	}

	if err := m.storage.UpdateAuthorDetails(detail.AuthorID, name, country); err != nil {
		m.storeError(err)
		return
	}
	fmt.Fprintln(m.out, "Author updated!")
}

func (m *menu) deleteBook() {
	input, ok := m.prompt("Book ID to delete: ")
	if !ok {
		return
	}
	id, err := validator.ID(input)
	if err != nil {
		m.oops(err)
		return
	}

	err = m.storage.DeleteBook(id)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		fmt.Fprintln(m.out, "No book found.")
	case err != nil:
		m.storeError(err)
	default:
		fmt.Fprintln(m.out, "Book removed.")
	}
}

func (m *menu) searchBooks() {
	keyword, ok := m.prompt("Keyword to search: ")
	if !ok {
		return
	}

	results, err := m.storage.SearchBooks(context.Background(), keyword)
	if err != nil {
		m.storeError(err)
		return
	}

	if len(results) == 0 {
		fmt.Fprintln(m.out, "No matches found.")
		return
	}

	fmt.Fprintln(m.out, "\nSearch results:")
	for _, res := range results {
		fmt.Fprintln(m.out, res)
	}
}

func (m *menu) listBooks() {
	listings, err := m.storage.ListBooks()
	if err != nil {
		m.storeError(err)
		return
	}

	if len(listings) == 0 {
		fmt.Fprintln(m.out, "No books in DB.")
		return
	}

	fmt.Fprintln(m.out, "\nAll books --------------------------------------------------")
	for _, l := range listings {
		fmt.Fprintf(m.out, "Title: %s\nAuthor: %s\nCountry: %s\n----------------------------------------------------\n",
			l.Title, l.AuthorName, l.AuthorCountry)
	}
}

func (m *menu) listAuthors() {
	authors, err := m.storage.ListAuthors()
	if err != nil {
		m.storeError(err)
		return
	}

	if len(authors) == 0 {
		fmt.Fprintln(m.out, "No authors in DB.")
		return
	}

	fmt.Fprintln(m.out, "\nAll authors --------------------------------------------------")
	for _, a := range authors {
		fmt.Fprintf(m.out, "ID: %d\nName: %s\nCountry: %s\n----------------------------------------------------\n",
			a.ID, a.Name, a.Country)
	}
}

// oops reports a validation failure and hands control back to the loop.
func (m *menu) oops(err error) {
	fmt.Fprintf(m.out, "Oops! %v\n", err)
}

// storeError reports an unexpected storage failure. The session keeps going.
func (m *menu) storeError(err error) {
	logger.Error("Store operation failed", "error", err)
	fmt.Fprintf(m.out, "DB error: %v\n", err)
}
