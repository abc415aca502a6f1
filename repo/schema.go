package repo

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"shelftrack/logger"
)

// GetStorage opens (creating if necessary) the inventory database at path
// and ensures the schema exists.
func GetStorage(path string) (*Repo, error) {
	r := &Repo{path: path}

	db, err := sql.Open("sqlite3", "file:"+r.path+"?cache=shared&mode=rwc")
	if err != nil {
		logger.Error("Failed to open database", "path", r.path, "error", err)
		return nil, fmt.Errorf("open database: %w", err)
	}
	r.db = db

	if err := r.CreateSchema(); err != nil {
		db.Close()
		logger.Error("Failed to create schema", "error", err)
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return r, nil
}

// CreateSchema creates the author and book tables. Idempotent; the only
// migration mechanism this database has.
func (r *Repo) CreateSchema() error {
	sqlStmt := `
           CREATE TABLE IF NOT EXISTS "author" (
               id INTEGER PRIMARY KEY,
               name TEXT NOT NULL,
               country TEXT NOT NULL
           );

           CREATE TABLE IF NOT EXISTS "book" (
               id INTEGER PRIMARY KEY,
               title TEXT NOT NULL,
               author_id INTEGER NOT NULL,
               qty INTEGER NOT NULL,
               FOREIGN KEY (author_id) REFERENCES author(id)
           );
	    `
	_, err := r.db.Exec(sqlStmt)
	return err
}
