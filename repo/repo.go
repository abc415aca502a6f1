package repo

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"shelftrack/logger"
)

type Repo struct {
	db   *sql.DB
	path string
}

func (r *Repo) Close() error {
	if r.db != nil {
		logger.Info("Closing database connection")
		return r.db.Close()
	}
	return nil
}

func (r *Repo) Ping() error {
	if r.db != nil {
		return r.db.Ping()
	}
	return sql.ErrConnDone
}

// isConstraintErr reports whether err is a SQLite constraint violation,
// which for our caller-supplied primary keys means a duplicate id.
func isConstraintErr(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == sqlite3.ErrConstraint
}
