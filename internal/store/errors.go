package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("store: record not found")

	// ErrDuplicate is returned when an insert violates a UNIQUE constraint.
	ErrDuplicate = errors.New("store: duplicate key")
)

// mapErr translates driver errors into the store's sentinel errors so
// callers can branch with errors.Is. go-sqlite3 surfaces constraint
// violations through the error message, so the match is string-based.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
