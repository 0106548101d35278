package postgres

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup by identifier yields no row
	ErrNotFound = errors.New("record not found")

	// ErrForeignKey is returned when a write references a missing row,
	// e.g. creating a show against a deleted venue or artist
	ErrForeignKey = errors.New("referenced record does not exist")
)

const pqForeignKeyViolation = "23503"

// translateError maps driver-level failures onto the typed storage errors
// so callers can branch with errors.Is instead of inspecting SQLSTATEs.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return ErrForeignKey
	}

	return err
}
