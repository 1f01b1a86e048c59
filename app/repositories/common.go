package repositories

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert trips a UNIQUE constraint
	// (user email, post title). Handlers rely on this to flash a message
	// instead of surfacing a server fault when a form-level duplicate
	// check races a concurrent insert.
	ErrDuplicate = errors.New("duplicate record")
)

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
