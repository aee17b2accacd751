// Package dberr is the store-error boundary: repositories translate driver
// errors into these sentinels so services never inspect store-specific shapes.
package dberr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound: a school-scoped lookup matched no row. Doubles as the
	// tenant-isolation signal — an id owned by another school is
	// indistinguishable from a missing id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey: a composite uniqueness constraint was violated.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Postgres drivers (pgx wrapped by gorm, lib/pq) both expose SQLSTATE through
// this method; probing the interface avoids importing either driver here.
type sqlStater interface {
	SQLState() string
}

// Translate maps a raw store error to a domain sentinel. Unknown errors pass
// through unchanged for the HTTP layer to turn into a generic 500.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if IsDuplicateKey(err) {
		return ErrDuplicateKey
	}
	return err
}

// IsDuplicateKey reports whether err is a Postgres unique violation
// (SQLSTATE 23505), checked structurally first with a string fallback for
// wrapped drivers.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var st sqlStater
	if errors.As(err, &st) && st.SQLState() == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key value violates unique constraint")
}
