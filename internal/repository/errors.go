// Package repository holds the MySQL data access layer. Repositories are
// bound to a database.DBTX so a service can run several of them inside one
// transaction.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is wrapped by every "entity missing" error. Handlers translate
// it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is wrapped by uniqueness violations. Handlers translate it into
// an HTTP 409 response.
var ErrConflict = errors.New("conflict")

var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrExerciseNotFound = fmt.Errorf("exercise %w", ErrNotFound)
	ErrWorkoutNotFound  = fmt.Errorf("workout %w", ErrNotFound)
	ErrEmailExists      = fmt.Errorf("email already registered: %w", ErrConflict)
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// placeholders returns "?,?,?" with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
