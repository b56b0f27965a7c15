package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres, memory) inside this directory.

import (
	"context"
	"fmt"

	"bookapi/internal/model"
)

// ListLimit is the hard cap on the number of rows List may return.
// There is no pagination cursor; callers must not assume completeness
// beyond this cap.
const ListLimit = 100

// BookRepository defines data access for books. No business logic here —
// strictly persistence operations.
//
// Absence is a value, not an error: FindByID and Update return (nil, nil)
// when no row matches, and Delete returns false. Every non-nil error returned
// by an implementation is a *Error wrapping the backend-specific cause, so
// callers can translate any failure uniformly without knowing the backend.
type BookRepository interface {
	// List returns all books in unspecified order, capped at ListLimit rows.
	List(ctx context.Context) ([]model.Book, error)

	// FindByID returns the book with the given id, or (nil, nil) if absent.
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// Insert stores a new book; the backend assigns a fresh unique id.
	// Returns the fully populated entity. There is no uniqueness constraint
	// on name or author.
	Insert(ctx context.Context, input model.NewBookInput) (*model.Book, error)

	// Update fully replaces name/author of the row matching id.
	// Returns (nil, nil) if no row matched.
	Update(ctx context.Context, id int64, input model.NewBookInput) (*model.Book, error)

	// Delete removes the row matching id. Returns true if a row existed and
	// was removed, false if no row matched.
	Delete(ctx context.Context, id int64) (bool, error)
}

// Error wraps exactly one backend-specific failure (pool exhaustion,
// constraint violation, query failure). Callers above the repository only
// see its display text; the wrapped cause stays opaque so the backend can be
// swapped without touching the translation layer.
type Error struct {
	Op  string // repository operation: "list", "get", "insert", "update", "delete"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("book repository %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// WrapErr wraps a backend failure for the given operation.
func WrapErr(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}
