package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// BookPostgres is a PostgreSQL implementation of repository.BookRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type BookPostgres struct {
	db *sql.DB
}

// NewBookPostgres creates a new BookPostgres repository.
func NewBookPostgres(db *sql.DB) *BookPostgres {
	return &BookPostgres{db: db}
}

var _ repository.BookRepository = (*BookPostgres)(nil)

// List returns up to repository.ListLimit books in unspecified order.
func (r *BookPostgres) List(ctx context.Context) ([]model.Book, error) {
	const q = `
		SELECT id, name, author
		FROM books
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.ListLimit)
	if err != nil {
		return nil, repository.WrapErr("list", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Author); err != nil {
			return nil, repository.WrapErr("list", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.WrapErr("list", err)
	}
	return books, nil
}

// FindByID fetches a single book by its id. A missing row is not an error.
func (r *BookPostgres) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
		SELECT id, name, author
		FROM books
		WHERE id = $1
	`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Name, &b.Author); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.WrapErr("get", err)
	}
	return &b, nil
}

// Insert stores a new book row and returns it with the database-assigned id.
func (r *BookPostgres) Insert(ctx context.Context, input model.NewBookInput) (*model.Book, error) {
	const q = `
		INSERT INTO books (name, author)
		VALUES ($1, $2)
		RETURNING id, name, author
	`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, input.Name, input.Author).Scan(&b.ID, &b.Name, &b.Author); err != nil {
		return nil, repository.WrapErr("insert", err)
	}
	return &b, nil
}

// Update fully replaces name/author of the matching row and returns the
// updated book, or (nil, nil) if no row matched.
func (r *BookPostgres) Update(ctx context.Context, id int64, input model.NewBookInput) (*model.Book, error) {
	const q = `
		UPDATE books
		SET name = $1, author = $2
		WHERE id = $3
		RETURNING id, name, author
	`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, input.Name, input.Author, id).Scan(&b.ID, &b.Name, &b.Author); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.WrapErr("update", err)
	}
	return &b, nil
}

// Delete removes a book by id and reports whether a row was actually deleted.
func (r *BookPostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM books WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, repository.WrapErr("delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, repository.WrapErr("delete", err)
	}
	return affected == 1, nil
}
