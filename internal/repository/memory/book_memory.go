package memory

import (
	"context"
	"sync"

	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// BookMemory is a map-backed implementation of repository.BookRepository.
// It exists for tests and local development; a mutex guards all access so it
// is safe for concurrent use. FailWith switches the repository into a mode
// where every operation fails with the given backend error.
type BookMemory struct {
	mu      sync.Mutex
	nextID  int64
	books   map[int64]model.Book
	failErr error
}

// NewBookMemory creates an empty in-memory repository.
func NewBookMemory() *BookMemory {
	return &BookMemory{
		nextID: 1,
		books:  make(map[int64]model.Book),
	}
}

var _ repository.BookRepository = (*BookMemory)(nil)

// FailWith forces every subsequent operation to fail with err (wrapped as a
// backend error). Passing nil restores normal behavior.
func (m *BookMemory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

// Seed inserts books directly, preserving their ids. Intended for test setup.
func (m *BookMemory) Seed(books ...model.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range books {
		m.books[b.ID] = b
		if b.ID >= m.nextID {
			m.nextID = b.ID + 1
		}
	}
}

func (m *BookMemory) List(ctx context.Context) ([]model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, repository.WrapErr("list", m.failErr)
	}
	books := make([]model.Book, 0, len(m.books))
	for _, b := range m.books {
		if len(books) == repository.ListLimit {
			break
		}
		books = append(books, b)
	}
	return books, nil
}

func (m *BookMemory) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, repository.WrapErr("get", m.failErr)
	}
	b, ok := m.books[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (m *BookMemory) Insert(ctx context.Context, input model.NewBookInput) (*model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, repository.WrapErr("insert", m.failErr)
	}
	b := model.Book{
		ID:     m.nextID,
		Name:   input.Name,
		Author: input.Author,
	}
	m.nextID++
	m.books[b.ID] = b
	return &b, nil
}

func (m *BookMemory) Update(ctx context.Context, id int64, input model.NewBookInput) (*model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, repository.WrapErr("update", m.failErr)
	}
	if _, ok := m.books[id]; !ok {
		return nil, nil
	}
	b := model.Book{ID: id, Name: input.Name, Author: input.Author}
	m.books[id] = b
	return &b, nil
}

func (m *BookMemory) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return false, repository.WrapErr("delete", m.failErr)
	}
	if _, ok := m.books[id]; !ok {
		return false, nil
	}
	delete(m.books, id)
	return true, nil
}
