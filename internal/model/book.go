package model

// Book is the single resource managed by this service.
// This is a pure domain model with no database-specific dependencies or tags;
// it can be used across layers (HTTP, repository) without coupling to persistence.
type Book struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Author string `json:"author"`
}

// NewBookInput carries the client-supplied fields of a book. It is used both
// for creation and for full-replacement update; the id is always assigned by
// the backend and never accepted from the client.
type NewBookInput struct {
	Name   string `json:"name"`
	Author string `json:"author"`
}
