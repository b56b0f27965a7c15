package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"bookapi/internal/http/middleware"
	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// The five book routes speak the plain-text error dialect of the original
// API: 400/404 carry a short human-readable line, 500 carries the backend
// error's display text verbatim. Success bodies are JSON.
//
// The handlers never look inside a repository error; any non-nil error is a
// backend failure and maps to 500. Absence arrives as a value (nil book,
// false) and maps to 404. Malformed input is terminated here, before any
// repository call.

// auditWriter receives one JSON line per successful mutating operation.
// Overridable in tests.
var auditWriter io.Writer = os.Stdout

// logMutation records a successful mutating operation: operation name,
// entity id, and outcome.
func logMutation(c *fiber.Ctx, op string, id int64, outcome string) {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	_ = json.NewEncoder(auditWriter).Encode(map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "info",
		"request_id": rid,
		"op":         op,
		"book_id":    id,
		"outcome":    outcome,
	})
}

// parseBookID parses the id path segment as a signed integer.
func parseBookID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func invalidBookID(c *fiber.Ctx, raw string) error {
	return c.Status(fiber.StatusBadRequest).
		SendString(fmt.Sprintf("Invalid book ID: %s", raw))
}

func bookNotFound(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusNotFound).
		SendString(fmt.Sprintf("No book found with ID: %d", id))
}

func backendFailure(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
}

// ListBooks returns all books, capped at the repository's fixed page size.
func ListBooks(repo repository.BookRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		books, err := repo.List(c.UserContext())
		if err != nil {
			return backendFailure(c, err)
		}
		return c.JSON(books)
	}
}

// GetBook returns a single book by id.
func GetBook(repo repository.BookRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("id")
		id, err := parseBookID(raw)
		if err != nil {
			return invalidBookID(c, raw)
		}
		book, err := repo.FindByID(c.UserContext(), id)
		if err != nil {
			return backendFailure(c, err)
		}
		if book == nil {
			return bookNotFound(c, id)
		}
		return c.JSON(book)
	}
}

// InsertBook creates a new book from the request body; the backend assigns the id.
func InsertBook(repo repository.BookRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.NewBookInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid book payload")
		}
		book, err := repo.Insert(c.UserContext(), input)
		if err != nil {
			return backendFailure(c, err)
		}
		logMutation(c, "insert", book.ID, "created")
		return c.JSON(book)
	}
}

// UpdateBook fully replaces the name/author of the book matching the id.
func UpdateBook(repo repository.BookRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("id")
		id, err := parseBookID(raw)
		if err != nil {
			return invalidBookID(c, raw)
		}
		var input model.NewBookInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid book payload")
		}
		book, err := repo.Update(c.UserContext(), id, input)
		if err != nil {
			return backendFailure(c, err)
		}
		if book == nil {
			return bookNotFound(c, id)
		}
		logMutation(c, "update", id, "updated")
		return c.JSON(book)
	}
}

// DeleteBook removes the book matching the id.
func DeleteBook(repo repository.BookRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("id")
		id, err := parseBookID(raw)
		if err != nil {
			return invalidBookID(c, raw)
		}
		deleted, err := repo.Delete(c.UserContext(), id)
		if err != nil {
			return backendFailure(c, err)
		}
		if !deleted {
			return bookNotFound(c, id)
		}
		logMutation(c, "delete", id, "deleted")
		return c.SendStatus(fiber.StatusNoContent)
	}
}
