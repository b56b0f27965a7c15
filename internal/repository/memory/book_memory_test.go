package memory

import (
	"context"
	"errors"
	"testing"

	"bookapi/internal/model"
	"bookapi/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookMemory_InsertThenFind(t *testing.T) {
	repo := NewBookMemory()
	ctx := context.Background()

	created, err := repo.Insert(ctx, model.NewBookInput{Name: "TAOCP", Author: "Donald Knuth"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestBookMemory_IDsAreFreshAndUnique(t *testing.T) {
	repo := NewBookMemory()
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		b, err := repo.Insert(ctx, model.NewBookInput{Name: "Book", Author: "Author"})
		require.NoError(t, err)
		assert.False(t, seen[b.ID], "id %d assigned twice", b.ID)
		seen[b.ID] = true
	}

	// Ids keep advancing past seeded rows
	repo.Seed(model.Book{ID: 100, Name: "Seeded", Author: "Author"})
	b, err := repo.Insert(ctx, model.NewBookInput{Name: "Book", Author: "Author"})
	require.NoError(t, err)
	assert.Greater(t, b.ID, int64(100))
}

func TestBookMemory_AbsenceIsAValue(t *testing.T) {
	repo := NewBookMemory()
	ctx := context.Background()

	book, err := repo.FindByID(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, book)

	book, err = repo.Update(ctx, 99, model.NewBookInput{Name: "foo", Author: "bar"})
	assert.NoError(t, err)
	assert.Nil(t, book)

	deleted, err := repo.Delete(ctx, 99)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestBookMemory_UpdateFullyReplaces(t *testing.T) {
	repo := NewBookMemory()
	ctx := context.Background()

	created, err := repo.Insert(ctx, model.NewBookInput{Name: "Great Expectations", Author: "Charles Dickens"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.NewBookInput{Name: "Great Expectations Revised", Author: "Charles Dickens"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Great Expectations Revised", updated.Name)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestBookMemory_DeleteIsIdempotentInEffect(t *testing.T) {
	repo := NewBookMemory()
	ctx := context.Background()

	created, err := repo.Insert(ctx, model.NewBookInput{Name: "TAOCP", Author: "Donald Knuth"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestBookMemory_ListRespectsCap(t *testing.T) {
	repo := NewBookMemory()
	ctx := context.Background()

	for i := 0; i < repository.ListLimit+50; i++ {
		_, err := repo.Insert(ctx, model.NewBookInput{Name: "Book", Author: "Author"})
		require.NoError(t, err)
	}

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, repository.ListLimit)
}

func TestBookMemory_FailWith(t *testing.T) {
	repo := NewBookMemory()
	ctx := context.Background()

	created, err := repo.Insert(ctx, model.NewBookInput{Name: "TAOCP", Author: "Donald Knuth"})
	require.NoError(t, err)

	cause := errors.New("something went wrong!")
	repo.FailWith(cause)

	_, err = repo.List(ctx)
	assertWrapped(t, err, cause, "list")

	_, err = repo.FindByID(ctx, created.ID)
	assertWrapped(t, err, cause, "get")

	_, err = repo.Insert(ctx, model.NewBookInput{Name: "x", Author: "y"})
	assertWrapped(t, err, cause, "insert")

	_, err = repo.Update(ctx, created.ID, model.NewBookInput{Name: "x", Author: "y"})
	assertWrapped(t, err, cause, "update")

	_, err = repo.Delete(ctx, created.ID)
	assertWrapped(t, err, cause, "delete")

	// Restoring normal behavior leaves prior state intact
	repo.FailWith(nil)
	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func assertWrapped(t *testing.T, err error, cause error, op string) {
	t.Helper()
	var repoErr *repository.Error
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, op, repoErr.Op)
	assert.ErrorIs(t, err, cause)
}
