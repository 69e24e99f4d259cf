package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aasia/cladtrack/internal/repository"
)

func TestCounterRepository_Allocate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCounterRepository(db)
	ctx := context.Background()

	// First allocation hands out the seeded value
	first, err := repo.Allocate(ctx, "project", 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), first)

	// A range reservation returns the first number of the range
	first, err = repo.Allocate(ctx, "project", 3)
	require.NoError(t, err)
	require.Equal(t, int64(2), first)

	// Next value is past the whole reserved range
	current, err := repo.Current(ctx, "project")
	require.NoError(t, err)
	require.Equal(t, int64(5), current)
}

func TestCounterRepository_Allocate_Invalid(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCounterRepository(db)
	ctx := context.Background()

	_, err := repo.Allocate(ctx, "project", 0)
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = repo.Allocate(ctx, "no_such_counter", 1)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCounterRepository_Set(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCounterRepository(db)
	ctx := context.Background()

	// Overwrite an existing counter
	require.NoError(t, repo.Set(ctx, "po_line_item", 42))
	current, err := repo.Current(ctx, "po_line_item")
	require.NoError(t, err)
	require.Equal(t, int64(42), current)

	// Insert a counter that did not exist
	require.NoError(t, repo.Set(ctx, "custom", 7))
	current, err = repo.Current(ctx, "custom")
	require.NoError(t, err)
	require.Equal(t, int64(7), current)
}
