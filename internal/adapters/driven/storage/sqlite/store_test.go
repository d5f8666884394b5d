package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func ratingFor(userID string, itemID int, score float64, at time.Time) domain.Rating {
	return domain.Rating{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemID:    itemID,
		Score:     score,
		CreatedAt: at,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "marquee.db"), store.Path())
}

func TestStore_SaveAndListByUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Save(ctx, ratingFor("user-1", 1, 7.5, now)))
	require.NoError(t, store.Save(ctx, ratingFor("user-1", 2, 9, now.Add(time.Second))))
	require.NoError(t, store.Save(ctx, ratingFor("user-2", 1, 3, now)))

	ratings, err := store.ListByUser(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, 2, ratings[0].ItemID, "newest first")
	assert.Equal(t, 1, ratings[1].ItemID)
	assert.Equal(t, 7.5, ratings[1].Score)
}

func TestStore_ListByUser_Empty(t *testing.T) {
	store := newTestStore(t)

	ratings, err := store.ListByUser(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestStore_RoundTripsTimestamp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 5, 4, 12, 30, 45, 123456789, time.UTC)

	require.NoError(t, store.Save(ctx, ratingFor("user-1", 1, 5, at)))

	ratings, err := store.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.True(t, at.Equal(ratings[0].CreatedAt))
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), ratingFor("user-1", 1, 5, time.Now())))
	require.NoError(t, store.Close())

	// Reopening re-runs migrate; existing data must survive.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	ratings, err := store.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
}
