package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driven/storage/memory"
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

func newTestRatingService(userID string) (*RatingService, *memory.RatingStore) {
	store := memory.NewRatingStore()
	catalog := memory.NewCatalog([]domain.CatalogItem{
		{ID: 1, Title: "Alien"},
		{ID: 2, Title: "The Thing"},
	})
	svc := NewRatingService(memory.NewSessionStore(userID), store, catalog)
	return svc, store
}

func TestRatingService_Rate(t *testing.T) {
	svc, _ := newTestRatingService("user-1")

	rating, err := svc.Rate(context.Background(), 1, 8.5)

	require.NoError(t, err)
	assert.NotEmpty(t, rating.ID)
	assert.Equal(t, "user-1", rating.UserID)
	assert.Equal(t, 1, rating.ItemID)
	assert.Equal(t, 8.5, rating.Score)
	assert.False(t, rating.CreatedAt.IsZero())
}

func TestRatingService_Rate_ScoreOutOfRange(t *testing.T) {
	svc, _ := newTestRatingService("user-1")

	_, err := svc.Rate(context.Background(), 1, -0.5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Rate(context.Background(), 1, 10.5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRatingService_Rate_BoundaryScores(t *testing.T) {
	svc, _ := newTestRatingService("user-1")

	_, err := svc.Rate(context.Background(), 1, 0)
	assert.NoError(t, err)

	_, err = svc.Rate(context.Background(), 1, 10)
	assert.NoError(t, err)
}

func TestRatingService_Rate_UnknownItem(t *testing.T) {
	svc, store := newTestRatingService("user-1")

	_, err := svc.Rate(context.Background(), 999, 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	saved, _ := store.ListByUser(context.Background(), "user-1")
	assert.Empty(t, saved)
}

func TestRatingService_Rate_NoSession(t *testing.T) {
	svc, _ := newTestRatingService("")

	_, err := svc.Rate(context.Background(), 1, 5)

	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestRatingService_History_NewestFirst(t *testing.T) {
	svc, _ := newTestRatingService("user-1")

	_, err := svc.Rate(context.Background(), 1, 7)
	require.NoError(t, err)
	_, err = svc.Rate(context.Background(), 2, 9)
	require.NoError(t, err)

	history, err := svc.History(context.Background())

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].ItemID)
	assert.Equal(t, 1, history[1].ItemID)
}

func TestRatingService_History_NoSession(t *testing.T) {
	svc, _ := newTestRatingService("")

	_, err := svc.History(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoSession)
}
