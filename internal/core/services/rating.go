package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driving"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

// Ensure RatingService implements the interface.
var _ driving.RatingService = (*RatingService)(nil)

// RatingService records user ratings for catalog items. The gateway is
// consulted so ratings can only be recorded for items that exist.
type RatingService struct {
	sessions driven.SessionStore
	ratings  driven.RatingStore
	gateway  driven.CatalogGateway
}

// NewRatingService creates a rating service.
func NewRatingService(sessions driven.SessionStore, ratings driven.RatingStore, gateway driven.CatalogGateway) *RatingService {
	return &RatingService{
		sessions: sessions,
		ratings:  ratings,
		gateway:  gateway,
	}
}

// Rate records a score for an item on behalf of the current user.
func (s *RatingService) Rate(ctx context.Context, itemID int, score float64) (domain.Rating, error) {
	if score < 0 || score > 10 {
		return domain.Rating{}, fmt.Errorf("%w: score %.1f outside [0, 10]", domain.ErrInvalidInput, score)
	}

	session, err := s.sessions.Current(ctx)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("current session: %w", err)
	}

	item, err := s.gateway.Get(ctx, itemID)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("item %d: %w", itemID, err)
	}

	rating := domain.Rating{
		ID:        uuid.NewString(),
		UserID:    session.UserID,
		ItemID:    item.ID,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ratings.Save(ctx, rating); err != nil {
		return domain.Rating{}, fmt.Errorf("save rating: %w", err)
	}

	logger.Info("Rated %q: %.1f (user %s)", item.Title, score, session.UserID)
	return rating, nil
}

// History returns the current user's ratings, newest first.
func (s *RatingService) History(ctx context.Context) ([]domain.Rating, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}

	ratings, err := s.ratings.ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}
