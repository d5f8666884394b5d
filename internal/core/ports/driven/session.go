package driven

import (
	"context"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// SessionStore supplies the current user's session. The discovery pipeline
// only reads it to attribute rating writes.
type SessionStore interface {
	// Current returns the active session. Fails with domain.ErrNoSession
	// when no user is configured.
	Current(ctx context.Context) (domain.Session, error)
}

// RatingStore persists user-submitted ratings.
type RatingStore interface {
	// Save records one rating.
	Save(ctx context.Context, rating domain.Rating) error

	// ListByUser returns all ratings submitted by a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Rating, error)

	// Close releases the underlying store.
	Close() error
}
