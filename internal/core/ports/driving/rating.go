package driving

import (
	"context"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// RatingService records user ratings for catalog items.
type RatingService interface {
	// Rate records a score in [0, 10] for an item on behalf of the
	// current user. Fails with domain.ErrInvalidInput for an out-of-range
	// score and domain.ErrNoSession when no user is configured.
	Rate(ctx context.Context, itemID int, score float64) (domain.Rating, error)

	// History returns the current user's ratings, newest first.
	History(ctx context.Context) ([]domain.Rating, error)
}
