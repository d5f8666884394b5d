package memory

import (
	"context"
	"sync"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
)

// Ensure RatingStore implements the interface.
var _ driven.RatingStore = (*RatingStore)(nil)

// RatingStore is an in-memory rating store.
type RatingStore struct {
	mu      sync.RWMutex
	ratings []domain.Rating
}

// NewRatingStore creates an empty rating store.
func NewRatingStore() *RatingStore {
	return &RatingStore{}
}

// Save records one rating.
func (r *RatingStore) Save(_ context.Context, rating domain.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ratings = append(r.ratings, rating)
	return nil
}

// ListByUser returns a user's ratings, newest first.
func (r *RatingStore) ListByUser(_ context.Context, userID string) ([]domain.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Rating
	for i := len(r.ratings) - 1; i >= 0; i-- {
		if r.ratings[i].UserID == userID {
			out = append(out, r.ratings[i])
		}
	}
	return out, nil
}

// Close is a no-op.
func (r *RatingStore) Close() error {
	return nil
}

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is a fixed in-memory session.
type SessionStore struct {
	userID string
}

// NewSessionStore creates a session store for the given user id.
// An empty id behaves as "no session".
func NewSessionStore(userID string) *SessionStore {
	return &SessionStore{userID: userID}
}

// Current returns the fixed session.
func (s *SessionStore) Current(_ context.Context) (domain.Session, error) {
	if s.userID == "" {
		return domain.Session{}, domain.ErrNoSession
	}
	return domain.Session{UserID: s.userID}, nil
}
