package file

import (
	"context"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore exposes the configured user id as the current session.
// Session lifecycle (sign-in, sign-out) is just a config edit.
type SessionStore struct {
	store *Store
}

// NewSessionStore creates a session store over the config store.
func NewSessionStore(store *Store) *SessionStore {
	return &SessionStore{store: store}
}

// Current returns the active session.
func (s *SessionStore) Current(_ context.Context) (domain.Session, error) {
	userID := s.store.Config().UserID
	if userID == "" {
		return domain.Session{}, domain.ErrNoSession
	}
	return domain.Session{UserID: userID}, nil
}
