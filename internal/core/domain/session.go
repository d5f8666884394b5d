package domain

import "time"

// Session identifies the signed-in user. The discovery pipeline only reads
// the user id; session lifecycle is owned elsewhere.
type Session struct {
	// UserID is the current user's identifier.
	UserID string
}

// Rating is one user-submitted rating for a catalog item.
type Rating struct {
	// ID is the unique identifier for the rating record.
	ID string

	// UserID is the submitting user.
	UserID string

	// ItemID is the rated catalog item.
	ItemID int

	// Score is the submitted score in [0, 10].
	Score float64

	// CreatedAt is when the rating was recorded.
	CreatedAt time.Time
}
