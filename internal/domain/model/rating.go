package model

import "time"

const (
	MinScore = 1
	MaxScore = 5
)

// Rating is a single user's score for a store.
type Rating struct {
	ID        int64
	UserID    int64
	StoreID   int64
	Score     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidScore reports whether score fits the 1..5 star range.
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// Review is a rating joined with the reviewer's display name.
type Review struct {
	RatingID     int64
	UserID       int64
	ReviewerName string
	Score        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ScoreTally is the number of ratings holding Score for StoreID.
type ScoreTally struct {
	StoreID int64
	Score   int
	Count   int
}
