package repository

import (
	"context"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// RatingRepository describes the rating ledger.
type RatingRepository interface {
	// Upsert inserts or replaces the score for (userID, storeID) atomically.
	// The returned flag reports whether a new row was inserted.
	Upsert(ctx context.Context, userID, storeID int64, score int) (*model.Rating, bool, error)
	GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.Rating, error)
	// ListReviews returns store ratings joined with reviewer names, most recently updated first.
	ListReviews(ctx context.Context, storeID int64) ([]model.Review, error)
	// TallyByStore returns per (store, score) counts across the whole ledger.
	TallyByStore(ctx context.Context) ([]model.ScoreTally, error)
}
