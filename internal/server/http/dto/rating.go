package dto

import (
	"time"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// SubmitRatingRequest carries a 1..5 score for a store.
type SubmitRatingRequest struct {
	StoreID int64 `json:"storeId"`
	Score   int   `json:"score"`
}

// RatingResponse describes a stored rating.
type RatingResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	StoreID   int64     `json:"storeId"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRatingResponse maps a domain rating.
func NewRatingResponse(r *model.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		Score:     r.Score,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
