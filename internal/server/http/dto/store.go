package dto

import (
	"time"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// CreateStoreRequest registers a store. OwnerID is only honoured for administrators.
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID int64  `json:"ownerId"`
}

// StoreResponse describes a store.
type StoreResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoreWithRatingResponse is a listed store with its computed average.
type StoreWithRatingResponse struct {
	StoreResponse
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"totalRatings"`
}

// NewStoreResponse maps a domain store.
func NewStoreResponse(s *model.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
	}
}

// NewStoreList maps listed stores, never returning nil.
func NewStoreList(stores []model.StoreWithRating) []StoreWithRatingResponse {
	out := make([]StoreWithRatingResponse, 0, len(stores))
	for i := range stores {
		out = append(out, StoreWithRatingResponse{
			StoreResponse: NewStoreResponse(&stores[i].Store),
			Rating:        stores[i].Rating,
			TotalRatings:  stores[i].TotalRatings,
		})
	}
	return out
}
