package dto

import (
	"time"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// ReviewResponse is one rating in a store's review list.
type ReviewResponse struct {
	ID    int64     `json:"id"`
	User  string    `json:"user"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// StoreStatsResponse is the aggregate view of one store.
type StoreStatsResponse struct {
	TotalRatings  int              `json:"totalRatings"`
	AverageRating float64          `json:"averageRating"`
	RatingCounts  map[int]int      `json:"ratingCounts"`
	Reviews       []ReviewResponse `json:"reviews"`
}

// OwnerStatsResponse is the store owner's dashboard.
type OwnerStatsResponse struct {
	HasStore bool           `json:"hasStore"`
	Store    *StoreResponse `json:"store,omitempty"`
	StoreStatsResponse
}

// PlatformStatsResponse is the administrator's dashboard.
type PlatformStatsResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
	ActiveUsers  int64 `json:"activeUsers"`
}

// NewStoreStatsResponse maps computed store statistics.
func NewStoreStatsResponse(s *model.StoreStats) StoreStatsResponse {
	counts := make(map[int]int, model.MaxScore)
	for score := model.MinScore; score <= model.MaxScore; score++ {
		counts[score] = s.RatingCounts[score]
	}
	reviews := make([]ReviewResponse, 0, len(s.Reviews))
	for _, r := range s.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:    r.RatingID,
			User:  r.ReviewerName,
			Score: r.Score,
			Date:  r.UpdatedAt,
		})
	}
	return StoreStatsResponse{
		TotalRatings:  s.TotalRatings,
		AverageRating: s.AverageRating,
		RatingCounts:  counts,
		Reviews:       reviews,
	}
}

// NewOwnerStatsResponse maps the owner dashboard; an owner without a store gets zeroed stats.
func NewOwnerStatsResponse(o *model.OwnerStats) OwnerStatsResponse {
	if !o.HasStore || o.Stats == nil {
		return OwnerStatsResponse{
			StoreStatsResponse: NewStoreStatsResponse(&model.StoreStats{RatingCounts: model.NewRatingCounts()}),
		}
	}
	resp := OwnerStatsResponse{
		HasStore:           true,
		StoreStatsResponse: NewStoreStatsResponse(o.Stats),
	}
	if o.Store != nil {
		store := NewStoreResponse(o.Store)
		resp.Store = &store
	}
	return resp
}

// NewPlatformStatsResponse maps platform counters.
func NewPlatformStatsResponse(p *model.PlatformStats) PlatformStatsResponse {
	return PlatformStatsResponse{
		TotalUsers:   p.TotalUsers,
		TotalStores:  p.TotalStores,
		TotalRatings: p.TotalRatings,
		ActiveUsers:  p.ActiveUsers,
	}
}
