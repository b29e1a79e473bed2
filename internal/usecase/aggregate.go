package usecase

import (
	"math"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// computeStoreStats folds a store's reviews into totals, histogram and average.
// Derived values are always computed here and never stored.
func computeStoreStats(storeID int64, reviews []model.Review) *model.StoreStats {
	counts := model.NewRatingCounts()
	for _, r := range reviews {
		if model.ValidScore(r.Score) {
			counts[r.Score]++
		}
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return &model.StoreStats{
		StoreID:       storeID,
		TotalRatings:  counts.Total(),
		AverageRating: averageOf(counts),
		RatingCounts:  counts,
		Reviews:       reviews,
	}
}

// groupTallies turns per-(store, score) counts into one histogram per store.
func groupTallies(tallies []model.ScoreTally) map[int64]model.RatingCounts {
	out := make(map[int64]model.RatingCounts)
	for _, t := range tallies {
		if !model.ValidScore(t.Score) || t.Count <= 0 {
			continue
		}
		counts, ok := out[t.StoreID]
		if !ok {
			counts = model.NewRatingCounts()
			out[t.StoreID] = counts
		}
		counts[t.Score] += t.Count
	}
	return out
}

// averageOf returns the mean score rounded to one decimal, 0 for no ratings.
func averageOf(counts model.RatingCounts) float64 {
	var sum, n int
	for score, c := range counts {
		sum += score * c
		n += c
	}
	if n == 0 {
		return 0
	}
	return roundToTenth(float64(sum) / float64(n))
}

// roundToTenth rounds half away from zero.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
