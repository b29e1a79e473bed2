package model

// RatingCounts maps every score value 1..5 to the number of ratings holding it.
type RatingCounts map[int]int

// NewRatingCounts returns a histogram with all five buckets present.
func NewRatingCounts() RatingCounts {
	counts := make(RatingCounts, MaxScore)
	for s := MinScore; s <= MaxScore; s++ {
		counts[s] = 0
	}
	return counts
}

// Total sums all buckets.
func (c RatingCounts) Total() int {
	var total int
	for _, n := range c {
		total += n
	}
	return total
}

// StoreStats aggregates the ratings of a single store.
type StoreStats struct {
	StoreID       int64
	TotalRatings  int
	AverageRating float64
	RatingCounts  RatingCounts
	Reviews       []Review
}

// OwnerStats is the store owner's dashboard view. Stats is nil when HasStore is false.
type OwnerStats struct {
	HasStore bool
	Store    *Store
	Stats    *StoreStats
}

// PlatformStats summarises the whole platform.
// ActiveUsers counts users that have submitted at least one rating.
type PlatformStats struct {
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
	ActiveUsers  int64
}

// StoreWithRating is a store listed together with its computed average.
type StoreWithRating struct {
	Store
	Rating       float64
	TotalRatings int
}
