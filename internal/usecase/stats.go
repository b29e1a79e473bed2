package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/domain/repository"
)

// StatsUseCase computes read-time aggregates for stores and the platform.
type StatsUseCase struct {
	stores  repository.StoreRepository
	ratings repository.RatingRepository
	stats   repository.StatsRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stores repository.StoreRepository, ratings repository.RatingRepository, stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{stores: stores, ratings: ratings, stats: stats}
}

// StoreStats returns the aggregate for one store. Owners may only see their own store.
func (u *StatsUseCase) StoreStats(ctx context.Context, p model.Principal, storeID int64) (*model.StoreStats, error) {
	if err := Authorize(p, ActionViewStoreStats); err != nil {
		return nil, err
	}
	store, err := u.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeStore(p, ActionViewStoreStats, store); err != nil {
		return nil, err
	}
	reviews, err := u.ratings.ListReviews(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	return computeStoreStats(store.ID, reviews), nil
}

// StoreOwnerStats resolves the caller's store and its aggregate.
// An owner without a store gets HasStore=false rather than an error.
func (u *StatsUseCase) StoreOwnerStats(ctx context.Context, p model.Principal) (*model.OwnerStats, error) {
	if err := Authorize(p, ActionViewStoreStats); err != nil {
		return nil, err
	}
	if p.Role != model.RoleStoreOwner {
		return nil, domainErrors.ErrForbidden
	}

	store, err := u.stores.GetByOwner(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrStoreNotFound) {
			return &model.OwnerStats{HasStore: false}, nil
		}
		return nil, err
	}
	reviews, err := u.ratings.ListReviews(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	return &model.OwnerStats{
		HasStore: true,
		Store:    store,
		Stats:    computeStoreStats(store.ID, reviews),
	}, nil
}

// PlatformStats returns platform-wide counts for administrators.
func (u *StatsUseCase) PlatformStats(ctx context.Context, p model.Principal) (*model.PlatformStats, error) {
	if err := Authorize(p, ActionViewPlatformStats); err != nil {
		return nil, err
	}
	return u.stats.PlatformCounts(ctx)
}

// StoresWithRatings lists stores with their averages in a single pass over
// a grouped tally instead of rescanning ratings per store.
func (u *StatsUseCase) StoresWithRatings(ctx context.Context, p model.Principal, filter model.StoreFilter) ([]model.StoreWithRating, error) {
	if err := Authorize(p, ActionListStores); err != nil {
		return nil, err
	}
	filter.Search = strings.TrimSpace(filter.Search)
	sortByRating := filter.SortBy == "rating"
	if sortByRating {
		filter.SortBy = ""
	}

	stores, err := u.stores.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	tallies, err := u.ratings.TallyByStore(ctx)
	if err != nil {
		return nil, err
	}
	grouped := groupTallies(tallies)

	out := make([]model.StoreWithRating, 0, len(stores))
	for _, s := range stores {
		counts := grouped[s.ID]
		out = append(out, model.StoreWithRating{
			Store:        s,
			Rating:       averageOf(counts),
			TotalRatings: counts.Total(),
		})
	}
	if sortByRating {
		sortByAverage(out, filter.Desc)
	}
	return out, nil
}

func sortByAverage(list []model.StoreWithRating, desc bool) {
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return list[i].Rating > list[j].Rating
		}
		return list[i].Rating < list[j].Rating
	})
}
