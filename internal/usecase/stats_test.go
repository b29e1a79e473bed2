package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	testhelpers "github.com/polkiloo/storeratings/internal/test"
)

type statsFixture struct {
	mem     *testhelpers.MemoryStore
	stats   *StatsUseCase
	ratings *RatingUseCase
	admin   model.Principal
	owner   model.Principal
	store   *model.Store
}

func newStatsFixture(t *testing.T) statsFixture {
	t.Helper()
	mem := testhelpers.NewMemoryStore()
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mem.Now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	admin := mem.SeedUser("Admin", "admin@example.com", model.RoleAdministrator)
	owner := mem.SeedUser("Olga", "olga@example.com", model.RoleStoreOwner)
	return statsFixture{
		mem:     mem,
		stats:   NewStatsUseCase(mem.Stores(), mem.Ratings(), mem.Stats()),
		ratings: NewRatingUseCase(mem.Ratings(), mem.Stores()),
		admin:   model.PrincipalOf(admin),
		owner:   model.PrincipalOf(owner),
		store:   mem.SeedStore("Bakery", owner.ID),
	}
}

func (f statsFixture) rate(t *testing.T, name string, storeID int64, score int) model.Principal {
	t.Helper()
	u := f.mem.SeedUser(name, name+"@example.com", model.RoleNormalUser)
	p := model.PrincipalOf(u)
	_, _, err := f.ratings.Submit(context.Background(), p, storeID, score)
	require.NoError(t, err)
	return p
}

func TestStatsUseCaseStoreStats(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	f.rate(t, "ann", f.store.ID, 5)
	f.rate(t, "ben", f.store.ID, 4)
	cid := f.rate(t, "cid", f.store.ID, 4)

	stats, err := f.stats.StoreStats(ctx, f.owner, f.store.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRatings)
	assert.Equal(t, 4.3, stats.AverageRating)
	assert.Equal(t, model.RatingCounts{1: 0, 2: 0, 3: 0, 4: 2, 5: 1}, stats.RatingCounts)
	require.Len(t, stats.Reviews, 3)
	assert.Equal(t, "cid", stats.Reviews[0].ReviewerName)

	// updating moves the review to the top and never adds a row
	_, created, err := f.ratings.Submit(ctx, model.Principal{UserID: stats.Reviews[2].UserID, Role: model.RoleNormalUser}, f.store.ID, 1)
	require.NoError(t, err)
	assert.False(t, created)

	stats, err = f.stats.StoreStats(ctx, f.admin, f.store.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRatings)
	assert.Equal(t, 3.0, stats.AverageRating)
	assert.Equal(t, "ann", stats.Reviews[0].ReviewerName)
	assert.Equal(t, 1, stats.Reviews[0].Score)

	_, err = f.stats.StoreStats(ctx, cid, f.store.ID)
	assert.ErrorIs(t, err, domainErrors.ErrForbidden)
}

func TestStatsUseCaseStoreStatsOwnerScoping(t *testing.T) {
	f := newStatsFixture(t)
	other := f.mem.SeedUser("Oscar", "oscar@example.com", model.RoleStoreOwner)
	otherStore := f.mem.SeedStore("Deli", other.ID)

	_, err := f.stats.StoreStats(context.Background(), f.owner, otherStore.ID)
	assert.ErrorIs(t, err, domainErrors.ErrForbidden)

	_, err = f.stats.StoreStats(context.Background(), f.admin, 999)
	assert.ErrorIs(t, err, domainErrors.ErrStoreNotFound)
}

func TestStatsUseCaseStoreOwnerStats(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()
	f.rate(t, "ann", f.store.ID, 2)

	got, err := f.stats.StoreOwnerStats(ctx, f.owner)
	require.NoError(t, err)
	require.True(t, got.HasStore)
	assert.Equal(t, f.store.ID, got.Store.ID)
	assert.Equal(t, 1, got.Stats.TotalRatings)
	assert.Equal(t, 2.0, got.Stats.AverageRating)

	lonely := f.mem.SeedUser("Lonely", "lonely@example.com", model.RoleStoreOwner)
	got, err = f.stats.StoreOwnerStats(ctx, model.PrincipalOf(lonely))
	require.NoError(t, err)
	assert.False(t, got.HasStore)
	assert.Nil(t, got.Stats)

	_, err = f.stats.StoreOwnerStats(ctx, f.admin)
	assert.ErrorIs(t, err, domainErrors.ErrForbidden)
}

func TestStatsUseCaseOwnerStatsFollowRegistration(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()
	stores := NewStoreUseCase(f.mem.Stores(), f.mem.Users())

	newcomer := model.PrincipalOf(f.mem.SeedUser("Newcomer", "newcomer@example.com", model.RoleStoreOwner))

	before, err := f.stats.StoreOwnerStats(ctx, newcomer)
	require.NoError(t, err)
	assert.False(t, before.HasStore)
	assert.Nil(t, before.Store)
	assert.Nil(t, before.Stats)

	store, err := stores.Register(ctx, newcomer, model.NewStore{Name: "Fresh Market", Email: "fresh@shop.test", Address: "2 High St"})
	require.NoError(t, err)

	after, err := f.stats.StoreOwnerStats(ctx, newcomer)
	require.NoError(t, err)
	require.True(t, after.HasStore)
	assert.Equal(t, store.ID, after.Store.ID)
	require.NotNil(t, after.Stats)
	assert.Equal(t, 0, after.Stats.TotalRatings)
	assert.Equal(t, 0.0, after.Stats.AverageRating)
	assert.Equal(t, model.RatingCounts{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, after.Stats.RatingCounts)
	assert.Empty(t, after.Stats.Reviews)
}

func TestStatsUseCaseResubmissionClearsOldBucket(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	u := f.rate(t, "una", f.store.ID, 3)

	stats, err := f.stats.StoreStats(ctx, f.owner, f.store.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRatings)
	assert.Equal(t, 3.0, stats.AverageRating)
	assert.Equal(t, model.RatingCounts{1: 0, 2: 0, 3: 1, 4: 0, 5: 0}, stats.RatingCounts)

	_, created, err := f.ratings.Submit(ctx, u, f.store.ID, 5)
	require.NoError(t, err)
	assert.False(t, created)

	stats, err = f.stats.StoreStats(ctx, f.owner, f.store.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRatings)
	assert.Equal(t, 5.0, stats.AverageRating)
	assert.Equal(t, model.RatingCounts{1: 0, 2: 0, 3: 0, 4: 0, 5: 1}, stats.RatingCounts)
	assert.Equal(t, stats.TotalRatings, stats.RatingCounts.Total())
	assert.Equal(t, 1, f.mem.RatingCount())
}

func TestStatsUseCasePlatformStats(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	ann := f.rate(t, "ann", f.store.ID, 5)
	f.mem.SeedUser("idle", "idle@example.com", model.RoleNormalUser)
	_, _, err := f.ratings.Submit(ctx, ann, f.store.ID, 3)
	require.NoError(t, err)

	got, err := f.stats.PlatformStats(ctx, f.admin)
	require.NoError(t, err)
	assert.Equal(t, &model.PlatformStats{TotalUsers: 4, TotalStores: 1, TotalRatings: 1, ActiveUsers: 1}, got)

	_, err = f.stats.PlatformStats(ctx, f.owner)
	assert.ErrorIs(t, err, domainErrors.ErrForbidden)
}

func TestStatsUseCaseStoresWithRatings(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()
	other := f.mem.SeedUser("Oscar", "oscar@example.com", model.RoleStoreOwner)
	deli := f.mem.SeedStore("Deli", other.ID)
	third := f.mem.SeedUser("Tess", "tess@example.com", model.RoleStoreOwner)
	empty := f.mem.SeedStore("Empty", third.ID)

	f.rate(t, "ann", f.store.ID, 5)
	f.rate(t, "ben", f.store.ID, 4)
	f.rate(t, "cid", deli.ID, 2)

	list, err := f.stats.StoresWithRatings(ctx, f.admin, model.StoreFilter{SortBy: "rating", Desc: true})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, f.store.ID, list[0].ID)
	assert.Equal(t, 4.5, list[0].Rating)
	assert.Equal(t, 2, list[0].TotalRatings)
	assert.Equal(t, deli.ID, list[1].ID)
	assert.Equal(t, 2.0, list[1].Rating)
	assert.Equal(t, empty.ID, list[2].ID)
	assert.Zero(t, list[2].Rating)

	searched, err := f.stats.StoresWithRatings(ctx, f.admin, model.StoreFilter{Search: "deli"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, deli.ID, searched[0].ID)

	_, err = f.stats.StoresWithRatings(ctx, f.owner, model.StoreFilter{})
	assert.ErrorIs(t, err, domainErrors.ErrForbidden)
}

func TestStatsUseCasePropagatesStorageErrors(t *testing.T) {
	f := newStatsFixture(t)
	f.mem.Err = domainErrors.ErrStorageUnavailable

	_, err := f.stats.PlatformStats(context.Background(), f.admin)
	assert.True(t, errors.Is(err, domainErrors.ErrStorageUnavailable))
}

func TestStatsUseCaseCountsConcurrentRaters(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	const raters = 25
	principals := make([]model.Principal, 0, raters)
	for i := 0; i < raters; i++ {
		u := testhelpers.RandomUser(model.RoleNormalUser)
		require.NoError(t, f.mem.Users().Create(ctx, u))
		principals = append(principals, model.PrincipalOf(u))
	}

	var wg sync.WaitGroup
	for i, p := range principals {
		wg.Add(1)
		go func(p model.Principal, score int) {
			defer wg.Done()
			_, _, err := f.ratings.Submit(ctx, p, f.store.ID, score)
			assert.NoError(t, err)
		}(p, i%5+1)
	}
	wg.Wait()

	stats, err := f.stats.StoreStats(ctx, f.owner, f.store.ID)
	require.NoError(t, err)
	assert.Equal(t, raters, stats.TotalRatings)
	assert.Equal(t, raters, stats.RatingCounts.Total())
	assert.Equal(t, 3.0, stats.AverageRating)

	platform, err := f.stats.PlatformStats(ctx, f.admin)
	require.NoError(t, err)
	assert.EqualValues(t, raters, platform.ActiveUsers)
	assert.EqualValues(t, raters, platform.TotalRatings)
	assert.EqualValues(t, raters+2, platform.TotalUsers)
}
