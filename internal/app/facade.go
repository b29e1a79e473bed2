package app

import (
	"context"

	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/usecase"
)

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type RatingsFacade struct {
	auth    *usecase.AuthUseCase
	users   *usecase.UserUseCase
	stores  *usecase.StoreUseCase
	ratings *usecase.RatingUseCase
	stats   *usecase.StatsUseCase
	health  HealthChecker
}

func NewRatingsFacade(
	auth *usecase.AuthUseCase,
	users *usecase.UserUseCase,
	stores *usecase.StoreUseCase,
	ratings *usecase.RatingUseCase,
	stats *usecase.StatsUseCase,
	health HealthChecker,
) *RatingsFacade {
	return &RatingsFacade{auth: auth, users: users, stores: stores, ratings: ratings, stats: stats, health: health}
}

func (f *RatingsFacade) Register(ctx context.Context, in model.NewUser) (*model.User, string, error) {
	return f.auth.Register(ctx, in)
}

func (f *RatingsFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *RatingsFacade) ParseToken(token string) (model.Principal, error) {
	return f.auth.ParseToken(token)
}

func (f *RatingsFacade) ChangePassword(ctx context.Context, p model.Principal, current, next string) error {
	return f.auth.ChangePassword(ctx, p, current, next)
}

func (f *RatingsFacade) Profile(ctx context.Context, p model.Principal) (*model.User, error) {
	return f.auth.Profile(ctx, p)
}

func (f *RatingsFacade) Users(ctx context.Context, p model.Principal, filter model.UserFilter) ([]model.User, error) {
	return f.users.List(ctx, p, filter)
}

func (f *RatingsFacade) CreateUser(ctx context.Context, p model.Principal, in model.NewUser) (*model.User, error) {
	return f.users.Create(ctx, p, in)
}

func (f *RatingsFacade) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	return f.users.EnsureAdmin(ctx, name, email, password)
}

func (f *RatingsFacade) Stores(ctx context.Context, p model.Principal, filter model.StoreFilter) ([]model.StoreWithRating, error) {
	return f.stats.StoresWithRatings(ctx, p, filter)
}

func (f *RatingsFacade) RegisterStore(ctx context.Context, p model.Principal, in model.NewStore) (*model.Store, error) {
	return f.stores.Register(ctx, p, in)
}

func (f *RatingsFacade) StoreStats(ctx context.Context, p model.Principal, storeID int64) (*model.StoreStats, error) {
	return f.stats.StoreStats(ctx, p, storeID)
}

func (f *RatingsFacade) SubmitRating(ctx context.Context, p model.Principal, storeID int64, score int) (*model.Rating, bool, error) {
	return f.ratings.Submit(ctx, p, storeID, score)
}

func (f *RatingsFacade) MyRating(ctx context.Context, p model.Principal, storeID int64) (*model.Rating, error) {
	return f.ratings.Mine(ctx, p, storeID)
}

func (f *RatingsFacade) PlatformStats(ctx context.Context, p model.Principal) (*model.PlatformStats, error) {
	return f.stats.PlatformStats(ctx, p)
}

func (f *RatingsFacade) OwnerStats(ctx context.Context, p model.Principal) (*model.OwnerStats, error) {
	return f.stats.StoreOwnerStats(ctx, p)
}

func (f *RatingsFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
