package handlers

import (
	"context"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in model.NewUser) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (model.Principal, error)
	ChangePassword(ctx context.Context, p model.Principal, current, next string) error
	Profile(ctx context.Context, p model.Principal) (*model.User, error)
}

// UserFacade covers administrative user management.
type UserFacade interface {
	Users(ctx context.Context, p model.Principal, filter model.UserFilter) ([]model.User, error)
	CreateUser(ctx context.Context, p model.Principal, in model.NewUser) (*model.User, error)
}

// StoreFacade covers store registration and listing.
type StoreFacade interface {
	Stores(ctx context.Context, p model.Principal, filter model.StoreFilter) ([]model.StoreWithRating, error)
	RegisterStore(ctx context.Context, p model.Principal, in model.NewStore) (*model.Store, error)
	StoreStats(ctx context.Context, p model.Principal, storeID int64) (*model.StoreStats, error)
}

// RatingFacade covers rating submission.
type RatingFacade interface {
	SubmitRating(ctx context.Context, p model.Principal, storeID int64, score int) (*model.Rating, bool, error)
	MyRating(ctx context.Context, p model.Principal, storeID int64) (*model.Rating, error)
}

// StatsFacade exposes dashboard aggregates.
type StatsFacade interface {
	PlatformStats(ctx context.Context, p model.Principal) (*model.PlatformStats, error)
	OwnerStats(ctx context.Context, p model.Principal) (*model.OwnerStats, error)
}

// HealthFacade reports storage health.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// RatingsFacade aggregates the full set of operations used across handlers.
type RatingsFacade interface {
	AuthFacade
	UserFacade
	StoreFacade
	RatingFacade
	StatsFacade
	HealthFacade
}
