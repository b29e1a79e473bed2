package test

import (
	"context"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn       func(context.Context, model.NewUser) (*model.User, string, error)
	AuthenticateFn   func(context.Context, string, string) (*model.User, string, error)
	ParseFn          func(string) (model.Principal, error)
	ChangePasswordFn func(context.Context, model.Principal, string, string) error
	ProfileFn        func(context.Context, model.Principal) (*model.User, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, in model.NewUser) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.User{ID: 1, Name: in.Name, Email: in.Email, Role: model.RoleNormalUser}, "token", nil
}

// Authenticate returns a user and token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleNormalUser}, "token", nil
}

// ParseToken returns a normal user principal unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (model.Principal, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Principal{UserID: 1, Role: model.RoleNormalUser}, nil
}

// ChangePassword succeeds unless overridden.
func (s AuthFacadeStub) ChangePassword(ctx context.Context, p model.Principal, current, next string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, p, current, next)
	}
	return nil
}

// Profile echoes the principal as a user unless overridden.
func (s AuthFacadeStub) Profile(ctx context.Context, p model.Principal) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, p)
	}
	return &model.User{ID: p.UserID, Role: p.Role}, nil
}

// UserFacadeStub simulates user management.
type UserFacadeStub struct {
	UsersFn      func(context.Context, model.Principal, model.UserFilter) ([]model.User, error)
	CreateUserFn func(context.Context, model.Principal, model.NewUser) (*model.User, error)
}

// Users returns an empty list unless overridden.
func (s UserFacadeStub) Users(ctx context.Context, p model.Principal, filter model.UserFilter) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, p, filter)
	}
	return nil, nil
}

// CreateUser echoes the input unless overridden.
func (s UserFacadeStub) CreateUser(ctx context.Context, p model.Principal, in model.NewUser) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, p, in)
	}
	return &model.User{ID: 2, Name: in.Name, Email: in.Email, Role: in.Role, Address: in.Address}, nil
}

// StoreFacadeStub simulates store operations.
type StoreFacadeStub struct {
	StoresFn        func(context.Context, model.Principal, model.StoreFilter) ([]model.StoreWithRating, error)
	RegisterStoreFn func(context.Context, model.Principal, model.NewStore) (*model.Store, error)
	StoreStatsFn    func(context.Context, model.Principal, int64) (*model.StoreStats, error)
}

// Stores returns an empty list unless overridden.
func (s StoreFacadeStub) Stores(ctx context.Context, p model.Principal, filter model.StoreFilter) ([]model.StoreWithRating, error) {
	if s.StoresFn != nil {
		return s.StoresFn(ctx, p, filter)
	}
	return nil, nil
}

// RegisterStore echoes the input unless overridden.
func (s StoreFacadeStub) RegisterStore(ctx context.Context, p model.Principal, in model.NewStore) (*model.Store, error) {
	if s.RegisterStoreFn != nil {
		return s.RegisterStoreFn(ctx, p, in)
	}
	return &model.Store{ID: 1, Name: in.Name, Email: in.Email, Address: in.Address, OwnerID: in.OwnerID}, nil
}

// StoreStats returns empty stats unless overridden.
func (s StoreFacadeStub) StoreStats(ctx context.Context, p model.Principal, storeID int64) (*model.StoreStats, error) {
	if s.StoreStatsFn != nil {
		return s.StoreStatsFn(ctx, p, storeID)
	}
	return &model.StoreStats{StoreID: storeID, RatingCounts: model.NewRatingCounts()}, nil
}

// RatingFacadeStub simulates rating submission.
type RatingFacadeStub struct {
	SubmitFn   func(context.Context, model.Principal, int64, int) (*model.Rating, bool, error)
	MyRatingFn func(context.Context, model.Principal, int64) (*model.Rating, error)
}

// SubmitRating reports a created rating unless overridden.
func (s RatingFacadeStub) SubmitRating(ctx context.Context, p model.Principal, storeID int64, score int) (*model.Rating, bool, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, p, storeID, score)
	}
	return &model.Rating{ID: 1, UserID: p.UserID, StoreID: storeID, Score: score}, true, nil
}

// MyRating returns a fixed rating unless overridden.
func (s RatingFacadeStub) MyRating(ctx context.Context, p model.Principal, storeID int64) (*model.Rating, error) {
	if s.MyRatingFn != nil {
		return s.MyRatingFn(ctx, p, storeID)
	}
	return &model.Rating{ID: 1, UserID: p.UserID, StoreID: storeID, Score: 3}, nil
}

// StatsFacadeStub simulates dashboard aggregates.
type StatsFacadeStub struct {
	PlatformFn func(context.Context, model.Principal) (*model.PlatformStats, error)
	OwnerFn    func(context.Context, model.Principal) (*model.OwnerStats, error)
}

// PlatformStats returns zero counts unless overridden.
func (s StatsFacadeStub) PlatformStats(ctx context.Context, p model.Principal) (*model.PlatformStats, error) {
	if s.PlatformFn != nil {
		return s.PlatformFn(ctx, p)
	}
	return &model.PlatformStats{}, nil
}

// OwnerStats reports no store unless overridden.
func (s StatsFacadeStub) OwnerStats(ctx context.Context, p model.Principal) (*model.OwnerStats, error) {
	if s.OwnerFn != nil {
		return s.OwnerFn(ctx, p)
	}
	return &model.OwnerStats{}, nil
}

// HealthFacadeStub returns Err from HealthCheck.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// RatingsFacadeStub aggregates facade dependencies for HTTP layer tests.
type RatingsFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
	StoreFacadeStub
	RatingFacadeStub
	StatsFacadeStub
	HealthFacadeStub
}
