package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	testhelpers "github.com/polkiloo/storeratings/internal/test"
	"github.com/polkiloo/storeratings/internal/usecase"
)

type healthStub struct{ err error }

func (h healthStub) HealthCheck(context.Context) error { return h.err }

func newFacade(health HealthChecker) (*RatingsFacade, *testhelpers.MemoryStore) {
	mem := testhelpers.NewMemoryStore()
	hasher := testhelpers.HasherStub{}
	strategy := testhelpers.StrategyStub{}

	facade := NewRatingsFacade(
		usecase.NewAuthUseCase(mem.Users(), hasher, strategy),
		usecase.NewUserUseCase(mem.Users(), hasher),
		usecase.NewStoreUseCase(mem.Stores(), mem.Users()),
		usecase.NewRatingUseCase(mem.Ratings(), mem.Stores()),
		usecase.NewStatsUseCase(mem.Stores(), mem.Ratings(), mem.Stats()),
		health,
	)
	return facade, mem
}

func TestRatingsFacadeEndToEnd(t *testing.T) {
	facade, _ := newFacade(nil)
	ctx := context.Background()

	created, err := facade.EnsureAdmin(ctx, "Root", "root@example.com", "Secret#123")
	if err != nil || !created {
		t.Fatalf("ensure admin failed: %v %v", created, err)
	}
	admin, adminToken, err := facade.Authenticate(ctx, "root@example.com", "Secret#123")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	adminP, err := facade.ParseToken(adminToken)
	if err != nil || adminP.UserID != admin.ID || adminP.Role != model.RoleAdministrator {
		t.Fatalf("unexpected admin principal %+v err=%v", adminP, err)
	}

	_, ownerToken, err := facade.Register(ctx, model.NewUser{Name: "Olga", Email: "olga@example.com", Password: "Secret#123", Role: model.RoleStoreOwner})
	if err != nil {
		t.Fatalf("owner register failed: %v", err)
	}
	ownerP, _ := facade.ParseToken(ownerToken)

	store, err := facade.RegisterStore(ctx, ownerP, model.NewStore{Name: "Bakery", Email: "bakery@example.com"})
	if err != nil {
		t.Fatalf("register store failed: %v", err)
	}
	if _, err := facade.RegisterStore(ctx, ownerP, model.NewStore{Name: "Second", Email: "second@example.com"}); !errors.Is(err, domainErrors.ErrDuplicateStore) {
		t.Fatalf("expected duplicate store, got %v", err)
	}

	_, userToken, err := facade.Register(ctx, model.NewUser{Name: "Nina", Email: "nina@example.com", Password: "Secret#123"})
	if err != nil {
		t.Fatalf("user register failed: %v", err)
	}
	userP, _ := facade.ParseToken(userToken)

	if _, created, err := facade.SubmitRating(ctx, userP, store.ID, 4); err != nil || !created {
		t.Fatalf("first rating failed: created=%v err=%v", created, err)
	}
	if _, created, err := facade.SubmitRating(ctx, userP, store.ID, 5); err != nil || created {
		t.Fatalf("second rating should update: created=%v err=%v", created, err)
	}
	mine, err := facade.MyRating(ctx, userP, store.ID)
	if err != nil || mine.Score != 5 {
		t.Fatalf("unexpected own rating %+v err=%v", mine, err)
	}

	ownerStats, err := facade.OwnerStats(ctx, ownerP)
	if err != nil || !ownerStats.HasStore || ownerStats.Stats.TotalRatings != 1 || ownerStats.Stats.AverageRating != 5 {
		t.Fatalf("unexpected owner stats %+v err=%v", ownerStats, err)
	}
	storeStats, err := facade.StoreStats(ctx, adminP, store.ID)
	if err != nil || storeStats.RatingCounts[5] != 1 || storeStats.RatingCounts[4] != 0 {
		t.Fatalf("unexpected store stats %+v err=%v", storeStats, err)
	}

	platform, err := facade.PlatformStats(ctx, adminP)
	if err != nil {
		t.Fatalf("platform stats failed: %v", err)
	}
	if *platform != (model.PlatformStats{TotalUsers: 3, TotalStores: 1, TotalRatings: 1, ActiveUsers: 1}) {
		t.Fatalf("unexpected platform stats %+v", platform)
	}

	stores, err := facade.Stores(ctx, adminP, model.StoreFilter{})
	if err != nil || len(stores) != 1 || stores[0].Rating != 5 {
		t.Fatalf("unexpected stores %+v err=%v", stores, err)
	}
	users, err := facade.Users(ctx, adminP, model.UserFilter{Role: model.RoleNormalUser})
	if err != nil || len(users) != 1 {
		t.Fatalf("unexpected users %+v err=%v", users, err)
	}
	if _, err := facade.Users(ctx, userP, model.UserFilter{}); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	if _, err := facade.CreateUser(ctx, adminP, model.NewUser{Name: "Ops", Email: "ops@example.com", Password: "Secret#123", Role: model.RoleAdministrator}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	if err := facade.ChangePassword(ctx, userP, "Secret#123", "Changed#123"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	profile, err := facade.Profile(ctx, userP)
	if err != nil || profile.Email != "nina@example.com" {
		t.Fatalf("unexpected profile %+v err=%v", profile, err)
	}
}

func TestRatingsFacadeHealthCheck(t *testing.T) {
	facade, _ := newFacade(nil)
	if err := facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("expected nil health without checker, got %v", err)
	}

	down := errors.New("down")
	facade, _ = newFacade(healthStub{err: down})
	if err := facade.HealthCheck(context.Background()); !errors.Is(err, down) {
		t.Fatalf("expected health error, got %v", err)
	}
}
