package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/domain/repository"
)

// StoreUseCase enforces the one-store-per-owner rule.
type StoreUseCase struct {
	stores repository.StoreRepository
	users  repository.UserRepository
}

// NewStoreUseCase constructs StoreUseCase.
func NewStoreUseCase(stores repository.StoreRepository, users repository.UserRepository) *StoreUseCase {
	return &StoreUseCase{stores: stores, users: users}
}

// Register creates the owner's single store.
// The lookup is a fast path; the repository's unique owner index is what actually
// guarantees a single store under concurrent registrations.
func (u *StoreUseCase) Register(ctx context.Context, p model.Principal, in model.NewStore) (*model.Store, error) {
	if err := Authorize(p, ActionCreateStore); err != nil {
		return nil, err
	}

	switch p.Role {
	case model.RoleStoreOwner:
		if in.OwnerID != 0 && in.OwnerID != p.UserID {
			return nil, domainErrors.ErrForbidden
		}
		in.OwnerID = p.UserID
	case model.RoleAdministrator:
		if in.OwnerID <= 0 {
			return nil, invalid("ownerId is required")
		}
		owner, err := u.users.GetByID(ctx, in.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner.Role != model.RoleStoreOwner {
			return nil, domainErrors.ErrInvalidOwner
		}
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	for _, err := range []error{ValidateName(in.Name), ValidateEmail(in.Email), ValidateAddress(in.Address)} {
		if err != nil {
			return nil, err
		}
	}

	if _, err := u.stores.GetByOwner(ctx, in.OwnerID); err == nil {
		return nil, domainErrors.ErrDuplicateStore
	} else if !errors.Is(err, domainErrors.ErrStoreNotFound) {
		return nil, err
	}

	store := &model.Store{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		OwnerID: in.OwnerID,
	}
	if err := u.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	storesRegistered.Inc()
	return store, nil
}

// ByOwner resolves the store owned by ownerID or returns ErrStoreNotFound.
func (u *StoreUseCase) ByOwner(ctx context.Context, ownerID int64) (*model.Store, error) {
	return u.stores.GetByOwner(ctx, ownerID)
}
