package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storeratings/internal/pkg/auth"
)

// UserUseCase serves administrative user management.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// List returns users matching filter.
func (u *UserUseCase) List(ctx context.Context, p model.Principal, filter model.UserFilter) ([]model.User, error) {
	if err := Authorize(p, ActionListUsers); err != nil {
		return nil, err
	}
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, invalid("unknown role %q", filter.Role)
	}
	return u.users.List(ctx, filter)
}

// Create adds an account of any role on behalf of an administrator.
func (u *UserUseCase) Create(ctx context.Context, p model.Principal, in model.NewUser) (*model.User, error) {
	if err := Authorize(p, ActionCreateUser); err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = model.RoleNormalUser
	}
	return createUser(ctx, u.users, u.hasher, in)
}

// EnsureAdmin creates the bootstrap administrator unless the e-mail is already taken.
// It reports whether an account was created.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	_, err := createUser(ctx, u.users, u.hasher, model.NewUser{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleAdministrator,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrDuplicateUser) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
