package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storeratings/internal/pkg/auth"
)

// AuthUseCase handles sign-up, sign-in, credentials and own-account operations.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a self-service account and returns it with a fresh token.
// Only Normal User (default) and Store Owner accounts may be self-registered.
func (u *AuthUseCase) Register(ctx context.Context, in model.NewUser) (*model.User, string, error) {
	if in.Role == "" {
		in.Role = model.RoleNormalUser
	}
	if in.Role == model.RoleAdministrator {
		return nil, "", domainErrors.ErrForbidden
	}

	usr, err := createUser(ctx, u.users, u.hasher, in)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(model.PrincipalOf(usr))
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(model.PrincipalOf(usr))
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// ParseToken validates a credential and returns the principal it carries.
func (u *AuthUseCase) ParseToken(token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, domainErrors.ErrInvalidCredential
	}
	p, err := u.tokens.ParseToken(token)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrInvalidToken) {
			return model.Principal{}, domainErrors.ErrInvalidCredential
		}
		return model.Principal{}, err
	}
	return p, nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (u *AuthUseCase) ChangePassword(ctx context.Context, p model.Principal, current, next string) error {
	if err := Authorize(p, ActionChangePassword); err != nil {
		return err
	}
	if err := ValidatePassword(next); err != nil {
		return err
	}

	usr, err := u.users.GetByID(ctx, p.UserID)
	if err != nil {
		return err
	}
	if err := u.hasher.Compare(usr.PasswordHash, current); err != nil {
		return domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return u.users.UpdatePassword(ctx, usr.ID, hash)
}

// Profile returns the caller's own account.
func (u *AuthUseCase) Profile(ctx context.Context, p model.Principal) (*model.User, error) {
	if err := Authorize(p, ActionViewProfile); err != nil {
		return nil, err
	}
	return u.users.GetByID(ctx, p.UserID)
}

func createUser(ctx context.Context, users repository.UserRepository, hasher pkgAuth.PasswordHasher, in model.NewUser) (*model.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Address = strings.TrimSpace(in.Address)

	if !in.Role.Valid() {
		return nil, invalid("unknown role %q", in.Role)
	}
	for _, err := range []error{
		ValidateName(in.Name),
		ValidateEmail(in.Email),
		ValidateAddress(in.Address),
		ValidatePassword(in.Password),
	} {
		if err != nil {
			return nil, err
		}
	}

	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	usr := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Address:      in.Address,
	}
	if err := users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}
