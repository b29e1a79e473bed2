package test

import (
	"errors"
	"fmt"

	"github.com/polkiloo/storeratings/internal/domain/model"
	pkgAuth "github.com/polkiloo/storeratings/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues readable "token-<id>-<role>" credentials unless overridden.
type StrategyStub struct {
	IssueFn func(model.Principal) (string, error)
	ParseFn func(string) (model.Principal, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(p model.Principal) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(p)
	}
	return fmt.Sprintf("token-%d-%s", p.UserID, RoleCode(p.Role)), nil
}

// ParseToken parses tokens produced by IssueToken.
func (s StrategyStub) ParseToken(token string) (model.Principal, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	var (
		id   int64
		code string
	)
	if _, err := fmt.Sscanf(token, "token-%d-%s", &id, &code); err != nil {
		return model.Principal{}, pkgAuth.ErrInvalidToken
	}
	role, ok := roleCodes[code]
	if !ok {
		return model.Principal{}, pkgAuth.ErrInvalidToken
	}
	return model.Principal{UserID: id, Role: role}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Principal model.Principal
	Err       error
	ParseFn   func(string) (model.Principal, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (model.Principal, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return model.Principal{}, s.Err
	}
	return s.Principal, nil
}

var roleCodes = map[string]model.Role{
	"user":  model.RoleNormalUser,
	"owner": model.RoleStoreOwner,
	"admin": model.RoleAdministrator,
}

// RoleCode returns the short role code StrategyStub embeds in tokens.
func RoleCode(r model.Role) string {
	for code, role := range roleCodes {
		if role == r {
			return code
		}
	}
	return "none"
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
