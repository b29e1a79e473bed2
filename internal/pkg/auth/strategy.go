package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies stateless credentials carrying a principal.
// Verification trusts the embedded role until the token expires.
type Strategy interface {
	IssueToken(p model.Principal) (string, error)
	ParseToken(token string) (model.Principal, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}

const defaultTTL = 24 * time.Hour

func (o Options) ttl() time.Duration {
	if o.TTL <= 0 {
		return defaultTTL
	}
	return o.TTL
}
