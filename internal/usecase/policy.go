package usecase

import (
	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
)

// Action names an operation gated by the role matrix.
type Action string

const (
	ActionSubmitRating      Action = "rating:submit"
	ActionViewStoreStats    Action = "store:stats"
	ActionCreateStore       Action = "store:create"
	ActionListUsers         Action = "user:list"
	ActionCreateUser        Action = "user:create"
	ActionListStores        Action = "store:list"
	ActionViewPlatformStats Action = "platform:stats"
	ActionChangePassword    Action = "user:password"
	ActionViewProfile       Action = "user:profile"
)

var permissions = map[model.Role]map[Action]bool{
	model.RoleNormalUser: {
		ActionSubmitRating:   true,
		ActionChangePassword: true,
		ActionViewProfile:    true,
	},
	model.RoleStoreOwner: {
		ActionSubmitRating:   true,
		ActionViewStoreStats: true,
		ActionCreateStore:    true,
		ActionChangePassword: true,
		ActionViewProfile:    true,
	},
	model.RoleAdministrator: {
		ActionSubmitRating:      true,
		ActionViewStoreStats:    true,
		ActionCreateStore:       true,
		ActionListUsers:         true,
		ActionCreateUser:        true,
		ActionListStores:        true,
		ActionViewPlatformStats: true,
		ActionChangePassword:    true,
		ActionViewProfile:       true,
	},
}

// Authorize checks the role matrix. Anything not explicitly allowed is forbidden.
func Authorize(p model.Principal, action Action) error {
	if p.UserID <= 0 {
		return domainErrors.ErrForbidden
	}
	if !permissions[p.Role][action] {
		return domainErrors.ErrForbidden
	}
	return nil
}

// AuthorizeStore applies the matrix plus the ownership rules tied to a concrete store:
// owners see only their own store's stats and cannot rate their own store.
func AuthorizeStore(p model.Principal, action Action, store *model.Store) error {
	if err := Authorize(p, action); err != nil {
		return err
	}
	if p.Role != model.RoleStoreOwner || store == nil {
		return nil
	}
	owns := store.OwnerID == p.UserID
	switch action {
	case ActionViewStoreStats:
		if !owns {
			return domainErrors.ErrForbidden
		}
	case ActionSubmitRating:
		if owns {
			return domainErrors.ErrForbidden
		}
	}
	return nil
}
