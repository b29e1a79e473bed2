package model

import "time"

// Role describes what a user is allowed to do on the platform.
type Role string

const (
	RoleNormalUser    Role = "Normal User"
	RoleStoreOwner    Role = "Store Owner"
	RoleAdministrator Role = "System Administrator"
)

// Valid reports whether role is one of the known platform roles.
func (r Role) Valid() bool {
	switch r {
	case RoleNormalUser, RoleStoreOwner, RoleAdministrator:
		return true
	}
	return false
}

// User represents a registered platform account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Address      string
	CreatedAt    time.Time
}

// NewUser carries the fields required to create an account.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     Role
}

// UserFilter narrows administrative user listings.
type UserFilter struct {
	Search string
	Role   Role
	SortBy string
	Desc   bool
}
