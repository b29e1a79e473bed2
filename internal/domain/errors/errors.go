package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateStore     = errors.New("you already have a store registered")
	ErrDuplicateUser      = errors.New("email already registered")
	ErrInvalidScore       = errors.New("score must be between 1 and 5")
	ErrStoreNotFound      = errors.New("store not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidOwner       = errors.New("owner must be a store owner")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
