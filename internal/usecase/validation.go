package usecase

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
)

const (
	maxNameLength     = 60
	maxAddressLength  = 400
	minPasswordLength = 8
	maxPasswordLength = 16
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	nameRules     = fmt.Sprintf("required,max=%d", maxNameLength)
	addressRules  = fmt.Sprintf("max=%d", maxAddressLength)
	passwordRules = fmt.Sprintf("min=%d,max=%d", minPasswordLength, maxPasswordLength)
)

// failedTag returns the first validator tag that rejected the value.
func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainErrors.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ValidateName checks display names of users and stores.
func ValidateName(name string) error {
	if err := validate.Var(name, nameRules); err != nil {
		if failedTag(err) == "required" {
			return invalid("name is required")
		}
		return invalid("name must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidateEmail checks e-mail syntax.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return invalid("a valid email is required")
	}
	return nil
}

// ValidateAddress checks the optional postal address.
func ValidateAddress(address string) error {
	if err := validate.Var(address, addressRules); err != nil {
		return invalid("address must be at most %d characters", maxAddressLength)
	}
	return nil
}

// ValidatePassword enforces length plus at least one upper-case and one special character.
func ValidatePassword(password string) error {
	if err := validate.Var(password, passwordRules); err != nil {
		return invalid("password must be %d-%d characters", minPasswordLength, maxPasswordLength)
	}
	var upper, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r):
			special = true
		}
	}
	if !upper || !special {
		return invalid("password must contain an upper-case letter and a special character")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
