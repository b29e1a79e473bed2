package model

// Principal is the authenticated identity decoded from a credential.
// It is immutable for the lifetime of the credential.
type Principal struct {
	UserID int64
	Role   Role
}

// PrincipalOf derives the principal embedded into credentials for the user.
func PrincipalOf(u *User) Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}
