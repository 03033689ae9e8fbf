package domain

import "errors"

// Role is the access-level tag carried by a user. It controls which parts of
// the screen graph are reachable (the admin tab in particular).
type Role string

const (
	// RoleGuest is the implicit role of an unauthenticated session. It is
	// never stored on a user record.
	RoleGuest      Role = "guest"
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether r is a role the remote API can assign to a user.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// CanManageProducts reports whether the role grants access to the product
// management surface (admin tab, product mutations, image upload).
func (r Role) CanManageProducts() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// User models an account returned by the remote API.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}
