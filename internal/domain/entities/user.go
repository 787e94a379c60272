package entities

import "time"

// Roles are a flat privilege level, not a hierarchy.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// User is an account. PasswordHash is a bcrypt hash and must never leave the
// process; call Sanitized before writing a user to an HTTP response.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe for API responses.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// RoleAllowed reports whether role is one of the required roles. An empty
// required set means any authenticated caller.
func RoleAllowed(role string, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}
