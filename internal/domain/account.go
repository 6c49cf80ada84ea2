package domain

import "time"

// Role is the privilege level carried by accounts and token claims.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role belongs to the closed {user, admin} set.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account is the domain model for API accounts. Active doubles as the
// soft-delete flag: an inactive account fails verification regardless of
// token validity.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
