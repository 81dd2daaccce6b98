package entity

import (
	"time"
)

// Role determines which endpoints a session may invoke.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAgent  Role = "AGENT"
	RoleAdmin  Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password.
//
// VerificationToken and VerificationExpiresAt are set at signup and cleared
// in the same statement that flips IsVerified, so a present token always
// belongs to an unverified account.
type User struct {
	ID                    string
	Email                 string
	Password              string
	Name                  string
	Phone                 string
	Role                  Role
	IsVerified            bool
	VerificationToken     *string
	VerificationExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
