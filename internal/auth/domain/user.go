package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// IsValidRole checks whether the given role string is a known user role.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	CPF          *string
	PasswordHash string
	Role         string
	Active       bool

	LoginAttempts int
	LockedUntil   *time.Time
	LastLogin     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken is a persisted entry of the active refresh-token set.
type RefreshToken struct {
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}

// LoginAttempt is one audit row; ID is assigned by the repository.
type LoginAttempt struct {
	ID          string
	Identifier  string
	IPAddress   string
	AttemptTime time.Time
	Successful  bool
}
