package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Brunera17/TCC/internal/auth/domain UserRepository,RefreshTokenStore

import (
	"context"
	"time"
)

// UserRepository lookups only return active users; a missing user is (nil, nil).
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByCPF(ctx context.Context, cpf string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateLoginState(ctx context.Context, user *User) error
	// RegisterLoginFailure atomically counts one failed password check. When the
	// count reaches maxAttempts the account is locked until lockUntil and the
	// counter resets. user is refreshed with the stored outcome.
	RegisterLoginFailure(ctx context.Context, user *User, maxAttempts int, lockUntil time.Time) error
	RecordLoginAttempt(ctx context.Context, attempt *LoginAttempt) error
}

// RefreshExpiryGrace is how long a store keeps a token past its expiry, so
// that verification can still report it as expired rather than revoked.
const RefreshExpiryGrace = time.Minute

// RefreshTokenStore tracks the identities of refresh tokens that have not been
// revoked. Implementations must be safe for concurrent use.
type RefreshTokenStore interface {
	Add(ctx context.Context, tokenID string, expiresAt time.Time) error
	Contains(ctx context.Context, tokenID string) (bool, error)
	Remove(ctx context.Context, tokenID string) error
}
