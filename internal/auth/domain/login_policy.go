package domain

import "time"

const (
	DefaultMaxLoginAttempts = 3
	DefaultLockoutDuration  = 24 * time.Hour
)

// LoginPolicy decides when repeated password failures lock an account.
type LoginPolicy struct {
	MaxAttempts int
	Lockout     time.Duration
}

func DefaultLoginPolicy() LoginPolicy {
	return LoginPolicy{MaxAttempts: DefaultMaxLoginAttempts, Lockout: DefaultLockoutDuration}
}

// IsLocked reports whether u is still inside a lockout window at now.
func (p LoginPolicy) IsLocked(u *User, now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

// LockUntil is the end of a lockout that starts at now. The failure counter
// itself is kept by UserRepository.RegisterLoginFailure so that concurrent
// failures are never lost.
func (p LoginPolicy) LockUntil(now time.Time) time.Time {
	return now.Add(p.Lockout)
}

// RegisterSuccess clears the failure counter and records the login time.
func (p LoginPolicy) RegisterSuccess(u *User, now time.Time) {
	u.LoginAttempts = 0
	u.LockedUntil = nil
	u.LastLogin = &now
}
