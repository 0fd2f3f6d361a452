package usecase

import "time"

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// RateLimiter reports whether another action for key may go ahead, and if
// not, how long to wait.
type RateLimiter interface {
	Allow(key, action string) (bool, time.Duration)
}
