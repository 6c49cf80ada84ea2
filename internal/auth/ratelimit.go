package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrLoginLocked reports an actual lockout. Any other error from Check is an
// infrastructure fault, not a statement about the caller's credentials.
var ErrLoginLocked = errors.New("too many failed login attempts")

// LoginLimiter throttles failed login attempts per email using a Redis
// counter with a lockout expiry. It fails open when no client is configured
// so a missing Redis never blocks logins.
type LoginLimiter struct {
	client   *redis.Client
	attempts int
	lockout  time.Duration
}

// NewLoginLimiter builds a limiter. attempts <= 0 disables throttling.
func NewLoginLimiter(client *redis.Client, attempts int, lockout time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, attempts: attempts, lockout: lockout}
}

// Check reports whether the email is currently locked out, returning
// ErrLoginLocked when it is.
func (l *LoginLimiter) Check(ctx context.Context, email string) error {
	if l == nil || l.client == nil || l.attempts <= 0 {
		return nil
	}

	count, err := l.client.Get(ctx, loginKey(email)).Int64()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("check login limit: %w", err)
	}
	if int(count) >= l.attempts {
		return ErrLoginLocked
	}
	return nil
}

// RecordFailure increments the failed-attempt counter and refreshes the
// lockout window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	if l == nil || l.client == nil || l.attempts <= 0 {
		return nil
	}

	pipe := l.client.Pipeline()
	pipe.Incr(ctx, loginKey(email))
	pipe.Expire(ctx, loginKey(email), l.lockout)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record failed login: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Del(ctx, loginKey(email)).Err()
}

func loginKey(email string) string {
	return "ratelimit:login:" + email
}
