package redis

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	RequestRateLimitTTL = 1 * time.Minute
	LoginAttemptsTTL    = 15 * time.Minute
)

func RequestRateLimitKey(client string) string {
	return fmt.Sprintf("ratelimit:client:%s", client)
}

// LoginAttemptsKey is keyed by the normalised email so casing cannot dodge the limit.
func LoginAttemptsKey(email string) string {
	return fmt.Sprintf("login:failures:%s", strings.ToLower(strings.TrimSpace(email)))
}

func (c *Cache) IncrementRequestCount(ctx context.Context, client string) (int64, error) {
	return c.IncrementWithExpiry(ctx, RequestRateLimitKey(client), RequestRateLimitTTL)
}

func (c *Cache) RegisterLoginFailure(ctx context.Context, email string) (int64, error) {
	return c.IncrementWithExpiry(ctx, LoginAttemptsKey(email), LoginAttemptsTTL)
}

func (c *Cache) LoginFailures(ctx context.Context, email string) (int64, error) {
	return c.GetInt(ctx, LoginAttemptsKey(email))
}

func (c *Cache) ResetLoginFailures(ctx context.Context, email string) error {
	return c.Delete(ctx, LoginAttemptsKey(email))
}
