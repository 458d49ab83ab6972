package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "ratelimit:client:10.0.0.1", RequestRateLimitKey("10.0.0.1"))
	assert.Equal(t, "login:failures:a@x.com", LoginAttemptsKey("  A@X.com "))
	assert.Equal(t, LoginAttemptsKey("a@x.com"), LoginAttemptsKey("A@x.COM"))
}
