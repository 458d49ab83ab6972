package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestCounter counts requests per client in the current window.
type RequestCounter interface {
	IncrementRequestCount(ctx context.Context, client string) (int64, error)
}

// RateLimit rejects clients above maxPerMinute. Counter failures let the
// request through.
func RateLimit(counter RequestCounter, maxPerMinute int, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := counter.IncrementRequestCount(ctx, client)
		if err != nil {
			logger.Error("failed to check rate limit",
				zap.String("client_ip", client),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if count > int64(maxPerMinute) {
			logger.Warn("rate limit exceeded",
				zap.String("client_ip", client),
				zap.Int64("count", count),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests, try again in a minute",
			})
			return
		}

		c.Next()
	}
}
