package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Validation("Email is required"), want: http.StatusBadRequest},
		{name: "conflict", err: Conflict("exists"), want: http.StatusBadRequest},
		{name: "auth", err: Auth("nope"), want: http.StatusUnauthorized},
		{name: "not found", err: NotFound("missing"), want: http.StatusNotFound},
		{name: "rate limited", err: RateLimited("slow down"), want: http.StatusTooManyRequests},
		{name: "server", err: Server("boom", errors.New("db down")), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("raw"), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("get user: %w", NotFound("User not found")), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "User not found", PublicMessage(NotFound("User not found")))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("pq: connection refused")))
	assert.Equal(t, "Error saving user", PublicMessage(Server("Error saving user", errors.New("pq: boom"))))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Server("failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed: cause", err.Error())
	assert.Equal(t, KindServer, KindOf(err))
	assert.Equal(t, "not_found", KindNotFound.String())
}
