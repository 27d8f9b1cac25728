package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("baseURL", "base URL is required")
	assert.Equal(t, "configuration error for baseURL: base URL is required", err.Error())
}

func TestFetchError(t *testing.T) {
	inner := errors.New("connection refused")

	withStatus := NewFetchError("https://example.com/jsonapi", 404, fmt.Errorf("HTTP 404"))
	assert.Contains(t, withStatus.Error(), "status 404")

	withoutStatus := NewFetchError("https://example.com/jsonapi", 0, inner)
	assert.Contains(t, withoutStatus.Error(), "connection refused")
	assert.ErrorIs(t, withoutStatus, inner)
}

func TestRetryableError(t *testing.T) {
	err := &RetryableError{Err: errors.New("HTTP 429"), RetryAfter: 5}
	assert.Contains(t, err.Error(), "retry after 5s")
	assert.ErrorIs(t, err, err.Err)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"retryable wrapper", &RetryableError{Err: errors.New("x")}, true},
		{"fetch 503", NewFetchError("u", 503, errors.New("HTTP 503")), true},
		{"fetch 429", NewFetchError("u", 429, errors.New("HTTP 429")), true},
		{"fetch 404", NewFetchError("u", 404, errors.New("HTTP 404")), false},
		{"rate limited sentinel", ErrRateLimited, true},
		{"timeout sentinel", ErrTimeout, true},
		{"unknown resource type", ErrUnknownResourceType, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
