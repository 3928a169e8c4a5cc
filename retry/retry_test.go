package retry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableError(t *testing.T) {
	err := NewRecoverableError(errors.New("test error"))
	assert.True(t, IsRecoverable(err))
	assert.False(t, IsRecoverable(errors.New("test error")))
	assert.False(t, IsRecoverable(nil))

	// Marking survives wrapping.
	wrapped := fmt.Errorf("request failed: %w", err)
	assert.True(t, IsRecoverable(wrapped))
}

func TestRetry(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return NewRecoverableError(errors.New("test error"))
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond*20))
	assert.Error(t, err)
	assert.Equal(t, "test error", err.Error())
	assert.Equal(t, 3, count)
}

func TestRetryStopsOnUnrecoverable(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return errors.New("bad credentials")
	}, WithMaxRetries(5), WithBaseWait(time.Millisecond))
	assert.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestRetrySucceedsAfterFailure(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		if count < 2 {
			return NewRecoverableError(errors.New("flaky"))
		}
		return nil
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond))
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRetryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	count := 0
	err := Do(ctx, func() error {
		count++
		return NewRecoverableError(errors.New("flaky"))
	}, WithMaxRetries(3), WithBaseWait(time.Second))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, count)
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, ShouldRetry(http.StatusTooManyRequests))
	assert.True(t, ShouldRetry(http.StatusInternalServerError))
	assert.True(t, ShouldRetry(http.StatusBadGateway))
	assert.True(t, ShouldRetry(http.StatusServiceUnavailable))
	assert.True(t, ShouldRetry(http.StatusGatewayTimeout))
	assert.False(t, ShouldRetry(http.StatusUnauthorized))
	assert.False(t, ShouldRetry(http.StatusBadRequest))
	assert.False(t, ShouldRetry(http.StatusOK))
}
