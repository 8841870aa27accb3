package build_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Bluscream/acedocs"
	"github.com/Bluscream/acedocs/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("returns body on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		body, err := build.FetchWithRetry(context.Background(), "u", func(_ context.Context, _ string) ([]byte, error) {
			calls++
			return []byte("ok"), nil
		}, nil, []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, []byte("ok"), body)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success and logs attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		var logs []string
		body, err := build.FetchWithRetry(context.Background(), "u", func(_ context.Context, _ string) ([]byte, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("timeout")
			}
			return []byte("ok"), nil
		}, func(format string, args ...any) {
			logs = append(logs, fmt.Sprintf(format, args...))
		}, []time.Duration{0, 0, 0})

		require.NoError(t, err)
		assert.Equal(t, []byte("ok"), body)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []string{"retry u (attempt 2): timeout", "retry u (attempt 3): timeout"}, logs)
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := build.FetchWithRetry(context.Background(), "u", func(_ context.Context, _ string) ([]byte, error) {
			calls++
			return nil, fmt.Errorf("attempt %d", calls)
		}, nil, []time.Duration{0})

		require.EqualError(t, err, "attempt 2")
	})

	t.Run("stops waiting when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		_, err := build.FetchWithRetry(ctx, "u", func(_ context.Context, _ string) ([]byte, error) {
			cancel()
			return nil, errors.New("failed")
		}, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("does not retry a missing archive", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := build.FetchWithRetry(context.Background(), "u", func(_ context.Context, _ string) ([]byte, error) {
			calls++
			return nil, acedocs.Errorf(acedocs.ENOTFOUND, "HTTP 404 for u")
		}, nil, []time.Duration{0, 0, 0})

		assert.Equal(t, acedocs.ENOTFOUND, acedocs.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("does not retry a rejected body", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := build.FetchWithRetry(context.Background(), "u", func(_ context.Context, _ string) ([]byte, error) {
			calls++
			return nil, fmt.Errorf("read: %w", acedocs.Errorf(acedocs.EINVALID, "body too large"))
		}, nil, []time.Duration{0, 0})

		assert.Equal(t, acedocs.EINVALID, acedocs.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("retries server errors", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := build.FetchWithRetry(context.Background(), "u", func(_ context.Context, _ string) ([]byte, error) {
			calls++
			return nil, acedocs.Errorf(acedocs.EINTERNAL, "HTTP 503 for u")
		}, nil, []time.Duration{0, 0})

		assert.Equal(t, acedocs.EINTERNAL, acedocs.ErrorCode(err))
		assert.Equal(t, 3, calls)
	})
}
