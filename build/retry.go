package build

import (
	"context"
	"time"

	"github.com/Bluscream/acedocs"
)

// FetchFunc downloads the body at url.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for download retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry downloads url, waiting delays[i] before retry i+1.
//
// Missing archives (ENOTFOUND) and rejected bodies (EINVALID) come back
// the same on every attempt and are returned at once. The logger, if
// provided, is called before each retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		if attempt >= len(delays) || !retryable(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// retryable reports whether another download attempt could succeed.
func retryable(err error) bool {
	switch acedocs.ErrorCode(err) {
	case acedocs.ENOTFOUND, acedocs.EINVALID:
		return false
	}
	return true
}
