// Package clock supplies the current UTC time as a Julian Day, from the
// local system clock or from the Date header of a remote HTTP server.
package clock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/codeGROOVE-dev/jdcal/pkg/julian"
)

// Source reports the current time.
type Source interface {
	Now(ctx context.Context) (time.Time, error)
}

// System reads the local clock.
type System struct{}

// Now returns time.Now in UTC.
func (System) Now(context.Context) (time.Time, error) {
	return time.Now().UTC(), nil
}

// NowJD returns the current UTC Julian Day from src.
func NowJD(ctx context.Context, src Source) (float64, error) {
	t, err := src.Now(ctx)
	if err != nil {
		return 0, err
	}
	return julian.FromTime(t), nil
}

// ErrNoDate is returned when a server response carries no usable Date header.
var ErrNoDate = errors.New("no Date header in response")

// permanentError marks failures that retrying cannot fix.
type permanentError struct{ err error }

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// HTTP reads the time from the Date header of a HEAD request. The header has
// one-second resolution, which matches the resolution of civil fields.
type HTTP struct {
	URL      string
	Client   *http.Client
	Logger   *slog.Logger
	Attempts uint
	Delay    time.Duration
}

// NewHTTP returns an HTTP source for url with the default client, five
// attempts and a one-second base delay.
func NewHTTP(url string, logger *slog.Logger) *HTTP {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTP{
		URL:      url,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
		Attempts: 5,
		Delay:    time.Second,
	}
}

// Now queries the server, retrying network errors, 429 and 5xx responses
// with exponential backoff and jitter. Zero Attempts means one attempt.
func (h *HTTP) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	var lastErr error

	err := retry.Do(
		func() error {
			t, err := h.fetch(ctx)
			if err != nil {
				lastErr = err
				return err
			}
			now = t
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(max(h.Attempts, 1)),
		retry.Delay(h.Delay),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			h.Logger.Debug("retrying time request",
				"attempt", n+1,
				"url", h.URL,
				"error", err)
		}),
		retry.RetryIf(func(err error) bool {
			var perm permanentError
			return !errors.As(err, &perm)
		}),
	)
	if err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return time.Time{}, fmt.Errorf("fetching time from %s: %w", h.URL, lastErr)
	}
	return now, nil
}

func (h *HTTP) fetch(ctx context.Context) (time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.URL, http.NoBody)
	if err != nil {
		return time.Time{}, permanentError{err}
	}
	req.Header.Set("User-Agent", "jdcal/1.0")

	resp, err := h.Client.Do(req)
	if err != nil {
		// Network errors are retryable
		return time.Time{}, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		if closeErr := resp.Body.Close(); closeErr != nil {
			h.Logger.Debug("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return time.Time{}, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	date := resp.Header.Get("Date")
	if date == "" {
		return time.Time{}, permanentError{ErrNoDate}
	}
	t, err := http.ParseTime(date)
	if err != nil {
		return time.Time{}, permanentError{fmt.Errorf("%w: %w", ErrNoDate, err)}
	}
	h.Logger.Debug("fetched time", "url", h.URL, "date", date, "status", resp.StatusCode)
	return t.UTC(), nil
}
