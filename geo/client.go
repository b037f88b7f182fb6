package geo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/sony/gobreaker/v2"
)

var (
	// ErrNotFound is returned when the geography source answers 404
	ErrNotFound = errors.New("geography data not found")
	// ErrUnavailable covers network failures, 5xx and an open circuit breaker
	ErrUnavailable = errors.New("geography source unavailable")
	// ErrDecode is returned for payloads that are not a usable FeatureCollection
	ErrDecode = errors.New("geography decode failed")
)

// maxBodyBytes bounds the downloaded GeoJSON
const maxBodyBytes = 64 << 20

// RetryPolicy configures retries. The zero value makes a single attempt
type RetryPolicy struct {
	MaxRetries int
	MinWait    time.Duration
	MaxWait    time.Duration
}

// ClientConfig configures a Client
type ClientConfig struct {
	Timeout   time.Duration
	Retry     RetryPolicy
	UserAgent string
	RequestID string

	// Transport is wrapped with transparent gzip; defaults to http.DefaultTransport
	Transport http.RoundTripper
}

// Client performs the one-shot geography fetch behind a circuit breaker
type Client struct {
	http      *http.Client
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	retry     RetryPolicy
	userAgent string
	requestID string
	sleepFn   func(context.Context, time.Duration) error
	rng       *rand.Rand
}

// ClientOption is a functional option for configuring a Client
type ClientOption func(*Client)

// WithSleepFunc overrides the wait between retries, for tests
func WithSleepFunc(fn func(context.Context, time.Duration) error) ClientOption {
	return func(c *Client) {
		c.sleepFn = fn
	}
}

// NewClient creates a client
func NewClient(cfg ClientConfig, opts ...ClientOption) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "geo",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil
		},
	})

	c := &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: gzhttp.Transport(cfg.Transport),
		},
		breaker:   cb,
		retry:     cfg.Retry,
		userAgent: cfg.UserAgent,
		requestID: cfg.RequestID,
		sleepFn:   sleepCtx,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads and decodes the FeatureCollection at url
func (c *Client) Fetch(ctx context.Context, url string) (*Collection, error) {
	var lastErr error
	attempts := 1 + max(c.retry.MaxRetries, 0)

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := c.sleepFn(ctx, c.backoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		body, err := c.get(ctx, url)
		if err == nil {
			return Decode(body)
		}
		lastErr = err

		// Permanent outcomes: missing resource, caller gave up, breaker open
		if errors.Is(err, ErrNotFound) || ctx.Err() != nil ||
			errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("geo request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.requestID != "" {
		req.Header.Set("X-Request-Id", c.requestID)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, doErr := c.http.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		if r.StatusCode >= 500 {
			return r, fmt.Errorf("upstream returned %d", r.StatusCode)
		}
		return r, nil
	})
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	return body, nil
}

// backoff is exponential with jitter in [MinWait, min(MaxWait, MinWait*2^attempt)]
func (c *Client) backoff(attempt int) time.Duration {
	minWait := float64(c.retry.MinWait)
	base := minWait * math.Pow(2, float64(attempt))
	if c.retry.MaxWait > 0 && base > float64(c.retry.MaxWait) {
		base = float64(c.retry.MaxWait)
	}
	if base <= minWait {
		return c.retry.MinWait
	}
	return time.Duration(minWait + c.rng.Float64()*(base-minWait))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
