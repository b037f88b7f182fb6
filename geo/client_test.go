package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weatherpets/status"
)

func noSleep(context.Context, time.Duration) error { return nil }

func TestClient_FetchSuccess(t *testing.T) {
	var gotUA, gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleGeoJSON))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{UserAgent: "weatherpets-test", RequestID: "run-1"})
	col, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, "weatherpets-test", gotUA)
	assert.Equal(t, "run-1", gotID)
}

func TestClient_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{}, WithSleepFunc(noSleep))
	_, err := c.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RetriesWhenConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleGeoJSON))
	}))
	defer srv.Close()

	var waits []time.Duration
	c := NewClient(ClientConfig{Retry: RetryPolicy{MaxRetries: 3, MinWait: time.Millisecond, MaxWait: 10 * time.Millisecond}},
		WithSleepFunc(func(_ context.Context, d time.Duration) error {
			waits = append(waits, d)
			return nil
		}))
	col, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, waits, 2)
	for _, w := range waits {
		assert.GreaterOrEqual(t, w, time.Millisecond)
		assert.LessOrEqual(t, w, 10*time.Millisecond)
	}
}

func TestClient_NotFoundIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Retry: RetryPolicy{MaxRetries: 5}}, WithSleepFunc(noSleep))
	_, err := c.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"Topology"}`))
	}))
	defer srv.Close()

	_, err := NewClient(ClientConfig{}).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrDecode)
}

type fakeFetcher struct {
	col   *Collection
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(context.Context, string) (*Collection, error) {
	f.calls++
	return f.col, f.err
}

func TestLoader_ReadyOnSuccess(t *testing.T) {
	col, err := Decode([]byte(sampleGeoJSON))
	require.NoError(t, err)
	reg := status.NewRegistry()
	ff := &fakeFetcher{col: col}

	l := NewLoader(ff, "http://geo", nil, reg)
	assert.Equal(t, Loading, l.State())
	assert.Nil(t, l.Features())

	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, Ready, l.State())
	assert.Equal(t, 3, l.Features().Len())
	assert.True(t, reg.Bools.Get(status.GeoReady).Load())
	assert.Equal(t, int64(3), reg.Ints.Get(status.GeoFeatures).Load())

	// One-shot
	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, 1, ff.calls)
}

func TestLoader_FailureStaysLoading(t *testing.T) {
	ff := &fakeFetcher{err: errors.New("boom")}
	l := NewLoader(ff, "http://geo", nil, nil)

	assert.NoError(t, l.Load(context.Background()))
	assert.Equal(t, Loading, l.State())
	assert.Nil(t, l.Features())

	// No retry on later calls
	assert.NoError(t, l.Load(context.Background()))
	assert.Equal(t, 1, ff.calls)
}

func TestLoader_DisabledWithoutURL(t *testing.T) {
	ff := &fakeFetcher{}
	l := NewLoader(ff, "", nil, nil)
	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, Loading, l.State())
	assert.Equal(t, 0, ff.calls)
}
