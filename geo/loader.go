package geo

import (
	"context"
	"sync/atomic"

	"github.com/lixenwraith/weatherpets/logging"
	"github.com/lixenwraith/weatherpets/status"
)

// State is the loader's lifecycle state
type State int32

const (
	Loading State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "loading"
}

// Fetcher is the one-shot geography source
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Collection, error)
}

// Loader runs the geography fetch once. Failure is logged and leaves the loader
// in Loading for the rest of the process
type Loader struct {
	fetcher Fetcher
	url     string
	log     logging.Logger

	features atomic.Pointer[Collection]
	started  atomic.Bool

	statReady    *atomic.Bool
	statFeatures *atomic.Int64
}

// NewLoader creates a loader for url
func NewLoader(fetcher Fetcher, url string, log logging.Logger, reg *status.Registry) *Loader {
	if log == nil {
		log = logging.Noop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Loader{
		fetcher:      fetcher,
		url:          url,
		log:          log.With(logging.String("component", "geo.loader")),
		statReady:    reg.Bools.Get(status.GeoReady),
		statFeatures: reg.Ints.Get(status.GeoFeatures),
	}
}

// Load performs the fetch; later calls are no-ops. It never returns an error:
// geography is cosmetic and the app keeps running without it
func (l *Loader) Load(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return nil
	}
	if l.fetcher == nil || l.url == "" {
		l.log.Info(ctx, "geography disabled, globe stays in loading state")
		return nil
	}

	c, err := l.fetcher.Fetch(ctx, l.url)
	if err != nil {
		l.log.Error(ctx, "geography fetch failed", logging.String("url", l.url), logging.Err(err))
		return nil
	}
	l.features.Store(c)
	l.statReady.Store(true)
	l.statFeatures.Store(int64(c.Len()))
	l.log.Info(ctx, "geography loaded", logging.Int("features", c.Len()))
	return nil
}

// State reports Loading until a fetch has succeeded
func (l *Loader) State() State {
	if l.features.Load() != nil {
		return Ready
	}
	return Loading
}

// Features returns the loaded collection, nil while loading
func (l *Loader) Features() *Collection {
	return l.features.Load()
}
