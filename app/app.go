// Package app wires the weather feed, pet registry, motion, globe, antenna and radio
// into one frame-driven state owner. Every method except Snapshot runs on the frame goroutine
package app

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/weatherpets/antenna"
	"github.com/lixenwraith/weatherpets/audio"
	"github.com/lixenwraith/weatherpets/engine"
	"github.com/lixenwraith/weatherpets/geo"
	"github.com/lixenwraith/weatherpets/globe"
	"github.com/lixenwraith/weatherpets/input"
	"github.com/lixenwraith/weatherpets/logging"
	"github.com/lixenwraith/weatherpets/motion"
	"github.com/lixenwraith/weatherpets/pet"
	"github.com/lixenwraith/weatherpets/settings"
	"github.com/lixenwraith/weatherpets/status"
	"github.com/lixenwraith/weatherpets/weather"
)

// DefaultActive is the initial active country set
var DefaultActive = []string{"france", "japan"}

// GeoSource provides the world outline once it has loaded
type GeoSource interface {
	State() geo.State
	Features() *geo.Collection
}

// Config configures an App
type Config struct {
	Feed      weather.Source
	Geo       GeoSource
	Scheduler *engine.Scheduler
	Output    audio.Output
	Stations  []audio.Station

	Active     []string
	Settings   settings.Settings
	AutoRotate bool
	Volume     int

	Rand    *rand.Rand
	Logger  logging.Logger
	Metrics *status.Registry
}

// App is the single owner of the simulation state
type App struct {
	// ===== Immutable After Init =====
	feed  weather.Source
	geo   GeoSource
	sched *engine.Scheduler
	rng   *rand.Rand
	log   logging.Logger

	globe   *globe.Controller
	antenna *antenna.Spring
	radio   *audio.Radio

	// ===== Frame-Goroutine Exclusive =====
	catalog   *pet.Catalog
	active    *pet.ActiveSet
	pets      []pet.Pet
	selection pet.Selection
	wanderers map[string]*motion.Wanderer

	settings settings.Settings
	tab      Tab
	search   string
	panel    panel

	globeDrag  input.Drag
	globeMoved bool
	knobDrag   input.Drag

	outlook outlookCache

	primed       bool
	lastVersion  uint64
	lastRevision uint64
	closed       bool

	// ===== Atomic (Self-Synchronized) =====
	view atomic.Pointer[View]

	statPets       *atomic.Int64
	statRecomputes *atomic.Int64
	statAntenna    *status.AtomicFloat
}

// New creates the app and derives the initial pet list from the current snapshot
func New(cfg Config) *App {
	if cfg.Feed == nil {
		cfg.Feed = weather.NewFeed(weather.FeedConfig{Rand: cfg.Rand, Logger: cfg.Logger, Metrics: cfg.Metrics})
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = engine.NewScheduler(engine.NewMonotonicTimeProvider())
	}
	if cfg.Active == nil {
		cfg.Active = DefaultActive
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Noop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}

	a := &App{
		feed:           cfg.Feed,
		geo:            cfg.Geo,
		sched:          cfg.Scheduler,
		rng:            cfg.Rand,
		log:            cfg.Logger.With(logging.String("component", "app")),
		antenna:        antenna.NewSpring(),
		active:         pet.NewActiveSet(cfg.Active...),
		wanderers:      make(map[string]*motion.Wanderer),
		settings:       cfg.Settings,
		panel:          newPanel(),
		statPets:       cfg.Metrics.Ints.Get(status.PetsActive),
		statRecomputes: cfg.Metrics.Ints.Get(status.Recomputes),
		statAntenna:    cfg.Metrics.Floats.Get(status.AntennaAngle),
	}

	a.globe = globe.NewController(a.sched, globe.Config{
		AutoRotate: cfg.AutoRotate,
		OnToggle:   func(name string) { a.ToggleCountry(name) },
		IsActive:   a.isActiveName,
		Metrics:    cfg.Metrics,
	})
	a.radio = audio.NewRadio(a.sched, audio.RadioConfig{
		Output:   cfg.Output,
		Stations: cfg.Stations,
		Volume:   cfg.Volume,
		Rand:     a.rng,
		OnPlay:   a.Boing,
		Logger:   cfg.Logger,
		Metrics:  cfg.Metrics,
	})

	a.refresh()
	a.publish(a.sched.Now())
	return a
}

// Tick advances one frame: pending recomputes first, then motion, antenna and globe
func (a *App) Tick(now time.Time, dt time.Duration) {
	if a.closed {
		return
	}
	a.refresh()

	delta := motion.Delta(dt)
	for i := range a.pets {
		w := a.wanderers[a.pets[i].ID]
		w.Update(delta)
		a.pets[i].Position = w.Position()
	}

	a.antenna.Step()
	a.globe.Tick(delta)
	a.statAntenna.Set(a.antenna.Angle())
	a.publish(now)
}

// refresh recomputes the pet list when the feed published a new snapshot or the
// active set changed since the last recompute
func (a *App) refresh() {
	snap := a.feed.Snapshot()
	if snap == nil {
		return
	}
	if a.primed && snap.Version() == a.lastVersion && a.active.Revision() == a.lastRevision {
		return
	}
	a.primed = true
	a.lastVersion = snap.Version()
	a.lastRevision = a.active.Revision()

	a.catalog = pet.BuildCatalog(snap.Names())
	a.pets = pet.Recompute(a.active.IDs(), a.catalog, snap, a.pets)
	a.selection.Reconcile(a.pets)

	seen := make(map[string]bool, len(a.pets))
	for _, p := range a.pets {
		seen[p.ID] = true
		if _, ok := a.wanderers[p.ID]; !ok {
			a.wanderers[p.ID] = motion.NewWanderer(p.Position, a.rng)
		}
	}
	for id := range a.wanderers {
		if !seen[id] {
			delete(a.wanderers, id)
		}
	}

	a.statPets.Store(int64(len(a.pets)))
	a.statRecomputes.Add(1)
}

func (a *App) isActiveName(name string) bool {
	if a.catalog == nil {
		return false
	}
	entry, ok := a.catalog.Resolve(name)
	return ok && a.active.Contains(entry.ID)
}

// Close stops the globe and the radio and cancels their timers. The app is inert afterwards
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.globe.Close()
	a.radio.Close()
	a.panel.drag.End()
	a.globeDrag.End()
	a.knobDrag.End()
	a.log.Debug(context.Background(), "app closed", logging.Int("pets", len(a.pets)))
}

// Closed reports whether Close has run
func (a *App) Closed() bool {
	return a.closed
}

// Pets returns the current pets in active-set order; callers must not mutate the slice
func (a *App) Pets() []pet.Pet {
	return a.pets
}

// Catalog returns the country catalog of the latest snapshot
func (a *App) Catalog() *pet.Catalog {
	return a.catalog
}

// Active returns the active country ids in insertion order
func (a *App) Active() []string {
	return a.active.IDs()
}

// Globe exposes the globe controller for rendering
func (a *App) Globe() *globe.Controller {
	return a.globe
}

// Antenna exposes the spring for rendering
func (a *App) Antenna() *antenna.Spring {
	return a.antenna
}

// Radio exposes the radio for rendering and playback control
func (a *App) Radio() *audio.Radio {
	return a.radio
}

// Features returns the loaded world outline, or nil while loading
func (a *App) Features() *geo.Collection {
	if a.geo == nil || a.geo.State() != geo.Ready {
		return nil
	}
	return a.geo.Features()
}

// GeoState reports the world outline load state
func (a *App) GeoState() geo.State {
	if a.geo == nil {
		return geo.Loading
	}
	return a.geo.State()
}

// Settings returns the current display preferences
func (a *App) Settings() settings.Settings {
	return a.settings
}

// Wanderer returns the motion state of pet id
func (a *App) Wanderer(id string) (*motion.Wanderer, bool) {
	w, ok := a.wanderers[id]
	return w, ok
}

// Stats summarizes the current pets
func (a *App) Stats() (pet.Stats, bool) {
	return pet.Summarize(a.pets)
}

// PanelHeight returns the detail panel height in rows
func (a *App) PanelHeight() int {
	return a.panel.height
}
