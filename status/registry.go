package status

import "sync/atomic"

// Metric keys written by the frame loop and the pet/weather/globe components
const (
	FramesTotal     = "engine.frames"
	FrameDuration   = "engine.frame_seconds"
	TimersPending   = "engine.timers_pending"
	FeedTicks       = "weather.feed_ticks"
	FeedVersion     = "weather.feed_version"
	PetsActive      = "pet.active"
	Recomputes      = "pet.recomputes"
	GlobeRotation   = "globe.rotation_deg"
	GlobeAutoRotate = "globe.auto_rotate"
	GeoReady        = "geo.ready"
	GeoFeatures     = "geo.features"
	RadioPlaying    = "audio.playing"
	RadioVolume     = "audio.volume"
	AntennaAngle    = "antenna.angle_deg"
)

// Registry is the central metrics facade.
// Components cache pointers during construction and write atomics from the frame loop;
// the debug exporter reads them from its own goroutine
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Value is a point-in-time reading of one metric
type Value struct {
	Key   string
	Kind  Kind
	Value float64
}

// Kind distinguishes counters from gauges for exporters
type Kind int

const (
	KindGauge Kind = iota
	KindCounter
)

// counters lists the Int keys that only ever increase
var counters = map[string]bool{
	FramesTotal: true,
	FeedTicks:   true,
	Recomputes:  true,
}

// Snapshot reads every registered metric, bools as 0/1
func (r *Registry) Snapshot() []Value {
	out := make([]Value, 0, r.TotalCount())
	r.Bools.Range(func(key string, b *atomic.Bool) {
		v := 0.0
		if b.Load() {
			v = 1
		}
		out = append(out, Value{Key: key, Kind: KindGauge, Value: v})
	})
	r.Ints.Range(func(key string, i *atomic.Int64) {
		kind := KindGauge
		if counters[key] {
			kind = KindCounter
		}
		out = append(out, Value{Key: key, Kind: kind, Value: float64(i.Load())})
	})
	r.Floats.Range(func(key string, f *AtomicFloat) {
		out = append(out, Value{Key: key, Kind: KindGauge, Value: f.Get()})
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
