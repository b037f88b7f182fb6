package audio

import (
	"context"
	"math/rand/v2"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/engine"
	"github.com/lixenwraith/weatherpets/logging"
	"github.com/lixenwraith/weatherpets/status"
	"github.com/lixenwraith/weatherpets/vmath"
)

// Station is one selectable radio channel
type Station struct {
	ID   string
	Name string
	New  func(rate beep.SampleRate, rng *rand.Rand) beep.Streamer
}

// DefaultStations returns the built-in stations in button order
func DefaultStations() []Station {
	return []Station{
		{ID: "lofi", Name: "Lofi", New: NewLofiStream},
		{ID: "rain", Name: "Rain", New: NewRainStream},
	}
}

// Note is one floating music note shown above the radio while playing
type Note struct {
	ID    int
	X     float64 // percent of the radio width
	Color uint32  // 0xRRGGBB
}

// Pastel note palette
var notePalette = []uint32{
	0xffcbc7, // coral
	0xfdf4c4, // yellow
	0xd4e6f7, // blue
	0xe0e0e0, // gray
	0xffb6c1, // pink
	0xdda0dd, // plum
	0xb0e0e6, // powder blue
}

// Radio owns station selection, play state, volume and the note emitter.
// State is owned by the frame goroutine; the audio graph is mutated under the output lock
type Radio struct {
	out      Output
	rate     beep.SampleRate
	sched    *engine.Scheduler
	rng      *rand.Rand
	log      logging.Logger
	stations []Station

	current    int // -1 when no station is selected
	playing    bool
	volume     int
	prevVolume int
	muted      bool

	ctrl   *beep.Ctrl
	master *effects.Volume

	notes     []Note
	nextNote  int
	noteTimer *engine.Timer

	onPlay func()
	closed bool

	statPlaying *atomic.Bool
	statVolume  *atomic.Int64
}

// RadioConfig configures a Radio
type RadioConfig struct {
	Output   Output
	Stations []Station
	Volume   int
	Rand     *rand.Rand
	// OnPlay fires each time playback starts
	OnPlay  func()
	Logger  logging.Logger
	Metrics *status.Registry
}

// NewRadio builds the playback graph and starts it paused on the first station
func NewRadio(sched *engine.Scheduler, cfg RadioConfig) *Radio {
	if cfg.Output == nil {
		cfg.Output = NewBufferOutput()
	}
	if len(cfg.Stations) == 0 {
		cfg.Stations = DefaultStations()
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

	r := &Radio{
		out:         cfg.Output,
		rate:        beep.SampleRate(constant.RadioSampleRate),
		sched:       sched,
		rng:         cfg.Rand,
		log:         cfg.Logger.With(logging.String("component", "audio.radio")),
		stations:    cfg.Stations,
		volume:      vmath.ClampInt(cfg.Volume, 0, constant.RadioMaxVolume),
		onPlay:      cfg.OnPlay,
		statPlaying: cfg.Metrics.Bools.Get(status.RadioPlaying),
		statVolume:  cfg.Metrics.Ints.Get(status.RadioVolume),
	}
	r.prevVolume = r.volume

	r.ctrl = &beep.Ctrl{Streamer: r.newStream(0), Paused: true}
	r.master = newVolume(r.ctrl, r.gain())
	r.out.Play(r.master)
	r.statVolume.Store(int64(r.volume))
	return r
}

func (r *Radio) newStream(idx int) beep.Streamer {
	// Each stream gets its own generator: it is consumed on the output goroutine
	rng := rand.New(rand.NewPCG(r.rng.Uint64(), r.rng.Uint64()))
	return r.stations[idx].New(r.rate, rng)
}

func (r *Radio) gain() float64 {
	if r.muted {
		return 0
	}
	return float64(r.volume) / constant.RadioMaxVolume
}

// Play toggles play/pause on the current station, or switches to id and plays
func (r *Radio) Play(id string) {
	if r.closed {
		return
	}
	idx := r.indexOf(id)
	if idx < 0 {
		return
	}
	if idx == r.current {
		if r.playing {
			r.pause()
		} else {
			r.start()
		}
		return
	}
	r.switchTo(idx)
	r.start()
}

// PlayPause toggles playback, starting the first station when none is selected
func (r *Radio) PlayPause() {
	if r.closed {
		return
	}
	switch {
	case r.current >= 0 && r.playing:
		r.pause()
	case r.current >= 0:
		r.start()
	default:
		r.switchTo(0)
		r.start()
	}
}

// NextStation switches to the following station and plays it
func (r *Radio) NextStation() {
	if r.closed || len(r.stations) == 0 {
		return
	}
	r.Play(r.stations[(max(r.current, 0)+1)%len(r.stations)].ID)
}

// Stop pauses and deselects the station
func (r *Radio) Stop() {
	if r.closed {
		return
	}
	r.pause()
	r.current = -1
}

func (r *Radio) indexOf(id string) int {
	for i, s := range r.stations {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (r *Radio) switchTo(idx int) {
	stream := r.newStream(idx)
	r.out.Lock()
	r.ctrl.Streamer = stream
	r.out.Unlock()
	r.current = idx
}

func (r *Radio) start() {
	r.out.Lock()
	r.ctrl.Paused = false
	r.out.Unlock()
	if !r.playing {
		r.playing = true
		r.noteTimer = r.sched.Every(constant.RadioNoteInterval, r.emitNote)
	}
	r.statPlaying.Store(true)
	r.log.Debug(context.Background(), "radio playing", logging.String("station", r.stations[r.current].ID))
	if r.onPlay != nil {
		r.onPlay()
	}
}

func (r *Radio) pause() {
	r.out.Lock()
	r.ctrl.Paused = true
	r.out.Unlock()
	r.playing = false
	if r.noteTimer != nil {
		r.noteTimer.Stop()
		r.noteTimer = nil
	}
	r.notes = nil
	r.statPlaying.Store(false)
}

func (r *Radio) emitNote() {
	n := Note{
		ID:    r.nextNote,
		X:     constant.RadioNoteMinX + r.rng.Float64()*constant.RadioNoteSpanX,
		Color: notePalette[r.rng.IntN(len(notePalette))],
	}
	r.nextNote++
	if len(r.notes) > constant.RadioNoteKeep {
		r.notes = r.notes[len(r.notes)-constant.RadioNoteKeep:]
	}
	r.notes = append(r.notes, n)
}

// SetVolume sets the volume, clamped to [0,100]. Muting state is unchanged
func (r *Radio) SetVolume(v int) {
	if r.closed {
		return
	}
	r.volume = vmath.ClampInt(v, 0, constant.RadioMaxVolume)
	r.applyGain()
	r.statVolume.Store(int64(r.volume))
}

// AdjustVolume adds delta to the volume
func (r *Radio) AdjustVolume(delta int) {
	r.SetVolume(r.volume + delta)
}

// DragKnob applies a vertical knob drag; dragging up (negative dy) raises the volume
func (r *Radio) DragKnob(dy float64) {
	r.SetVolume(r.volume - int(dy*constant.RadioKnobRowStep))
}

// ToggleMute mutes, or unmutes restoring the volume held when muting
func (r *Radio) ToggleMute() {
	if r.closed {
		return
	}
	if r.muted {
		r.muted = false
		r.volume = r.prevVolume
		r.statVolume.Store(int64(r.volume))
	} else {
		r.prevVolume = r.volume
		r.muted = true
	}
	r.applyGain()
}

func (r *Radio) applyGain() {
	r.out.Lock()
	setGain(r.master, r.gain())
	r.out.Unlock()
}

// KnobAngle is the knob indicator rotation in degrees, -135 at silence
func (r *Radio) KnobAngle() float64 {
	v := float64(r.volume)
	if r.muted {
		v = 0
	}
	return v/constant.RadioMaxVolume*constant.RadioKnobSweep + constant.RadioKnobOffset
}

// Close stops playback and the note timer; the radio is inert afterwards
func (r *Radio) Close() {
	if r.closed {
		return
	}
	r.pause()
	r.closed = true
}

// Stations returns the station list
func (r *Radio) Stations() []Station {
	return r.stations
}

// Current returns the selected station id, or "" when none is selected
func (r *Radio) Current() string {
	if r.current < 0 {
		return ""
	}
	return r.stations[r.current].ID
}

// Playing reports whether audio is playing
func (r *Radio) Playing() bool {
	return r.playing
}

// Volume returns the volume in [0,100]
func (r *Radio) Volume() int {
	return r.volume
}

// Muted reports the mute state
func (r *Radio) Muted() bool {
	return r.muted
}

// Notes returns a copy of the visible notes, oldest first
func (r *Radio) Notes() []Note {
	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}
