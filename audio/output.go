package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is the playback sink. Lock/Unlock guard graph mutation against the
// sink's streaming goroutine
type Output interface {
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close() error
}

type speakerOutput struct{}

// NewSpeakerOutput initializes the system speaker at rate with a 100ms buffer
func NewSpeakerOutput(rate beep.SampleRate) (Output, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return speakerOutput{}, nil
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

func (speakerOutput) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// BufferOutput is an in-memory sink that streams only when pulled. Used when audio
// is disabled or unavailable, and in tests
type BufferOutput struct {
	mu    sync.Mutex
	mixer beep.Mixer
}

// NewBufferOutput creates an idle sink
func NewBufferOutput() *BufferOutput {
	return &BufferOutput{}
}

func (b *BufferOutput) Play(s beep.Streamer) {
	b.mu.Lock()
	b.mixer.Add(s)
	b.mu.Unlock()
}

func (b *BufferOutput) Lock()   { b.mu.Lock() }
func (b *BufferOutput) Unlock() { b.mu.Unlock() }

// Pull streams n samples from everything playing
func (b *BufferOutput) Pull(n int) [][2]float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf := make([][2]float64, n)
	b.mixer.Stream(buf)
	return buf
}

func (b *BufferOutput) Close() error {
	b.mu.Lock()
	b.mixer.Clear()
	b.mu.Unlock()
	return nil
}
