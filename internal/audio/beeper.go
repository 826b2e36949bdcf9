// Package audio implements core.SoundPort by decoding assets/beep.mp3 and
// playing it through the system's default audio device whenever the sound
// timer transitions to nonzero.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"

	"github.com/chippy-core/chippy/internal/core"
)

// Beeper loads a beep sample once at construction and replays it from the
// start each time NotifyBeep fires.
type Beeper struct {
	streamer beep.StreamSeeker
	format   beep.Format
	events   chan struct{}
}

var _ core.SoundPort = (*Beeper)(nil)

// New decodes path (conventionally assets/beep.mp3) and initializes the
// speaker for playback.
func New(path string) (*Beeper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &core.InitError{Component: "audio", Err: fmt.Errorf("opening %s: %w", path, err)}
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, &core.InitError{Component: "audio", Err: fmt.Errorf("decoding %s: %w", path, err)}
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, &core.InitError{Component: "audio", Err: err}
	}

	b := &Beeper{streamer: streamer, format: format, events: make(chan struct{}, 8)}
	go b.run()
	return b, nil
}

func (b *Beeper) run() {
	for range b.events {
		b.streamer.Seek(0)
		speaker.Play(b.streamer)
	}
}

// NotifyBeep implements core.SoundPort. Non-blocking: up to 8 beeps can be
// queued; once the queue is full, further calls are dropped.
func (b *Beeper) NotifyBeep() {
	select {
	case b.events <- struct{}{}:
	default:
	}
}

// Close closes the event queue, ending the playback goroutine once queued
// beeps are played. Calling NotifyBeep after Close panics.
func (b *Beeper) Close() { close(b.events) }
