package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/events"
	"github.com/PierreHermey/SW3DMap/scene"
)

// Player turns cue events into short sine tones
// Entirely optional: a failed speaker init leaves a muted player and the
// viewer runs without sound
type Player struct {
	cfg   config.AudioConfig
	log   *slog.Logger
	ready bool
}

// tone parameters per cue
var cueTones = map[events.Cue]struct {
	freq float64
	dur  time.Duration
}{
	events.CueSelect: {freq: 880, dur: 60 * time.Millisecond},
	events.CueClear:  {freq: 440, dur: 90 * time.Millisecond},
	events.CueError:  {freq: 220, dur: 50 * time.Millisecond},
}

// NewPlayer initializes the speaker; the returned error is informational
// and callers continue with a muted player
func NewPlayer(cfg config.AudioConfig, log *slog.Logger) (*Player, error) {
	p := &Player{cfg: cfg, log: log}
	if !cfg.Enabled {
		return p, nil
	}

	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("speaker init: %w", err)
	}
	p.ready = true
	return p, nil
}

// Close releases the speaker
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
	}
}

// EventTypes subscribes the player to cue events
func (p *Player) EventTypes() []events.EventType {
	return []events.EventType{events.EventCue}
}

// HandleEvent plays the requested cue
func (p *Player) HandleEvent(_ *scene.Scene, ev events.ViewerEvent) {
	payload, ok := ev.Payload.(*events.CuePayload)
	if !ok {
		return
	}
	p.Play(payload.Cue)
}

// Play emits one tone; unknown cues are ignored
func (p *Player) Play(cue events.Cue) {
	if !p.ready {
		return
	}
	t, ok := cueTones[cue]
	if !ok {
		return
	}

	sr := beep.SampleRate(p.cfg.SampleRate)
	sine, err := generators.SineTone(sr, t.freq)
	if err != nil {
		p.log.Warn("tone generation failed", "cue", int(cue), "error", err)
		return
	}

	gain := &effects.Gain{
		Streamer: beep.Take(sr.N(t.dur), sine),
		Gain:     p.cfg.MasterVolume - 1,
	}
	speaker.Play(gain)
}
