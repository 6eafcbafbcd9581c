// Package audio plays a short synthesized tone whenever the technique changes.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/logging"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

// levelWindow is how much recent output Level looks at.
const levelWindow = 1024

type Cues struct {
	logger  logging.Logger
	sr      beep.SampleRate
	mixer   *beep.Mixer
	tap     *visualTap
	enabled bool
}

func New(cfg config.Audio, logger logging.Logger) *Cues {
	sr := beep.SampleRate(cfg.SampleRate)
	if sr <= 0 {
		sr = config.SampleRate
	}
	mixer := &beep.Mixer{}
	vol := &effects.Volume{Streamer: mixer, Base: 2, Volume: cfg.Volume}
	return &Cues{
		logger: logging.OrNop(logger),
		sr:     sr,
		mixer:  mixer,
		tap:    newVisualTap(vol, config.TapSize),
	}
}

// Start opens the speaker. On failure cues stay silent and the error is
// returned for the caller to log.
func (c *Cues) Start() error {
	if err := speaker.Init(c.sr, c.sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.tap)
	c.enabled = true
	c.logger.Debugf("audio cues at %d Hz", int(c.sr))
	return nil
}

func (c *Cues) Enabled() bool { return c.enabled }

// Play mixes in the cue for t.
func (c *Cues) Play(t technique.Technique) {
	if !c.enabled {
		return
	}
	speaker.Lock()
	c.mixer.Add(newCue(c.sr, t))
	speaker.Unlock()
}

// Level is the loudness of the most recent output, roughly 0..0.3.
func (c *Cues) Level() float64 {
	if !c.enabled {
		return 0
	}
	return c.tap.rms(levelWindow)
}

type voice struct {
	freq     float64 // Hz
	partial  float64 // second partial as a ratio of freq
	sweep    float64 // Hz per second
	duration time.Duration
}

var voices = map[technique.Technique]voice{
	technique.Neutral: {freq: 220, partial: 1.5, sweep: -60, duration: 250 * time.Millisecond},
	technique.Red:     {freq: 330, partial: 2, sweep: 120, duration: 400 * time.Millisecond},
	technique.Void:    {freq: 440, partial: 1.01, sweep: 0, duration: 700 * time.Millisecond},
	technique.Purple:  {freq: 523, partial: 1.498, sweep: 200, duration: 600 * time.Millisecond},
	technique.Shrine:  {freq: 98, partial: 3, sweep: -20, duration: 900 * time.Millisecond},
}

// toneGenerator is a two-partial sine with a fast attack and linear release.
type toneGenerator struct {
	sr    beep.SampleRate
	v     voice
	pos   int
	total int
}

func newCue(sr beep.SampleRate, t technique.Technique) *toneGenerator {
	v, ok := voices[t]
	if !ok {
		v = voices[technique.Neutral]
	}
	return &toneGenerator{sr: sr, v: v, total: sr.N(v.duration)}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	attack := float64(g.sr) * 0.01
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		freq := g.v.freq + g.v.sweep*t

		env := math.Min(float64(g.pos)/attack, 1) * (1 - float64(g.pos)/float64(g.total))
		sample := 0.3 * math.Sin(2*math.Pi*freq*t)
		sample += 0.12 * math.Sin(2*math.Pi*freq*g.v.partial*t)
		sample *= env

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
