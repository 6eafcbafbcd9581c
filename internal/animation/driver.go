package animation

import (
	"context"
	"image/color"
	"time"

	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/particle"
	"github.com/iburimskiy/cursed-particles/internal/pose"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

// Frame is what a renderer needs to draw one tick. The buffers alias the
// session's current state and are only valid until the next tick.
type Frame struct {
	Tick      uint64
	Buffers   particle.Buffers
	Rotation  Rotation
	ShakeX    float64
	ShakeY    float64
	Bloom     float64
	Glow      color.RGBA
	Technique technique.Technique
	Name      string
	Hands     []pose.Hand
}

type Renderer interface {
	Submit(f Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

func (fn RendererFunc) Submit(f Frame) { fn(f) }

type Driver struct {
	Session  *Session
	Renderer Renderer
	Rand     technique.Rand
	Alpha    float32

	tick   uint64
	shakeX float64
	shakeY float64
	hands  []pose.Hand
}

func NewDriver(s *Session, r Renderer, rnd technique.Rand) *Driver {
	return &Driver{
		Session:  s,
		Renderer: r,
		Rand:     rnd,
		Alpha:    config.SmoothingFactor,
	}
}

// Sample classifies one pose sample and applies the result. It reports
// whether the technique changed.
func (d *Driver) Sample(s pose.Sample) bool {
	d.hands = s.Hands
	return d.Session.Apply(pose.Classify(s.Hands))
}

// Tick advances the effect by one displayed frame and submits it.
func (d *Driver) Tick() Frame {
	s := d.Session
	if k := s.shake; k > 0 {
		d.shakeX = (d.Rand.Float64() - 0.5) * k * config.ShakeRange
		d.shakeY = (d.Rand.Float64() - 0.5) * k * config.ShakeRange
	} else {
		d.shakeX, d.shakeY = 0, 0
	}

	s.Store.Step(d.Alpha)
	s.rotate()
	d.tick++

	f := Frame{
		Tick:      d.tick,
		Buffers:   s.Store.Buffers(),
		Rotation:  s.rotation,
		ShakeX:    d.shakeX,
		ShakeY:    d.shakeY,
		Bloom:     s.style.Bloom,
		Glow:      s.style.Glow,
		Technique: s.active,
		Name:      s.style.Name,
		Hands:     d.hands,
	}
	if d.Renderer != nil {
		d.Renderer.Submit(f)
	}
	return f
}

// Run polls src and ticks on every value from ticks until ctx is done. Hosts
// that own their loop call Sample and Tick directly instead.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time, src pose.Source) error {
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			if src != nil {
				dt := time.Duration(0)
				if !last.IsZero() {
					dt = now.Sub(last)
				}
				if sample, ok := src.Next(dt); ok {
					d.Sample(sample)
				}
			}
			last = now
			d.Tick()
		}
	}
}
