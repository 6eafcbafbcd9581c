// Package animation advances the particle effect one tick at a time and
// switches techniques when the detected gesture changes.
package animation

import (
	"github.com/google/uuid"

	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/logging"
	"github.com/iburimskiy/cursed-particles/internal/particle"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

// Rotation is an Euler rotation in radians, applied X then Y then Z.
type Rotation struct {
	X, Y, Z float32
}

// Session is the selection state of one running effect. Independent sessions
// share nothing.
type Session struct {
	ID     string
	Store  *particle.Store
	Gen    *technique.Generator
	Logger logging.Logger

	active   technique.Technique
	style    technique.Style
	shake    float64
	rotation Rotation

	observers []func(from, to technique.Technique)
}

// NewSession starts in the neutral technique with targets already generated.
func NewSession(store *particle.Store, gen *technique.Generator, logger logging.Logger) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		Store:  store,
		Gen:    gen,
		Logger: logging.OrNop(logger),
		active: technique.Neutral,
		style:  technique.StyleOf(technique.Neutral),
	}
	store.Fill(gen, technique.Neutral)
	return s
}

func (s *Session) Active() technique.Technique { return s.active }
func (s *Session) Style() technique.Style       { return s.style }
func (s *Session) Shake() float64               { return s.shake }
func (s *Session) Rotation() Rotation           { return s.rotation }

// OnTransition registers fn to run after every real technique change.
func (s *Session) OnTransition(fn func(from, to technique.Technique)) {
	s.observers = append(s.observers, fn)
}

// Apply switches to t. Selecting the active technique changes nothing and
// returns false.
func (s *Session) Apply(t technique.Technique) bool {
	if t == s.active {
		return false
	}
	from := s.active
	s.active = t
	s.style = technique.StyleOf(t)
	if t != technique.Neutral {
		s.shake = config.ShakeIntensity
	} else {
		s.shake = 0
	}
	s.Store.Fill(s.Gen, t)

	s.Logger.Infof("session %s: %s -> %s (%s, bloom %.1f, glow %s)",
		s.ID, from, t, s.style.Name, s.style.Bloom, s.style.GlowHex())
	for _, fn := range s.observers {
		fn(from, t)
	}
	return true
}

func (s *Session) rotate() {
	switch s.active {
	case technique.Red:
		s.rotation.Z += config.RedSpinZ
	case technique.Purple:
		s.rotation.Z += config.PurpleSpinZ
		s.rotation.Y += config.PurpleSpinY
	case technique.Shrine:
		s.rotation = Rotation{}
	default:
		s.rotation.Y += config.NeutralSpinY
	}
}
