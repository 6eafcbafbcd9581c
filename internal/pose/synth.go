package pose

import (
	"time"

	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

// Column of each digit's joints, thumb first.
var digitX = [5]float32{0.34, 0.42, 0.50, 0.58, 0.65}

const (
	mcpY = 0.62
	// raised finger, knuckle to tip
	upPIP, upDIP, upTip = 0.52, 0.46, 0.40
	// curled finger: tip folds back below the knuckle
	downPIP, downDIP, downTip = 0.56, 0.60, 0.63
)

func digit(h Hand, d int, up bool) {
	base := 1 + d*4
	x := digitX[d]
	h[base] = Landmark{X: x, Y: mcpY}
	if up {
		h[base+1] = Landmark{X: x, Y: upPIP}
		h[base+2] = Landmark{X: x, Y: upDIP}
		h[base+3] = Landmark{X: x, Y: upTip}
		return
	}
	h[base+1] = Landmark{X: x, Y: downPIP, Z: -0.02}
	h[base+2] = Landmark{X: x + 0.01, Y: downDIP, Z: -0.04}
	h[base+3] = Landmark{X: x + 0.01, Y: downTip, Z: -0.03}
}

// SynthHand builds a canonical right hand holding the gesture for t.
func SynthHand(t technique.Technique) Hand {
	h := make(Hand, config.HandLandmarks)
	h[Wrist] = Landmark{X: 0.5, Y: 0.85}

	var up [4]bool
	switch t {
	case technique.Red:
		up = [4]bool{true, false, false, false}
	case technique.Void:
		up = [4]bool{true, true, false, false}
	case technique.Shrine:
		up = [4]bool{true, true, true, true}
	}
	for f := 0; f < 4; f++ {
		digit(h, f+1, up[f])
	}

	// thumb rests out to the side
	h[1] = Landmark{X: 0.40, Y: 0.78}
	h[2] = Landmark{X: 0.36, Y: 0.72}
	h[3] = Landmark{X: 0.32, Y: 0.68}
	h[ThumbTip] = Landmark{X: 0.28, Y: 0.64}

	if t == technique.Purple {
		tip := h[IndexTip]
		h[3] = Landmark{X: tip.X - 0.03, Y: tip.Y + 0.02}
		h[ThumbTip] = Landmark{X: tip.X - 0.01, Y: tip.Y}
	}
	return h
}

// Synth is a pose source that reports the gesture currently held, e.g. from
// the keyboard. Holding neutral reports no hands.
type Synth struct {
	interval time.Duration
	elapsed  time.Duration
	held     technique.Technique
}

func NewSynth(fps float64) *Synth {
	if fps <= 0 {
		fps = 30
	}
	return &Synth{interval: time.Duration(float64(time.Second) / fps)}
}

func (s *Synth) Hold(t technique.Technique) { s.held = t }

func (s *Synth) Held() technique.Technique { return s.held }

func (s *Synth) Next(dt time.Duration) (Sample, bool) {
	s.elapsed += dt
	if s.elapsed < s.interval {
		return Sample{}, false
	}
	s.elapsed %= s.interval
	if s.held == technique.Neutral {
		return Sample{}, true
	}
	return Sample{Hands: []Hand{SynthHand(s.held)}}, true
}
