// Package pose turns hand landmark sets into techniques and provides the
// landmark sources that feed them.
package pose

import (
	"math"

	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

// Landmark is a point in normalized image coordinates; y grows downward.
type Landmark struct {
	X, Y, Z float32
}

// Hand is one detected hand in MediaPipe landmark order.
type Hand []Landmark

// Sample is everything the pose source reported for one video frame.
type Sample struct {
	Hands []Hand
}

const (
	Wrist     = 0
	ThumbTip  = 4
	IndexPIP  = 6
	IndexTip  = 8
	MiddlePIP = 10
	MiddleTip = 12
	RingPIP   = 14
	RingTip   = 16
	PinkyPIP  = 18
	PinkyTip  = 20
)

type Finger int

const (
	Index Finger = iota
	Middle
	Ring
	Pinky
)

var fingerJoints = [...][2]int{
	Index:  {IndexTip, IndexPIP},
	Middle: {MiddleTip, MiddlePIP},
	Ring:   {RingTip, RingPIP},
	Pinky:  {PinkyTip, PinkyPIP},
}

func (h Hand) Valid() bool { return len(h) >= config.HandLandmarks }

// Extended reports whether the fingertip sits above its middle knuckle.
func (h Hand) Extended(f Finger) bool {
	j := fingerJoints[f]
	return h[j[0]].Y < h[j[1]].Y
}

// PinchDistance is the thumb-tip to index-tip distance in the image plane.
func (h Hand) PinchDistance() float64 {
	return math.Hypot(float64(h[IndexTip].X-h[ThumbTip].X), float64(h[IndexTip].Y-h[ThumbTip].Y))
}

// Gesture classifies a single hand. ok is false when no rule matches.
func (h Hand) Gesture() (t technique.Technique, ok bool) {
	index, middle, ring, pinky := h.Extended(Index), h.Extended(Middle), h.Extended(Ring), h.Extended(Pinky)
	switch {
	case h.PinchDistance() < config.PinchThreshold:
		return technique.Purple, true
	case index && middle && ring && pinky:
		return technique.Shrine, true
	case index && middle && !ring:
		return technique.Void, true
	case index && !middle:
		return technique.Red, true
	}
	return technique.Neutral, false
}

// Classify walks the hands in order; each hand that matches a gesture replaces
// the result, so with two gesturing hands the later one wins. Hands without a
// gesture and malformed hands leave it unchanged.
func Classify(hands []Hand) technique.Technique {
	detected := technique.Neutral
	for _, h := range hands {
		if !h.Valid() {
			continue
		}
		if t, ok := h.Gesture(); ok {
			detected = t
		}
	}
	return detected
}
