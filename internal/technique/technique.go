// Package technique defines the visual modes selected by hand gestures and the
// particle shapes each of them forms.
package technique

import (
	"fmt"
	"image/color"
	"strings"
)

type Technique int

const (
	Neutral Technique = iota
	Red
	Void
	Purple
	Shrine
)

// All lists every technique in declaration order.
var All = []Technique{Neutral, Red, Void, Purple, Shrine}

var names = map[Technique]string{
	Neutral: "neutral",
	Red:     "red",
	Void:    "void",
	Purple:  "purple",
	Shrine:  "shrine",
}

func (t Technique) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("technique(%d)", int(t))
}

func Parse(s string) (Technique, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, n := range names {
		if n == s {
			return t, nil
		}
	}
	return Neutral, fmt.Errorf("unknown technique %q", s)
}

func (t Technique) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Technique) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Style is what a transition into a technique shows besides the particles.
type Style struct {
	Name  string
	Glow  color.RGBA
	Bloom float64
}

var styles = map[Technique]Style{
	Shrine:  {Name: "Domain Expansion: Malevolent Shrine", Glow: color.RGBA{R: 0xff, A: 0xff}, Bloom: 2.5},
	Purple:  {Name: "Secret Technique: Hollow Purple", Glow: color.RGBA{R: 0xbb, B: 0xff, A: 0xff}, Bloom: 4.0},
	Void:    {Name: "Domain Expansion: Infinite Void", Glow: color.RGBA{G: 0xff, B: 0xff, A: 0xff}, Bloom: 2.0},
	Red:     {Name: "Reverse Cursed Technique: Red", Glow: color.RGBA{R: 0xff, G: 0x33, B: 0x33, A: 0xff}, Bloom: 2.5},
	Neutral: {Name: "Neutral State", Glow: color.RGBA{G: 0xff, B: 0xff, A: 0xff}, Bloom: 1.0},
}

// StyleOf returns the neutral style for unknown values.
func StyleOf(t Technique) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[Neutral]
}

// GlowHex formats the glow color as #rrggbb.
func (s Style) GlowHex() string {
	return fmt.Sprintf("#%02x%02x%02x", s.Glow.R, s.Glow.G, s.Glow.B)
}
