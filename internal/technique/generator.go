package technique

import (
	"math"

	"github.com/iburimskiy/cursed-particles/internal/config"
)

// Point is one particle's attributes. Colors are not clamped; values above 1
// feed the bloom pass.
type Point struct {
	X, Y, Z float32
	R, G, B float32
	S       float32
}

// Rand is the uniform [0,1) source the shapes are sampled from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type Generator struct {
	Count int
	Rand  Rand
}

func NewGenerator(count int, rnd Rand) *Generator {
	if count <= 0 {
		count = config.ParticleCount
	}
	return &Generator{Count: count, Rand: rnd}
}

// Bound returns the first index that is not below count*percent/100, so that
// i < Bound(p) holds exactly when i < count*p%.
func (g *Generator) Bound(percent int) int {
	return (g.Count*percent + 99) / 100
}

// Generate returns a fresh sample for particle i. Repeated calls draw new random
// values.
func (g *Generator) Generate(t Technique, i int) Point {
	switch t {
	case Red:
		return g.red(i)
	case Void:
		return g.void(i)
	case Purple:
		return g.purple()
	case Shrine:
		return g.shrine(i)
	default:
		return g.neutral(i)
	}
}

func (g *Generator) u() float64 { return g.Rand.Float64() }

// sphere samples a point at radius r without clustering at the poles.
func (g *Generator) sphere(r float64) (x, y, z float32) {
	theta := g.u() * 2 * math.Pi
	phi := math.Acos(2*g.u() - 1)
	return float32(r * math.Sin(phi) * math.Cos(theta)),
		float32(r * math.Sin(phi) * math.Sin(theta)),
		float32(r * math.Cos(phi))
}

func (g *Generator) neutral(i int) Point {
	if i >= g.Bound(5) {
		return Point{}
	}
	x, y, z := g.sphere(15 + g.u()*20)
	return Point{X: x, Y: y, Z: z, R: 0.1, G: 0.1, B: 0.2, S: 0.4}
}

func (g *Generator) red(i int) Point {
	if i < g.Bound(10) {
		x, y, z := g.sphere(g.u() * 9)
		return Point{X: x, Y: y, Z: z, R: 3, G: 0.1, B: 0.1, S: 2.5}
	}
	const arms = 3
	t := float64(i) / float64(g.Count)
	angle := t*15 + float64(i%arms)*(2*math.Pi/arms)
	radius := 2 + t*40
	return Point{
		X: float32(radius * math.Cos(angle)),
		Y: float32(radius * math.Sin(angle)),
		Z: float32((g.u() - 0.5) * 10 * t),
		R: 0.8,
		S: 1.0,
	}
}

func (g *Generator) void(i int) Point {
	if i < g.Bound(15) {
		angle := g.u() * 2 * math.Pi
		return Point{
			X: float32(26 * math.Cos(angle)),
			Y: float32(26 * math.Sin(angle)),
			Z: float32(g.u() - 0.5),
			R: 1, G: 1, B: 1,
			S: 2.5,
		}
	}
	x, y, z := g.sphere(30 + g.u()*90)
	return Point{X: x, Y: y, Z: z, R: 0.1, G: 0.6, B: 1.0, S: 0.7}
}

func (g *Generator) purple() Point {
	if g.u() > 0.8 {
		return Point{
			X: float32((g.u() - 0.5) * 100),
			Y: float32((g.u() - 0.5) * 100),
			Z: float32((g.u() - 0.5) * 100),
			R: 0.5, G: 0.5, B: 0.7,
			S: 0.8,
		}
	}
	x, y, z := g.sphere(20)
	return Point{X: x, Y: y, Z: z, R: 0.6, G: 0.5, B: 1.0, S: 2.5}
}

func (g *Generator) shrine(i int) Point {
	switch {
	case i < g.Bound(30):
		return Point{
			X: float32((g.u() - 0.5) * 80),
			Y: -15,
			Z: float32((g.u() - 0.5) * 80),
			R: 0.4,
			S: 0.8,
		}
	case i < g.Bound(40):
		px, pz := float32(-12), float32(-8)
		if i%4 < 2 {
			px = 12
		}
		if i%2 == 0 {
			pz = 8
		}
		return Point{
			X: px + float32((g.u()-0.5)*2),
			Y: float32(-15 + g.u()*30),
			Z: pz + float32((g.u()-0.5)*2),
			R: 0.2, G: 0.2, B: 0.2,
			S: 0.6,
		}
	case i < g.Bound(60):
		t := g.u() * 2 * math.Pi
		rad := g.u() * 30
		curve := math.Pow(rad/30, 2) * 10
		return Point{
			X: float32(rad * math.Cos(t)),
			Y: float32(15 - curve + g.u()*2),
			Z: float32(rad * math.Sin(t) * 0.6),
			R: 0.6,
			S: 0.6,
		}
	default:
		return Point{}
	}
}
