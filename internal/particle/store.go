// Package particle holds the per-particle attribute buffers the renderer draws
// and the targets they are smoothed toward.
package particle

import (
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

// Buffers are parallel attribute arrays: positions and colors hold three
// components per particle, sizes one.
type Buffers struct {
	Positions []float32
	Colors    []float32
	Sizes     []float32
}

func newBuffers(n int) Buffers {
	return Buffers{
		Positions: make([]float32, n*3),
		Colors:    make([]float32, n*3),
		Sizes:     make([]float32, n),
	}
}

func (b Buffers) point(i int) technique.Point {
	return technique.Point{
		X: b.Positions[i*3], Y: b.Positions[i*3+1], Z: b.Positions[i*3+2],
		R: b.Colors[i*3], G: b.Colors[i*3+1], B: b.Colors[i*3+2],
		S: b.Sizes[i],
	}
}

func (b Buffers) set(i int, p technique.Point) {
	b.Positions[i*3] = p.X
	b.Positions[i*3+1] = p.Y
	b.Positions[i*3+2] = p.Z
	b.Colors[i*3] = p.R
	b.Colors[i*3+1] = p.G
	b.Colors[i*3+2] = p.B
	b.Sizes[i] = p.S
}

// Store owns the current and target buffers. Index i refers to the same
// particle in every array.
type Store struct {
	count   int
	current Buffers
	target  Buffers
}

func New(count int) *Store {
	return &Store{
		count:   count,
		current: newBuffers(count),
		target:  newBuffers(count),
	}
}

func (s *Store) Len() int { return s.count }

func (s *Store) SetTarget(i int, p technique.Point) {
	s.target.set(i, p)
}

func (s *Store) Target(i int) technique.Point  { return s.target.point(i) }
func (s *Store) Current(i int) technique.Point { return s.current.point(i) }

// Fill regenerates every target from the generator.
func (s *Store) Fill(gen *technique.Generator, t technique.Technique) {
	for i := 0; i < s.count; i++ {
		s.target.set(i, gen.Generate(t, i))
	}
}

// Step moves every current component a fraction alpha of the way toward its
// target. Components already equal to their target are left untouched.
func (s *Store) Step(alpha float32) {
	stepSlice(s.current.Positions, s.target.Positions, alpha)
	stepSlice(s.current.Colors, s.target.Colors, alpha)
	stepSlice(s.current.Sizes, s.target.Sizes, alpha)
}

func stepSlice(cur, tgt []float32, alpha float32) {
	for i := range cur {
		cur[i] += (tgt[i] - cur[i]) * alpha
	}
}

// Snap sets current equal to target.
func (s *Store) Snap() {
	copy(s.current.Positions, s.target.Positions)
	copy(s.current.Colors, s.target.Colors)
	copy(s.current.Sizes, s.target.Sizes)
}

// Buffers returns the current attributes. Callers must treat them as read-only.
func (s *Store) Buffers() Buffers { return s.current }
