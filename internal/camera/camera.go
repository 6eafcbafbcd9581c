// Package camera projects particle positions to screen space.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/cursed-particles/internal/animation"
	"github.com/iburimskiy/cursed-particles/internal/config"
)

// Camera is a perspective camera on the +Z axis looking at the origin.
type Camera struct {
	FOV      float32 // vertical, degrees
	Near     float32
	Far      float32
	Distance float32
}

func FromConfig(c config.Camera) Camera {
	return Camera{
		FOV:      float32(c.FOV),
		Near:     float32(c.Near),
		Far:      float32(c.Far),
		Distance: float32(c.Distance),
	}
}

// Model turns an Euler rotation (X, then Y, then Z) into a matrix.
func Model(r animation.Rotation) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(r.X).
		Mul4(mgl32.HomogRotate3DY(r.Y)).
		Mul4(mgl32.HomogRotate3DZ(r.Z))
}

func (c Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, c.Distance},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	return proj.Mul4(view)
}

// Projector maps world points of one frame onto a width x height viewport.
type Projector struct {
	MVP    mgl32.Mat4
	Width  float32
	Height float32
}

func (c Camera) Projector(r animation.Rotation, width, height int) Projector {
	aspect := float32(width) / float32(height)
	return Projector{
		MVP:    c.ViewProjection(aspect).Mul4(Model(r)),
		Width:  float32(width),
		Height: float32(height),
	}
}

// Project returns the pixel position and the clip-space w (distance along the
// view axis). ok is false for points outside the near/far range.
func (p Projector) Project(x, y, z float32) (sx, sy, w float32, ok bool) {
	clip := p.MVP.Mul4x1(mgl32.Vec4{x, y, z, 1})
	w = clip.W()
	if w <= 0 {
		return 0, 0, w, false
	}
	nz := clip.Z() / w
	if nz < -1 || nz > 1 {
		return 0, 0, w, false
	}
	sx = (clip.X()/w + 1) * 0.5 * p.Width
	sy = (1 - clip.Y()/w) * 0.5 * p.Height
	return sx, sy, w, true
}

// PointSize converts a particle size to pixels with distance attenuation.
func (p Projector) PointSize(size, w, scale float32) float32 {
	if w <= 0 {
		return 0
	}
	return size * scale * (p.Height * 0.5) / w
}
