package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/cursed-particles/internal/animation"
	"github.com/iburimskiy/cursed-particles/internal/config"
)

func testProjector(r animation.Rotation) Projector {
	return FromConfig(config.Default().Camera).Projector(r, 800, 600)
}

func TestProject_OriginAtCenter(t *testing.T) {
	p := testProjector(animation.Rotation{})

	x, y, w, ok := p.Project(0, 0, 0)
	assert.True(t, ok)
	assert.InDelta(t, 400, x, 1e-3)
	assert.InDelta(t, 300, y, 1e-3)
	assert.InDelta(t, 55, w, 1e-3)
}

func TestProject_Axes(t *testing.T) {
	p := testProjector(animation.Rotation{})

	rx, _, _, _ := p.Project(10, 0, 0)
	assert.Greater(t, rx, float32(400), "+x is right")

	_, uy, _, _ := p.Project(0, 10, 0)
	assert.Less(t, uy, float32(300), "+y is up on screen")

	_, _, wNear, _ := p.Project(0, 0, 20)
	_, _, wFar, _ := p.Project(0, 0, -20)
	assert.Less(t, wNear, wFar)
}

func TestProject_BehindCamera(t *testing.T) {
	p := testProjector(animation.Rotation{})

	_, _, _, ok := p.Project(0, 0, 60)
	assert.False(t, ok)
	_, _, _, ok = p.Project(0, 0, -2000)
	assert.False(t, ok, "beyond far plane")
}

func TestModel_RotationZ(t *testing.T) {
	p := testProjector(animation.Rotation{Z: math.Pi / 2})

	x, y, _, ok := p.Project(10, 0, 0)
	assert.True(t, ok)
	assert.InDelta(t, 400, x, 1e-2)
	assert.Less(t, y, float32(300), "quarter turn moves +x to +y")
}

func TestPointSize(t *testing.T) {
	p := testProjector(animation.Rotation{})

	assert.InDelta(t, 2.5*0.3*300/55, p.PointSize(2.5, 55, 0.3), 1e-4)
	assert.Greater(t, p.PointSize(1, 20, 0.3), p.PointSize(1, 80, 0.3))
	assert.Zero(t, p.PointSize(1, 0, 0.3))
}
