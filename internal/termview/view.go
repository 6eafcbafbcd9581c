// Package termview draws the particle effect into a terminal.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/cursed-particles/internal/animation"
	"github.com/iburimskiy/cursed-particles/internal/camera"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

// ramp runs from sparse to dense.
var ramp = []rune(" .:-=+*#%@")

// A terminal cell is about twice as tall as it is wide, so the scene is
// projected onto rows*2 virtual pixels.
const cellAspect = 2

type cell struct {
	r, g, b float32
	hits    float32
}

type View struct {
	screen tcell.Screen
	cam    camera.Camera
	cells  []cell
}

func New(screen tcell.Screen, cam camera.Camera) *View {
	return &View{screen: screen, cam: cam}
}

// Submit implements animation.Renderer.
func (v *View) Submit(f animation.Frame) {
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	v.cells = rasterize(v.cells, f, v.cam, cols, rows-1)

	v.screen.Clear()
	ox, oy := int(f.ShakeX/8), int(f.ShakeY/16)
	for i, c := range v.cells {
		if c.hits == 0 {
			continue
		}
		x, y := i%cols+ox, i/cols+1+oy
		if x < 0 || x >= cols || y < 1 || y >= rows {
			continue
		}
		v.screen.SetContent(x, y, glyph(c.hits), nil, styleOf(c, f.Bloom))
	}
	drawTitle(v.screen, f, cols)
	v.screen.Show()
}

// rasterize accumulates every visible particle into a cols x rows grid.
func rasterize(dst []cell, f animation.Frame, cam camera.Camera, cols, rows int) []cell {
	n := cols * rows
	if cap(dst) < n {
		dst = make([]cell, n)
	}
	dst = dst[:n]
	clear(dst)

	proj := cam.Projector(f.Rotation, cols, rows*cellAspect)
	b := f.Buffers
	for i, s := range b.Sizes {
		if s <= 0.001 {
			continue
		}
		x, y, _, ok := proj.Project(b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2])
		if !ok {
			continue
		}
		cx, cy := int(x), int(y)/cellAspect
		if x < 0 || y < 0 || cx >= cols || cy >= rows {
			continue
		}
		c := &dst[cy*cols+cx]
		c.r += b.Colors[i*3] * s
		c.g += b.Colors[i*3+1] * s
		c.b += b.Colors[i*3+2] * s
		c.hits += s
	}
	return dst
}

func glyph(weight float32) rune {
	i := int(weight)
	if i < 1 {
		i = 1
	}
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	return ramp[i]
}

func styleOf(c cell, bloom float64) tcell.Style {
	k := float32(255*(0.6+0.2*bloom)) / c.hits
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(channel(c.r*k), channel(c.g*k), channel(c.b*k))).
		Background(tcell.ColorBlack)
}

func channel(v float32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int32(v)
}

func drawTitle(screen tcell.Screen, f animation.Frame, cols int) {
	name := []rune(f.Name)
	if f.Name == "" {
		name = []rune(technique.StyleOf(f.Technique).Name)
	}
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(f.Glow.R), int32(f.Glow.G), int32(f.Glow.B))).
		Background(tcell.ColorBlack).
		Bold(true)
	x := (cols - len(name)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range name {
		if x+i >= cols {
			break
		}
		screen.SetContent(x+i, 0, r, nil, style)
	}
}
