package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/cursed-particles/internal/pose"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// handConnections are the bones of the 21-point hand skeleton.
var handConnections = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4},
	{0, 5}, {5, 6}, {6, 7}, {7, 8},
	{5, 9}, {9, 10}, {10, 11}, {11, 12},
	{9, 13}, {13, 14}, {14, 15}, {15, 16},
	{13, 17}, {0, 17}, {17, 18}, {18, 19}, {19, 20},
}

const (
	overlayWidth  = 192
	overlayHeight = 144
	overlayMargin = 16
)

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// drawTitle centers the technique name near the top of the screen.
func drawTitle(dst *ebiten.Image, name string, glow color.RGBA) {
	const scale = 2
	w := float64(dst.Bounds().Dx())
	adv := text.Advance(name, hudFace) * scale
	x := (w - adv) / 2
	shadow := color.RGBA{R: glow.R / 3, G: glow.G / 3, B: glow.B / 3, A: 0xff}
	drawText(dst, name, x+2, 26, shadow, scale)
	drawText(dst, name, x, 24, color.White, scale)
}

// overlayPoint maps a normalized landmark into the inset rectangle. The image
// is mirrored like a selfie camera.
func overlayPoint(l pose.Landmark, x0, y0 float32) (float32, float32) {
	return x0 + (1-l.X)*overlayWidth, y0 + l.Y*overlayHeight
}

// drawHands renders the last pose sample in the bottom-right corner.
func drawHands(dst *ebiten.Image, hands []pose.Hand, glow color.RGBA) {
	b := dst.Bounds()
	x0 := float32(b.Dx() - overlayWidth - overlayMargin)
	y0 := float32(b.Dy() - overlayHeight - overlayMargin)
	vector.DrawFilledRect(dst, x0, y0, overlayWidth, overlayHeight, color.RGBA{R: 10, G: 10, B: 16, A: 160}, false)
	vector.StrokeRect(dst, x0, y0, overlayWidth, overlayHeight, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	for _, h := range hands {
		if !h.Valid() {
			continue
		}
		for _, c := range handConnections {
			ax, ay := overlayPoint(h[c[0]], x0, y0)
			bx, by := overlayPoint(h[c[1]], x0, y0)
			vector.StrokeLine(dst, ax, ay, bx, by, 2, glow, true)
		}
		for i, l := range h {
			x, y := overlayPoint(l, x0, y0)
			// one hue per digit, wrist white
			clr := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if i > 0 {
				r, g, bl := hsvToRgb(float64((i-1)/4)*72, 0.5, 1)
				clr = color.RGBA{R: r, G: g, B: bl, A: 255}
			}
			vector.DrawFilledCircle(dst, x, y, 2, clr, true)
		}
	}
}
