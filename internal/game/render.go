package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cursed-particles/internal/animation"
	"github.com/iburimskiy/cursed-particles/internal/camera"
)

// DrawTriangles takes uint16 indices, so particles are drawn in batches.
const quadsPerBatch = 16000

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// quadIndices is shared by every batch.
var quadIndices = buildIndices(quadsPerBatch)

func buildIndices(quads int) []uint16 {
	idx := make([]uint16, 0, quads*6)
	for q := 0; q < quads; q++ {
		b := uint16(q * 4)
		idx = append(idx, b, b+1, b+2, b+1, b+3, b+2)
	}
	return idx
}

// appendQuads projects every visible particle of f and appends one quad per
// particle. Sub-pixel particles are drawn one pixel wide with their color
// scaled by coverage.
func appendQuads(dst []ebiten.Vertex, f animation.Frame, proj camera.Projector, pointScale float32) []ebiten.Vertex {
	b := f.Buffers
	for i, s := range b.Sizes {
		if s <= 0.001 {
			continue
		}
		x, y, w, ok := proj.Project(b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2])
		if !ok {
			continue
		}
		px := proj.PointSize(s, w, pointScale)
		cov := float32(1)
		if px < 1 {
			cov, px = px, 1
		}
		half := px / 2
		if x+half < 0 || y+half < 0 || x-half > proj.Width || y-half > proj.Height {
			continue
		}

		r := clamp01(b.Colors[i*3] * cov)
		g := clamp01(b.Colors[i*3+1] * cov)
		bl := clamp01(b.Colors[i*3+2] * cov)
		if r+g+bl == 0 {
			continue
		}
		for _, c := range [4][4]float32{{-half, -half, 1, 1}, {half, -half, 2, 1}, {-half, half, 1, 2}, {half, half, 2, 2}} {
			dst = append(dst, ebiten.Vertex{
				DstX: x + c[0], DstY: y + c[1],
				SrcX: c[2], SrcY: c[3],
				ColorR: r, ColorG: g, ColorB: bl, ColorA: 1,
			})
		}
	}
	return dst
}

func drawQuads(dst *ebiten.Image, vertices []ebiten.Vertex) {
	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendLighter}
	for start := 0; start < len(vertices); start += quadsPerBatch * 4 {
		end := start + quadsPerBatch*4
		if end > len(vertices) {
			end = len(vertices)
		}
		n := (end - start) / 4
		dst.DrawTriangles(vertices[start:end], quadIndices[:n*6], whiteSubImage, op)
	}
}

// bloom holds the downsampled copies of the scene that make up the glow.
type bloom struct {
	half    *ebiten.Image
	quarter *ebiten.Image
	eighth  *ebiten.Image
}

func (b *bloom) ensure(w, h int) {
	if b.half != nil && b.half.Bounds().Dx() == max(w/2, 1) && b.half.Bounds().Dy() == max(h/2, 1) {
		return
	}
	for _, img := range []*ebiten.Image{b.half, b.quarter, b.eighth} {
		if img != nil {
			img.Deallocate()
		}
	}
	b.half = ebiten.NewImage(max(w/2, 1), max(h/2, 1))
	b.quarter = ebiten.NewImage(max(w/4, 1), max(h/4, 1))
	b.eighth = ebiten.NewImage(max(w/8, 1), max(h/8, 1))
}

func downsample(dst, src *ebiten.Image) {
	dst.Clear()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(
		float64(dst.Bounds().Dx())/float64(src.Bounds().Dx()),
		float64(dst.Bounds().Dy())/float64(src.Bounds().Dy()),
	)
	dst.DrawImage(src, op)
}

// glowScale is the per-channel weight a bloom layer is added with.
func glowScale(strength float64, glow color.RGBA) (r, g, b float32) {
	gr, gg, gb := scaleOf(glow)
	k := float32(strength) * 0.3
	return k * (0.5 + 0.5*gr), k * (0.5 + 0.5*gg), k * (0.5 + 0.5*gb)
}

// apply adds the blurred layers of scene onto dst, translated by (dx, dy).
func (b *bloom) apply(dst, scene *ebiten.Image, strength float64, glow color.RGBA, dx, dy float64) {
	w, h := scene.Bounds().Dx(), scene.Bounds().Dy()
	b.ensure(w, h)
	downsample(b.half, scene)
	downsample(b.quarter, b.half)
	downsample(b.eighth, b.quarter)

	r, g, bl := glowScale(strength, glow)
	for _, layer := range []*ebiten.Image{b.quarter, b.eighth} {
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear, Blend: ebiten.BlendLighter}
		op.GeoM.Scale(float64(w)/float64(layer.Bounds().Dx()), float64(h)/float64(layer.Bounds().Dy()))
		op.GeoM.Translate(dx, dy)
		op.ColorScale.Scale(r, g, bl, 1)
		dst.DrawImage(layer, op)
	}
}
