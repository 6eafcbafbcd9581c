package termview

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/cursed-particles/internal/animation"
	"github.com/iburimskiy/cursed-particles/internal/camera"
	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/particle"
	"github.com/iburimskiy/cursed-particles/internal/pose"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

func testCamera() camera.Camera {
	return camera.FromConfig(config.Default().Camera)
}

func frameOf(points ...technique.Point) animation.Frame {
	store := particle.New(len(points))
	for i, p := range points {
		store.SetTarget(i, p)
	}
	store.Snap()
	style := technique.StyleOf(technique.Red)
	return animation.Frame{
		Buffers:   store.Buffers(),
		Technique: technique.Red,
		Name:      style.Name,
		Glow:      style.Glow,
		Bloom:     style.Bloom,
	}
}

func TestRasterize(t *testing.T) {
	f := frameOf(
		technique.Point{R: 1, S: 2},
		technique.Point{R: 1, S: 2},
		technique.Point{S: 0},
		technique.Point{Z: 500, R: 1, S: 1},
	)

	cells := rasterize(nil, f, testCamera(), 80, 24)
	require.Len(t, cells, 80*24)

	center := cells[12*80+40]
	assert.Equal(t, float32(4), center.hits)
	assert.Equal(t, float32(4), center.r)

	var total float32
	for _, c := range cells {
		total += c.hits
	}
	assert.Equal(t, float32(4), total, "invisible and clipped particles are skipped")
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, '.', glyph(0.2))
	assert.Equal(t, ':', glyph(2))
	assert.Equal(t, '@', glyph(1000))
}

func TestView_Submit(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 25)

	v := New(screen, testCamera())
	v.Submit(frameOf(technique.Point{R: 3, G: 0.1, B: 0.1, S: 2.5}))

	cells, w, _ := screen.GetContents()
	require.Equal(t, 80, w)

	var title strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[x].Runes; len(r) > 0 {
			title.WriteRune(r[0])
		}
	}
	assert.Contains(t, title.String(), "Reverse Cursed Technique: Red")

	lit := 0
	for _, c := range cells[w:] {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			lit++
		}
	}
	assert.Equal(t, 1, lit)
}

func TestKeySource(t *testing.T) {
	k := NewKeySource(100)

	assert.False(t, k.HandleKey(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone)))
	s, ok := k.Next(10 * time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, technique.Purple, pose.Classify(s.Hands))

	k.HandleKey(tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone))
	s, ok = k.Next(10 * time.Millisecond)
	require.True(t, ok)
	assert.Empty(t, s.Hands)

	assert.True(t, k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, k.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
