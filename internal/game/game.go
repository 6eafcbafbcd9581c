// Package game is the window front end: it feeds pose samples to the
// animation driver every tick and draws the frames it submits.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cursed-particles/internal/animation"
	"github.com/iburimskiy/cursed-particles/internal/audio"
	"github.com/iburimskiy/cursed-particles/internal/camera"
	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/logging"
	"github.com/iburimskiy/cursed-particles/internal/pose"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

var gestureKeys = map[ebiten.Key]technique.Technique{
	ebiten.Key0: technique.Neutral,
	ebiten.Key1: technique.Red,
	ebiten.Key2: technique.Void,
	ebiten.Key3: technique.Purple,
	ebiten.Key4: technique.Shrine,
}

type loadResult struct {
	path string
	rec  *pose.Recording
	err  error
}

type Game struct {
	cfg    config.Settings
	logger logging.Logger
	driver *animation.Driver
	cam    camera.Camera
	cues   *audio.Cues

	// pose input
	synth   *pose.Synth
	source  pose.Source
	srcName string
	loads   chan loadResult
	loading bool
	paused  bool

	// last submitted frame
	frame animation.Frame

	// viewport
	width, height int
	scene         *ebiten.Image
	glow          bloom
	vertices      []ebiten.Vertex

	started time.Time
	lastErr error
}

func New(cfg config.Settings, driver *animation.Driver, cues *audio.Cues, logger logging.Logger) *Game {
	g := &Game{
		cfg:     cfg,
		logger:  logging.OrNop(logger),
		driver:  driver,
		cam:     camera.FromConfig(cfg.Camera),
		cues:    cues,
		synth:   pose.NewSynth(30),
		loads:   make(chan loadResult, 1),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		started: time.Now(),
	}
	g.source, g.srcName = g.synth, "keyboard"
	driver.Renderer = g
	return g
}

// UseRecording replays rec instead of the keyboard gestures.
func (g *Game) UseRecording(name string, rec *pose.Recording) {
	g.source = pose.NewPlayer(rec)
	g.srcName = name
	g.logger.Infof("pose source: %s (%d frames at %.0f fps)", name, len(rec.Frames), rec.FPS)
}

// Submit implements animation.Renderer.
func (g *Game) Submit(f animation.Frame) {
	g.frame = f
}

func (g *Game) Update() error {
	for k, t := range gestureKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.synth.Hold(t)
			if g.source != g.synth {
				g.source, g.srcName = g.synth, "keyboard"
				g.logger.Infof("pose source: keyboard")
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && !g.loading {
		g.loading = true
		go g.openRecordingDialog()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	select {
	case res := <-g.loads:
		g.loading = false
		switch {
		case res.err != nil:
			g.lastErr = res.err
			g.logger.Warnf("%v", res.err)
		case res.rec != nil:
			g.lastErr = nil
			g.UseRecording(res.path, res.rec)
		}
	default:
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if !g.paused {
		if s, ok := g.source.Next(dt); ok {
			g.driver.Sample(s)
		}
	}
	g.driver.Tick()
	return nil
}

// openRecordingDialog runs off the update goroutine; the result is picked up
// by the next Update.
func (g *Game) openRecordingDialog() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Landmark Recording"),
		zenity.FileFilters{{
			Name:     "Landmark recordings",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			g.loads <- loadResult{}
			return
		}
		g.loads <- loadResult{err: fmt.Errorf("file dialog: %w", err)}
		return
	}
	rec, err := pose.LoadRecording(filename)
	g.loads <- loadResult{path: filename, rec: rec, err: err}
}

func (g *Game) ensureScene() {
	if g.scene != nil && g.scene.Bounds().Dx() == g.width && g.scene.Bounds().Dy() == g.height {
		return
	}
	if g.scene != nil {
		g.scene.Deallocate()
	}
	g.scene = ebiten.NewImage(g.width, g.height)
	g.logger.Debugf("viewport %dx%d", g.width, g.height)
}

// bloomStrength pulses the technique's bloom with the audio cue.
func (g *Game) bloomStrength() float64 {
	s := g.frame.Bloom
	if g.cues != nil {
		s *= 1 + min(g.cues.Level()*2, 0.5)
	}
	return s
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.frame.Buffers.Sizes == nil {
		return
	}
	g.ensureScene()
	g.scene.Clear()

	proj := g.cam.Projector(g.frame.Rotation, g.width, g.height)
	g.vertices = appendQuads(g.vertices[:0], g.frame, proj, float32(g.cfg.Camera.PointScale))
	drawQuads(g.scene, g.vertices)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(g.frame.ShakeX, g.frame.ShakeY)
	screen.DrawImage(g.scene, op)
	g.glow.apply(screen, g.scene, g.bloomStrength(), g.frame.Glow, g.frame.ShakeX, g.frame.ShakeY)

	drawTitle(screen, g.frame.Name, g.frame.Glow)
	drawHands(screen, g.frame.Hands, g.frame.Glow)
	g.drawStatus(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("%s | source: %s | %d particles | %s",
		formatDuration(time.Since(g.started)), g.srcName, len(g.frame.Buffers.Sizes), g.frame.Technique)
	if g.paused {
		status += " | paused"
	}
	if g.loading {
		status += " | opening..."
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	drawText(screen, status, 12, float64(g.height-24), color.RGBA{R: 160, G: 170, B: 190, A: 255}, 1)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
