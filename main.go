package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cursed-particles/internal/animation"
	"github.com/iburimskiy/cursed-particles/internal/audio"
	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/game"
	"github.com/iburimskiy/cursed-particles/internal/logging"
	"github.com/iburimskiy/cursed-particles/internal/particle"
	"github.com/iburimskiy/cursed-particles/internal/pose"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	recording := flag.String("recording", "", "landmark recording to replay instead of keyboard gestures")
	seed := flag.Uint64("seed", 0, "random seed (0 = time based)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *recording != "" {
		cfg.Pose.Recording = *recording
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger := logging.New("particles", cfg.Debug || *debug)
	rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1))

	store := particle.New(cfg.Particles.Count)
	session := animation.NewSession(store, technique.NewGenerator(cfg.Particles.Count, rnd), logger)
	driver := animation.NewDriver(session, nil, rnd)
	driver.Alpha = float32(cfg.Particles.Smoothing)

	cues := audio.New(cfg.Audio, logger)
	if cfg.Audio.Enabled {
		if err := cues.Start(); err != nil {
			// Non-fatal, the effect runs without sound
			logger.Warnf("audio disabled: %v", err)
		}
	}
	session.OnTransition(func(_, to technique.Technique) { cues.Play(to) })

	g := game.New(cfg, driver, cues, logger)
	if cfg.Pose.Recording != "" {
		rec, err := pose.LoadRecording(cfg.Pose.Recording)
		if err != nil {
			log.Fatal(err)
		}
		rec.Loop = rec.Loop || cfg.Pose.Loop
		g.UseRecording(cfg.Pose.Recording, rec)
	}

	logger.Infof("session %s: %d particles, seed %d", session.ID, cfg.Particles.Count, cfg.Seed)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
