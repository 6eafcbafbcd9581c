// Command termviz runs the particle effect in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/cursed-particles/internal/animation"
	"github.com/iburimskiy/cursed-particles/internal/camera"
	"github.com/iburimskiy/cursed-particles/internal/config"
	"github.com/iburimskiy/cursed-particles/internal/logging"
	"github.com/iburimskiy/cursed-particles/internal/particle"
	"github.com/iburimskiy/cursed-particles/internal/pose"
	"github.com/iburimskiy/cursed-particles/internal/technique"
	"github.com/iburimskiy/cursed-particles/internal/termview"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML settings file")
	recording := flag.String("recording", "", "landmark recording to replay")
	count := flag.Int("count", 4000, "particle count")
	fps := flag.Int("fps", 30, "frames per second")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	} else {
		cfg.Particles.Count = *count
	}
	if *recording != "" {
		cfg.Pose.Recording = *recording
	}
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	logger := logging.Nop()
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = logging.NewWithWriters("termviz", cfg.Debug, f, f)
	}

	keys := termview.NewKeySource(30)
	var src pose.Source = keys
	if cfg.Pose.Recording != "" {
		rec, err := pose.LoadRecording(cfg.Pose.Recording)
		if err != nil {
			return err
		}
		rec.Loop = rec.Loop || cfg.Pose.Loop
		src = pose.NewPlayer(rec)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd := rand.New(rand.NewPCG(seed, seed>>1|1))
	store := particle.New(cfg.Particles.Count)
	session := animation.NewSession(store, technique.NewGenerator(cfg.Particles.Count, rnd), logger)
	driver := animation.NewDriver(session, termview.New(screen, camera.FromConfig(cfg.Camera)), rnd)
	driver.Alpha = float32(cfg.Particles.Smoothing)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if keys.HandleKey(ev) {
					cancel()
					return
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()
	logger.Infof("session %s: %d particles at %d fps", session.ID, cfg.Particles.Count, *fps)
	return driver.Run(ctx, ticker.C, src)
}
