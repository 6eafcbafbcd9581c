// Command recordgen writes a demo landmark recording that cycles through
// every technique, for use with -recording.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/iburimskiy/cursed-particles/internal/pose"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

func main() {
	out := flag.String("out", "demo.yaml", "output file")
	fps := flag.Float64("fps", 30, "frames per second")
	hold := flag.Float64("seconds", 3, "seconds each gesture is held")
	flag.Parse()

	if err := run(*out, *fps, *hold); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out string, fps, hold float64) error {
	if fps <= 0 || hold <= 0 {
		return fmt.Errorf("fps and seconds must be positive")
	}
	rec := build(fps, hold)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := rec.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// build holds each technique in turn, ending on neutral. The hand sways as a
// whole so the finger layout keeps its gesture.
func build(fps, hold float64) *pose.Recording {
	per := int(math.Ceil(fps * hold))
	order := []technique.Technique{
		technique.Red, technique.Void, technique.Purple, technique.Shrine, technique.Neutral,
	}
	rec := &pose.Recording{FPS: fps, Loop: true}
	frame := 0
	for _, t := range order {
		for i := 0; i < per; i++ {
			var s pose.Sample
			if t != technique.Neutral {
				phase := float64(frame) / fps * 2 * math.Pi * 0.5
				s.Hands = []pose.Hand{sway(pose.SynthHand(t), float32(0.02*math.Sin(phase)), float32(0.01*math.Cos(phase)))}
			}
			rec.Frames = append(rec.Frames, s)
			frame++
		}
	}
	return rec
}

func sway(h pose.Hand, dx, dy float32) pose.Hand {
	for i := range h {
		h[i].X += dx
		h[i].Y += dy
	}
	return h
}
