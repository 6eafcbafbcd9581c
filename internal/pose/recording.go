package pose

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/cursed-particles/internal/config"
)

var (
	ErrEmptyRecording = errors.New("pose: recording has no frames")
	ErrInvalidHand    = errors.New("pose: hand must have 21 landmarks")
)

// Source yields pose samples. dt is the time since the previous call; ok is
// false when no new camera frame is due.
type Source interface {
	Next(dt time.Duration) (s Sample, ok bool)
}

// Recording is a captured sequence of samples replayed at FPS.
type Recording struct {
	FPS    float64
	Loop   bool
	Frames []Sample
}

type recordingFile struct {
	FPS    float64      `yaml:"fps"`
	Loop   bool         `yaml:"loop"`
	Frames []frameEntry `yaml:"frames"`
}

type frameEntry struct {
	Hands [][][3]float32 `yaml:"hands,flow"`
}

func LoadRecording(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	rec, err := DecodeRecording(f)
	if err != nil {
		return nil, fmt.Errorf("recording %s: %w", path, err)
	}
	return rec, nil
}

func DecodeRecording(r io.Reader) (*Recording, error) {
	var file recordingFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRecording
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(file.Frames) == 0 {
		return nil, ErrEmptyRecording
	}

	rec := &Recording{FPS: file.FPS, Loop: file.Loop, Frames: make([]Sample, len(file.Frames))}
	if rec.FPS <= 0 {
		rec.FPS = 30
	}
	for i, fr := range file.Frames {
		for j, pts := range fr.Hands {
			if len(pts) != config.HandLandmarks {
				return nil, fmt.Errorf("frame %d hand %d has %d landmarks: %w", i, j, len(pts), ErrInvalidHand)
			}
			h := make(Hand, len(pts))
			for k, p := range pts {
				h[k] = Landmark{X: p[0], Y: p[1], Z: p[2]}
			}
			rec.Frames[i].Hands = append(rec.Frames[i].Hands, h)
		}
	}
	return rec, nil
}

func (r *Recording) Encode(w io.Writer) error {
	file := recordingFile{FPS: r.FPS, Loop: r.Loop, Frames: make([]frameEntry, len(r.Frames))}
	for i, s := range r.Frames {
		for _, h := range s.Hands {
			pts := make([][3]float32, len(h))
			for k, l := range h {
				pts[k] = [3]float32{l.X, l.Y, l.Z}
			}
			file.Frames[i].Hands = append(file.Frames[i].Hands, pts)
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return enc.Close()
}

// Player replays a Recording as a Source.
type Player struct {
	rec      *Recording
	interval time.Duration
	elapsed  time.Duration
	next     int
}

func NewPlayer(rec *Recording) *Player {
	return &Player{
		rec:      rec,
		interval: time.Duration(float64(time.Second) / rec.FPS),
	}
}

// Done reports whether a non-looping recording has been played to the end.
func (p *Player) Done() bool {
	return !p.rec.Loop && p.next >= len(p.rec.Frames)
}

func (p *Player) Next(dt time.Duration) (Sample, bool) {
	if p.Done() {
		return Sample{}, false
	}
	p.elapsed += dt
	if p.elapsed < p.interval {
		return Sample{}, false
	}
	p.elapsed -= p.interval
	if p.elapsed > p.interval {
		// the host stalled; don't replay the backlog
		p.elapsed = 0
	}
	s := p.rec.Frames[p.next]
	p.next++
	if p.rec.Loop && p.next >= len(p.rec.Frames) {
		p.next = 0
	}
	return s, true
}
