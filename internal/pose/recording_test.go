package pose

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/cursed-particles/internal/technique"
)

func demoRecording(loop bool) *Recording {
	return &Recording{
		FPS:  10,
		Loop: loop,
		Frames: []Sample{
			{Hands: []Hand{SynthHand(technique.Red)}},
			{},
			{Hands: []Hand{SynthHand(technique.Void), SynthHand(technique.Shrine)}},
		},
	}
}

func TestRecording_EncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demoRecording(true).Encode(&buf))
	assert.Contains(t, buf.String(), "fps: 10")

	rec, err := DecodeRecording(&buf)
	require.NoError(t, err)
	require.Len(t, rec.Frames, 3)

	assert.True(t, rec.Loop)
	assert.Equal(t, 10.0, rec.FPS)
	assert.Equal(t, technique.Red, Classify(rec.Frames[0].Hands))
	assert.Empty(t, rec.Frames[1].Hands)
	assert.Equal(t, technique.Shrine, Classify(rec.Frames[2].Hands))
	assert.Equal(t, SynthHand(technique.Void), rec.Frames[2].Hands[0])
}

func TestDecodeRecording_Errors(t *testing.T) {
	_, err := DecodeRecording(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyRecording)

	_, err = DecodeRecording(strings.NewReader("fps: 30\nframes: []\n"))
	assert.ErrorIs(t, err, ErrEmptyRecording)

	_, err = DecodeRecording(strings.NewReader("frames:\n  - hands: [[[0.1, 0.2, 0.0]]]\n"))
	assert.ErrorIs(t, err, ErrInvalidHand)

	_, err = DecodeRecording(strings.NewReader("frames: {"))
	assert.Error(t, err)
}

func TestDecodeRecording_DefaultFPS(t *testing.T) {
	var buf bytes.Buffer
	rec := demoRecording(false)
	rec.FPS = 0
	require.NoError(t, rec.Encode(&buf))

	got, err := DecodeRecording(&buf)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.FPS)
}

func TestLoadRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, demoRecording(false).Encode(f))
	require.NoError(t, f.Close())

	rec, err := LoadRecording(path)
	require.NoError(t, err)
	assert.Len(t, rec.Frames, 3)

	_, err = LoadRecording(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlayer_Pacing(t *testing.T) {
	p := NewPlayer(demoRecording(false))

	_, ok := p.Next(50 * time.Millisecond)
	assert.False(t, ok, "half a frame interval")

	s, ok := p.Next(50 * time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, technique.Red, Classify(s.Hands))

	s, ok = p.Next(100 * time.Millisecond)
	require.True(t, ok)
	assert.Empty(t, s.Hands)

	s, ok = p.Next(100 * time.Millisecond)
	require.True(t, ok)
	assert.Len(t, s.Hands, 2)

	assert.True(t, p.Done())
	_, ok = p.Next(time.Second)
	assert.False(t, ok)
}

func TestPlayer_LoopsAndDropsBacklog(t *testing.T) {
	p := NewPlayer(demoRecording(true))

	var got []technique.Technique
	for i := 0; i < 4; i++ {
		s, ok := p.Next(100 * time.Millisecond)
		require.True(t, ok)
		got = append(got, Classify(s.Hands))
	}
	assert.Equal(t, []technique.Technique{technique.Red, technique.Neutral, technique.Shrine, technique.Red}, got)
	assert.False(t, p.Done())

	// a long stall yields one frame, not a burst
	_, ok := p.Next(5 * time.Second)
	assert.True(t, ok)
	_, ok = p.Next(0)
	assert.False(t, ok)
}

func TestSynth(t *testing.T) {
	s := NewSynth(20)

	_, ok := s.Next(10 * time.Millisecond)
	assert.False(t, ok)

	sample, ok := s.Next(40 * time.Millisecond)
	require.True(t, ok)
	assert.Empty(t, sample.Hands, "neutral reports no hand")

	s.Hold(technique.Purple)
	assert.Equal(t, technique.Purple, s.Held())
	sample, ok = s.Next(50 * time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, technique.Purple, Classify(sample.Hands))
}
