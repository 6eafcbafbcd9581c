package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, 20000, s.Particles.Count)
	assert.Equal(t, 0.1, s.Particles.Smoothing)
	assert.Equal(t, 55.0, s.Camera.Distance)
	assert.True(t, s.Audio.Enabled)
	assert.NoError(t, s.Validate())
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, `
particles:
  count: 5000
audio:
  enabled: false
pose:
  recording: demo.yaml
seed: 42
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, s.Particles.Count)
	assert.Equal(t, 0.1, s.Particles.Smoothing, "unset fields keep defaults")
	assert.False(t, s.Audio.Enabled)
	assert.Equal(t, "demo.yaml", s.Pose.Recording)
	assert.True(t, s.Pose.Loop)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, WindowWidth, s.Window.Width)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "particles: [1, 2"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "particles:\n  count: -1\n"))
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"zero count", func(s *Settings) { s.Particles.Count = 0 }, ErrInvalidCount},
		{"zero smoothing", func(s *Settings) { s.Particles.Smoothing = 0 }, ErrInvalidSmoothing},
		{"smoothing above one", func(s *Settings) { s.Particles.Smoothing = 1.5 }, ErrInvalidSmoothing},
		{"full smoothing", func(s *Settings) { s.Particles.Smoothing = 1 }, nil},
		{"no width", func(s *Settings) { s.Window.Width = 0 }, ErrInvalidWindow},
		{"far before near", func(s *Settings) { s.Camera.Far = 0.01 }, ErrInvalidCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			if tt.want == nil {
				assert.NoError(t, s.Validate())
				return
			}
			assert.ErrorIs(t, s.Validate(), tt.want)
		})
	}
}
