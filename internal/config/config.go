package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 576

	// Particle engine
	ParticleCount   = 20000
	SmoothingFactor = 0.1

	// Pose classifier
	PinchThreshold = 0.04
	HandLandmarks  = 21

	// Shake
	ShakeIntensity = 0.4
	ShakeRange     = 40

	// Rotation per tick (radians)
	RedSpinZ     = -0.1
	PurpleSpinZ  = 0.2
	PurpleSpinY  = 0.05
	NeutralSpinY = 0.005

	// Camera
	CameraFOV      = 75
	CameraNear     = 0.1
	CameraFar      = 1000
	CameraDistance = 55
	PointScale     = 0.3

	// Audio
	SampleRate = 44100
	CueVolume  = -1.0
	TapSize    = 4096
)

var (
	ErrInvalidCount     = errors.New("config: particle count must be positive")
	ErrInvalidSmoothing = errors.New("config: smoothing must be in (0, 1]")
	ErrInvalidWindow    = errors.New("config: window size must be positive")
	ErrInvalidCamera    = errors.New("config: camera near/far out of order")
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Particles struct {
	Count     int     `yaml:"count"`
	Smoothing float64 `yaml:"smoothing"`
}

type Camera struct {
	FOV        float64 `yaml:"fov"`
	Near       float64 `yaml:"near"`
	Far        float64 `yaml:"far"`
	Distance   float64 `yaml:"distance"`
	PointScale float64 `yaml:"point_scale"`
}

type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

type Pose struct {
	Recording string `yaml:"recording"`
	Loop      bool   `yaml:"loop"`
}

// Settings is the runtime configuration. Zero-valued fields in a YAML file keep
// their defaults because the file is decoded on top of Default().
type Settings struct {
	Window    Window    `yaml:"window"`
	Particles Particles `yaml:"particles"`
	Camera    Camera    `yaml:"camera"`
	Audio     Audio     `yaml:"audio"`
	Pose      Pose      `yaml:"pose"`
	Seed      uint64    `yaml:"seed"`
	Debug     bool      `yaml:"debug"`
}

func Default() Settings {
	return Settings{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Cursed Particles - 0-4: gestures, O: open recording, Space: pause, Esc/Q: quit",
		},
		Particles: Particles{
			Count:     ParticleCount,
			Smoothing: SmoothingFactor,
		},
		Camera: Camera{
			FOV:        CameraFOV,
			Near:       CameraNear,
			Far:        CameraFar,
			Distance:   CameraDistance,
			PointScale: PointScale,
		},
		Audio: Audio{
			Enabled:    true,
			SampleRate: SampleRate,
			Volume:     CueVolume,
		},
		Pose: Pose{
			Loop: true,
		},
	}
}

// Load reads a YAML settings file on top of the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Particles.Count <= 0 {
		return ErrInvalidCount
	}
	if s.Particles.Smoothing <= 0 || s.Particles.Smoothing > 1 {
		return ErrInvalidSmoothing
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return ErrInvalidWindow
	}
	if s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near {
		return ErrInvalidCamera
	}
	return nil
}
