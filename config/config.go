// Package config loads the scene, tuning and input script of a simulation
// from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akmonengine/cubefall"
	"github.com/akmonengine/cubefall/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// BodyConfig describes a box to create
type BodyConfig struct {
	Width    float64    `toml:"width" yaml:"width"`
	Height   float64    `toml:"height" yaml:"height"`
	Depth    float64    `toml:"depth" yaml:"depth"`
	Color    string     `toml:"color" yaml:"color"`
	Position [3]float64 `toml:"position" yaml:"position"`
	Velocity [3]float64 `toml:"velocity" yaml:"velocity"`
	Gravity  float64    `toml:"gravity" yaml:"gravity"`
}

// Build creates the described body
func (b BodyConfig) Build() *actor.Body {
	body := actor.NewBody(b.Width, b.Height, b.Depth, b.Color, mgl64.Vec3(b.Velocity), mgl64.Vec3(b.Position))
	body.Gravity = b.Gravity

	return body
}

type Tuning struct {
	HorizontalSpeed float64 `toml:"horizontal_speed" yaml:"horizontal_speed"`
	Damping         float64 `toml:"damping" yaml:"damping"`
	FallThreshold   float64 `toml:"fall_threshold" yaml:"fall_threshold"`
}

type Config struct {
	// Ticks per second, <= 0 runs as fast as possible
	TickRate int `toml:"tick_rate" yaml:"tick_rate"`

	// 0 runs until interrupted
	MaxTicks   uint64 `toml:"max_ticks" yaml:"max_ticks"`
	Script     string `toml:"script" yaml:"script"`
	LoopScript bool   `toml:"loop_script" yaml:"loop_script"`

	Tuning Tuning     `toml:"tuning" yaml:"tuning"`
	Cube   BodyConfig `toml:"cube" yaml:"cube"`
	Ground BodyConfig `toml:"ground" yaml:"ground"`
}

// Default returns the reference scene at 60 ticks per second, with no input
func Default() Config {
	return Config{
		TickRate: 60,
		Tuning: Tuning{
			HorizontalSpeed: cubefall.HORIZONTAL_SPEED,
			Damping:         cubefall.DAMPING,
			FallThreshold:   cubefall.FALL_THRESHOLD,
		},
		Cube: BodyConfig{
			Width:    1,
			Height:   1,
			Depth:    1,
			Color:    actor.DEFAULT_COLOR,
			Velocity: [3]float64{0, -0.01, 0},
			Gravity:  actor.DEFAULT_GRAVITY,
		},
		Ground: BodyConfig{
			Width:    5,
			Height:   0.5,
			Depth:    10,
			Color:    "#0000ff",
			Position: [3]float64{0, -2, 0},
			Gravity:  actor.DEFAULT_GRAVITY,
		},
	}
}

// Load reads a config file, choosing the decoder from its extension.
// Keys missing from the file keep their Default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return Decode(data, filepath.Ext(path))
}

// Decode parses data in the format named by ext (".toml", ".yaml" or ".yml")
func Decode(data []byte, ext string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decoding toml config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decoding yaml config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	if c.Tuning.Damping < 0 || c.Tuning.Damping >= 1 {
		return fmt.Errorf("%w: damping %v must be in [0, 1)", ErrInvalidConfig, c.Tuning.Damping)
	}
	if c.Tuning.HorizontalSpeed < 0 {
		return fmt.Errorf("%w: negative horizontal speed %v", ErrInvalidConfig, c.Tuning.HorizontalSpeed)
	}

	bodies := []struct {
		name string
		body BodyConfig
	}{
		{"cube", c.Cube},
		{"ground", c.Ground},
	}
	for _, b := range bodies {
		if b.body.Width <= 0 || b.body.Height <= 0 || b.body.Depth <= 0 {
			return fmt.Errorf("%w: %s extents must be positive", ErrInvalidConfig, b.name)
		}
	}

	return nil
}

// SimulationTuning converts the tuning section for the simulator
func (c Config) SimulationTuning() cubefall.Tuning {
	return cubefall.Tuning{
		HorizontalSpeed: c.Tuning.HorizontalSpeed,
		Damping:         c.Tuning.Damping,
		FallThreshold:   c.Tuning.FallThreshold,
	}
}

// World builds a world from the cube and ground sections
func (c Config) World() *cubefall.World {
	return cubefall.NewWorld(c.Cube.Build(), c.Ground.Build(), c.SimulationTuning())
}
