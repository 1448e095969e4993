// Package config loads runtime settings: defaults, then an optional YAML file, then environment
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ring-tower/parameter"
)

// EnvPrefix prefixes every environment override, e.g. RING_TOWER_RINGS=6
const EnvPrefix = "RING_TOWER_"

// Camera holds the initial orbit camera placement
type Camera struct {
	Distance    float64 `yaml:"distance" env:"DISTANCE"`
	Yaw         float64 `yaml:"yaw" env:"YAW"`
	Pitch       float64 `yaml:"pitch" env:"PITCH"`
	Sensitivity float64 `yaml:"sensitivity" env:"SENSITIVITY"`
}

// Config is the runtime configuration of one game process
type Config struct {
	Rings            int    `yaml:"rings" env:"RINGS"`
	AnimationFrames  int    `yaml:"animation_frames" env:"ANIMATION_FRAMES"`
	FPS              int    `yaml:"fps" env:"FPS"`
	Audio            bool   `yaml:"audio" env:"AUDIO"`
	Debug            bool   `yaml:"debug" env:"DEBUG"`
	StrictInvariants bool   `yaml:"strict_invariants" env:"STRICT_INVARIANTS"`
	LogDir           string `yaml:"log_dir" env:"LOG_DIR"`
	Camera           Camera `yaml:"camera" envPrefix:"CAMERA_"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Rings:            parameter.RingCountDefault,
		AnimationFrames:  parameter.AnimationFramesDefault,
		FPS:              parameter.FrameRateDefault,
		Audio:            true,
		StrictInvariants: true,
		LogDir:           "logs",
		Camera: Camera{
			Distance:    parameter.CameraDistance,
			Yaw:         parameter.CameraYaw,
			Pitch:       parameter.CameraPitch,
			Sensitivity: parameter.CameraSensitivity,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and the environment
// An empty path skips the file, a missing file is an error
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field
func (c Config) Validate() error {
	var errs []error
	if c.Rings < parameter.RingCountMin || c.Rings > parameter.RingCountMax {
		errs = append(errs, fmt.Errorf("rings %d out of range [%d, %d]", c.Rings, parameter.RingCountMin, parameter.RingCountMax))
	}
	if c.AnimationFrames < 0 || c.AnimationFrames > parameter.AnimationFramesMax {
		errs = append(errs, fmt.Errorf("animation_frames %d out of range [0, %d]", c.AnimationFrames, parameter.AnimationFramesMax))
	}
	if c.FPS < parameter.FrameRateMin || c.FPS > parameter.FrameRateMax {
		errs = append(errs, fmt.Errorf("fps %d out of range [%d, %d]", c.FPS, parameter.FrameRateMin, parameter.FrameRateMax))
	}
	if c.Camera.Distance < parameter.CameraDistanceMin || c.Camera.Distance > parameter.CameraDistanceMax {
		errs = append(errs, fmt.Errorf("camera.distance %g out of range [%g, %g]", c.Camera.Distance, parameter.CameraDistanceMin, parameter.CameraDistanceMax))
	}
	if c.Camera.Pitch < parameter.CameraPitchMin || c.Camera.Pitch > parameter.CameraPitchMax {
		errs = append(errs, fmt.Errorf("camera.pitch %g out of range [%g, %g]", c.Camera.Pitch, parameter.CameraPitchMin, parameter.CameraPitchMax))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera.sensitivity must be positive, got %g", c.Camera.Sensitivity))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
