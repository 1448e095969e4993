package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ring-tower/parameter"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ring-tower.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.RingCountDefault, cfg.Rings)
	assert.True(t, cfg.StrictInvariants)
	assert.True(t, cfg.Audio)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
rings: 7
animation_frames: 0
audio: false
camera:
  pitch: 0.8
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Rings)
	assert.Equal(t, 0, cfg.AnimationFrames)
	assert.False(t, cfg.Audio)
	assert.Equal(t, 0.8, cfg.Camera.Pitch)
	// Untouched keys keep defaults
	assert.Equal(t, parameter.FrameRateDefault, cfg.FPS)
	assert.Equal(t, parameter.CameraDistance, cfg.Camera.Distance)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "rings: 7\nfps: 30\n")
	t.Setenv("RING_TOWER_RINGS", "3")
	t.Setenv("RING_TOWER_DEBUG", "true")
	t.Setenv("RING_TOWER_CAMERA_DISTANCE", "20")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Rings)
	assert.Equal(t, 30, cfg.FPS)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 20.0, cfg.Camera.Distance)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "rings: [1, 2\n"))
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("RING_TOWER_FPS", "fast")
		_, err := Load("")
		assert.ErrorContains(t, err, "parse env")
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := Load(writeFile(t, "rings: 9\nfps: 1\n"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "rings 9")
		assert.ErrorContains(t, err, "fps 1")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero rings", func(c *Config) { c.Rings = 0 }, "rings"},
		{"negative frames", func(c *Config) { c.AnimationFrames = -1 }, "animation_frames"},
		{"too many frames", func(c *Config) { c.AnimationFrames = parameter.AnimationFramesMax + 1 }, "animation_frames"},
		{"camera too close", func(c *Config) { c.Camera.Distance = 1 }, "camera.distance"},
		{"camera below ground", func(c *Config) { c.Camera.Pitch = -0.5 }, "camera.pitch"},
		{"no sensitivity", func(c *Config) { c.Camera.Sensitivity = 0 }, "camera.sensitivity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.field)
		})
	}
}
