package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"gap min above max", func(c *FlappyConfig) { c.Obstacles.GapMin = 200 }, "gap_min"},
		{"zero gap", func(c *FlappyConfig) { c.Obstacles.GapMin, c.Obstacles.GapMax = 0, 0 }, "gap_min must be positive"},
		{"no playable range", func(c *FlappyConfig) { c.Obstacles.GapMargin = 200 }, "leaves no room"},
		{"ground swallows screen", func(c *FlappyConfig) { c.Playfield.GroundHeight = 640 }, "ground_height"},
		{"upward gravity", func(c *FlappyConfig) { c.Physics.Gravity = -1 }, "gravity"},
		{"downward flap", func(c *FlappyConfig) { c.Physics.FlapVelocity = 3 }, "flap_velocity"},
		{"stalled pipes", func(c *FlappyConfig) { c.Physics.PipeSpeed = 0 }, "pipe_speed"},
		{"zero spawn interval", func(c *FlappyConfig) { c.Obstacles.SpawnEvery = 0 }, "spawn_every"},
		{"bird off playfield", func(c *FlappyConfig) { c.Player.X = 1000 }, "player.x"},
		{"zero tick", func(c *FlappyConfig) { c.Timing.TickMS = 0 }, "tick_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.PipeWidth = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "gravity") || !strings.Contains(err.Error(), "pipe_width") {
		t.Errorf("both violations should be reported, got %q", err)
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.8\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %g, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.GapMax != 190 {
		t.Errorf("unset keys should keep defaults, gap_max = %d", cfg.Obstacles.GapMax)
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap_min: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadFlappy(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	_, _, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing custom file should fail")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultFlappyConfig().WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "flap_velocity: -9.5") {
		t.Errorf("encoded YAML missing flap_velocity:\n%s", buf.String())
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if got := cfg.TickInterval().Milliseconds(); got != 16 {
		t.Errorf("TickInterval() = %dms, expected 16ms", got)
	}
	if cfg.GroundY() != 560 {
		t.Errorf("GroundY() = %d, expected 560", cfg.GroundY())
	}
}
