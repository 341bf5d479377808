// Package config provides YAML-based game configuration loading and
// validation for the flappy engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned (wrapped) when a configuration cannot
// produce a playable session.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all tunables of the flappy engine.
// All lengths are in playfield pixels and all rates are per tick.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Player    FlappyPlayer    `yaml:"player"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Timing    FlappyTiming    `yaml:"timing"`
}

// FlappyPlayfield defines the simulated area.
type FlappyPlayfield struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundHeight int `yaml:"ground_height"`
}

// FlappyPlayer defines the bird's fixed column and hitbox.
type FlappyPlayer struct {
	X    int `yaml:"x"`
	Size int `yaml:"size"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapVelocity float64 `yaml:"flap_velocity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	PipeSpeed    float64 `yaml:"pipe_speed"`
}

// FlappyObstacles defines obstacle shape and spawn cadence.
type FlappyObstacles struct {
	PipeWidth      int     `yaml:"pipe_width"`
	GapMin         int     `yaml:"gap_min"`
	GapMax         int     `yaml:"gap_max"`
	GapMargin      int     `yaml:"gap_margin"`       // Minimum distance of a gap from ceiling and ground
	SpawnEvery     float64 `yaml:"spawn_every"`      // Horizontal distance between consecutive pipes
	SpawnOffset    float64 `yaml:"spawn_offset"`     // Spawn X past the right edge
	FirstSpawnLead float64 `yaml:"first_spawn_lead"` // Scroll distance before the first spawn
	DespawnMargin  float64 `yaml:"despawn_margin"`   // How far past the left edge a pipe survives
}

// FlappyTiming defines the nominal driver cadence.
type FlappyTiming struct {
	TickMS int `yaml:"tick_ms"`
}

// GroundY returns the y coordinate of the top of the ground band.
func (c FlappyConfig) GroundY() int {
	return c.Playfield.Height - c.Playfield.GroundHeight
}

// TickInterval returns the driver cadence as a duration.
func (c FlappyConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Validate reports every constraint the configuration violates.
// The returned error wraps ErrInvalidConfig.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	pf := c.Playfield
	check(pf.Width > 0, "playfield.width must be positive, got %d", pf.Width)
	check(pf.Height > 0, "playfield.height must be positive, got %d", pf.Height)
	check(pf.GroundHeight >= 0 && pf.GroundHeight < pf.Height,
		"playfield.ground_height must be in [0, %d), got %d", pf.Height, pf.GroundHeight)

	p := c.Player
	check(p.Size > 0, "player.size must be positive, got %d", p.Size)
	check(p.X >= 0 && p.X <= pf.Width, "player.x must be in [0, %d], got %d", pf.Width, p.X)
	check(p.Size < c.GroundY(), "player.size %d does not fit above the ground at %d", p.Size, c.GroundY())

	ph := c.Physics
	check(ph.Gravity > 0, "physics.gravity must be positive, got %g", ph.Gravity)
	check(ph.FlapVelocity < 0, "physics.flap_velocity must be negative, got %g", ph.FlapVelocity)
	check(ph.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %g", ph.MaxFallSpeed)
	check(ph.PipeSpeed > 0, "physics.pipe_speed must be positive, got %g", ph.PipeSpeed)

	o := c.Obstacles
	check(o.PipeWidth > 0, "obstacles.pipe_width must be positive, got %d", o.PipeWidth)
	check(o.GapMin > 0, "obstacles.gap_min must be positive, got %d", o.GapMin)
	check(o.GapMin <= o.GapMax, "obstacles.gap_min %d exceeds gap_max %d", o.GapMin, o.GapMax)
	check(o.GapMargin >= 0, "obstacles.gap_margin must not be negative, got %d", o.GapMargin)
	check(o.SpawnEvery > 0, "obstacles.spawn_every must be positive, got %g", o.SpawnEvery)
	check(o.DespawnMargin >= 0, "obstacles.despawn_margin must not be negative, got %g", o.DespawnMargin)
	check(o.FirstSpawnLead >= 0, "obstacles.first_spawn_lead must not be negative, got %g", o.FirstSpawnLead)

	// The widest gap must still leave a non-empty range for its centre.
	minCenter := o.GapMargin + o.GapMax/2
	maxCenter := c.GroundY() - o.GapMargin - o.GapMax/2
	check(maxCenter >= minCenter,
		"obstacles: gap_max %d with gap_margin %d leaves no room below ground at %d",
		o.GapMax, o.GapMargin, c.GroundY())

	check(c.Timing.TickMS > 0, "timing.tick_ms must be positive, got %d", c.Timing.TickMS)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
