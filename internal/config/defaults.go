package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:        420,
			Height:       640,
			GroundHeight: 80,
		},
		Player: FlappyPlayer{
			X:    120,
			Size: 22,
		},
		Physics: FlappyPhysics{
			Gravity:      0.55,
			FlapVelocity: -9.5,
			MaxFallSpeed: 12,
			PipeSpeed:    3.6,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:      56,
			GapMin:         130,
			GapMax:         190,
			GapMargin:      40,
			SpawnEvery:     260,
			SpawnOffset:    20,
			FirstSpawnLead: 120,
			DespawnMargin:  10,
		},
		Timing: FlappyTiming{
			TickMS: 16,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
