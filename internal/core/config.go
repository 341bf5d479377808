package core

import "time"

// RuntimeConfig contains host parameters handed to the game driver.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Interval between simulation ticks
	Seed    int64         // RNG seed; 0 means use current time in platform layer
}

// GameState is the coarse status a host needs after every tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the session is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick that ended the session.
	Ended bool
}
