// Package flappy implements a Flappy Bird-style simulation engine.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// The engine is headless: it only mutates data on Tick and on input events,
// and a host reads its state to draw frames. It is not safe for concurrent
// use; the host must serialize every call on one goroutine.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Engine owns all state of one game session and advances it one fixed
// step per Tick.
type Engine struct {
	cfg     config.FlappyConfig
	groundY int

	seed int64
	rng  *rand.Rand

	birdY  float64 // Centre of the bird
	birdVy float64 // Pixels per tick, positive is down

	obstacles      []Obstacle
	scored         map[uint64]struct{}
	nextID         uint64
	spawnCountdown float64 // Pixels left to scroll before the next spawn

	status  Status
	cause   Cause
	score   int
	ticks   int
	spawned int
}

// New validates cfg and returns an engine running a fresh session.
func New(cfg config.FlappyConfig, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		groundY: cfg.GroundY(),
	}
	e.Reset(seed)
	return e, nil
}

// ID returns the identifier used for the run journal.
func (e *Engine) ID() string {
	return "flappy"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Flappy Bird"
}

// Reset starts a fresh session whose obstacle stream is derived from seed.
func (e *Engine) Reset(seed int64) {
	e.seed = seed
	e.rng = rand.New(rand.NewSource(seed))

	e.birdY = float64(e.cfg.Playfield.Height / 2)
	e.birdVy = 0

	e.obstacles = e.obstacles[:0]
	e.scored = make(map[uint64]struct{})
	e.spawnCountdown = e.cfg.Obstacles.FirstSpawnLead

	e.status = Running
	e.cause = CauseNone
	e.score = 0
	e.ticks = 0
	e.spawned = 0
}

// Restart starts a fresh session from any state. The new session's seed is
// drawn from the current stream, so each session stays reproducible from
// its own Seed. Obstacle IDs keep increasing across restarts.
func (e *Engine) Restart() {
	e.Reset(e.rng.Int63())
}

// Flap sets the bird's velocity to the flap impulse.
// It has no effect while paused or after the session ended.
func (e *Engine) Flap() {
	if e.status != Running {
		return
	}
	e.birdVy = e.cfg.Physics.FlapVelocity
}

// TogglePause flips between Running and Paused. No-op once Ended.
func (e *Engine) TogglePause() {
	switch e.status {
	case Running:
		e.status = Paused
	case Paused:
		e.status = Running
	}
}

// Tick advances the simulation by one fixed step.
// It does nothing unless the session is Running.
func (e *Engine) Tick() {
	if e.status != Running {
		return
	}
	e.ticks++

	// Physics
	e.birdVy = min(e.birdVy+e.cfg.Physics.Gravity, e.cfg.Physics.MaxFallSpeed)
	e.birdY += e.birdVy

	// Obstacles
	e.advanceSpawner()
	e.scrollObstacles()

	// Collisions end the session before any scoring on this tick
	if cause := e.boundsCollision(); cause != CauseNone {
		e.end(cause)
		return
	}
	if e.obstacleCollision() {
		e.end(CauseObstacle)
		return
	}

	e.awardPasses()
}

func (e *Engine) end(cause Cause) {
	e.status = Ended
	e.cause = cause
}

// Step applies one frame of host input and then ticks once.
// Restart is applied first, then pause, then flap.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		e.Restart()
	}
	if in.Has(core.ActionPause) {
		e.TogglePause()
	}
	if in.Has(core.ActionJump) {
		e.Flap()
	}

	wasEnded := e.status == Ended
	e.Tick()

	return core.StepResult{
		State: e.State(),
		Ended: !wasEnded && e.status == Ended,
	}
}

// State returns the coarse state for the host.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		GameOver: e.status == Ended,
		Paused:   e.status == Paused,
	}
}

// RunSummary describes a session for the run journal.
type RunSummary struct {
	Seed    int64
	Score   int
	Ticks   int
	Spawned int
	Cause   Cause
}

// String formats the summary for CLI output.
func (s RunSummary) String() string {
	return fmt.Sprintf("seed=%d score=%d ticks=%d spawned=%d cause=%s",
		s.Seed, s.Score, s.Ticks, s.Spawned, s.Cause)
}

// Summary returns the current session's summary.
func (e *Engine) Summary() RunSummary {
	return RunSummary{
		Seed:    e.seed,
		Score:   e.score,
		Ticks:   e.ticks,
		Spawned: e.spawned,
		Cause:   e.cause,
	}
}

// BirdX returns the bird's fixed horizontal centre.
func (e *Engine) BirdX() int { return e.cfg.Player.X }

// BirdY returns the bird's vertical centre.
func (e *Engine) BirdY() float64 { return e.birdY }

// BirdVelocity returns the bird's vertical velocity; negative is up.
func (e *Engine) BirdVelocity() float64 { return e.birdVy }

// BirdSize returns the side of the bird's square hitbox.
func (e *Engine) BirdSize() int { return e.cfg.Player.Size }

// Score returns the number of pipes passed this session.
func (e *Engine) Score() int { return e.score }

// Status returns the state machine position.
func (e *Engine) Status() Status { return e.status }

// Cause returns what ended the session, or CauseNone.
func (e *Engine) Cause() Cause { return e.cause }

// GroundY returns the top of the ground band.
func (e *Engine) GroundY() int { return e.groundY }

// Width returns the playfield width.
func (e *Engine) Width() int { return e.cfg.Playfield.Width }

// Height returns the full height including the ground band.
func (e *Engine) Height() int { return e.cfg.Playfield.Height }

// PipeWidth returns the width of every pipe.
func (e *Engine) PipeWidth() int { return e.cfg.Obstacles.PipeWidth }

// Ticks returns the number of simulated ticks this session.
func (e *Engine) Ticks() int { return e.ticks }

// Spawned returns the number of pipes spawned this session.
func (e *Engine) Spawned() int { return e.spawned }

// Seed returns the seed of the current session.
func (e *Engine) Seed() int64 { return e.seed }

// Obstacles returns a copy of the live pipes in spawn order.
func (e *Engine) Obstacles() []Obstacle {
	out := make([]Obstacle, len(e.obstacles))
	copy(out, e.obstacles)
	return out
}
