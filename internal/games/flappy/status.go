package flappy

// Status is the session state machine position.
type Status int

const (
	Running Status = iota // Ticks advance the simulation
	Paused                // Ticks are no-ops until the pause is toggled off
	Ended                 // Terminal until Restart
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Cause records what ended a session.
type Cause int

const (
	CauseNone     Cause = iota // Session has not ended
	CauseCeiling               // Bird touched y=0
	CauseGround                // Bird touched the ground band
	CauseObstacle              // Bird hit a pipe outside its gap
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCeiling:
		return "ceiling"
	case CauseGround:
		return "ground"
	case CauseObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}
