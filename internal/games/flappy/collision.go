package flappy

// birdBox returns the bird's hitbox edges.
func (e *Engine) birdBox() (left, top, right, bottom float64) {
	half := e.cfg.Player.Size / 2
	x := e.cfg.Player.X
	return float64(x - half), e.birdY - float64(half), float64(x + half), e.birdY + float64(half)
}

// boundsCollision checks the ceiling and the top of the ground band.
// Touching either counts as a hit.
func (e *Engine) boundsCollision() Cause {
	_, top, _, bottom := e.birdBox()
	if bottom >= float64(e.groundY) {
		return CauseGround
	}
	if top <= 0 {
		return CauseCeiling
	}
	return CauseNone
}

// obstacleCollision reports whether the bird overlaps any pipe outside its gap.
// Horizontal overlap is inclusive: touching edges overlap.
func (e *Engine) obstacleCollision() bool {
	left, top, right, bottom := e.birdBox()
	width := float64(e.cfg.Obstacles.PipeWidth)

	for _, o := range e.obstacles {
		pipeLeft := float64(int(o.X))
		pipeRight := float64(int(o.X + width))
		if right < pipeLeft || left > pipeRight {
			continue
		}
		if top < float64(o.GapTop()) || bottom > float64(o.GapBottom()) {
			return true
		}
	}
	return false
}
