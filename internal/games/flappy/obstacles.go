package flappy

// Obstacle is a pipe pair with a passable vertical gap.
type Obstacle struct {
	ID        uint64  // Unique within an engine; used for scoring dedup
	X         float64 // Left edge in playfield pixels
	GapY      int     // Centre of the gap
	GapHeight int     // Height of the gap
}

// GapTop returns the y of the top pipe's lower edge.
func (o Obstacle) GapTop() int {
	return o.GapY - o.GapHeight/2
}

// GapBottom returns the y of the bottom pipe's upper edge.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.GapHeight/2
}

// spawnObstacle appends a new pipe pair just past the right edge.
// Gap height is uniform in [GapMin, GapMax]; the centre is uniform in the
// range that keeps the whole gap GapMargin away from ceiling and ground.
func (e *Engine) spawnObstacle() {
	o := e.cfg.Obstacles

	gapHeight := o.GapMin + e.rng.Intn(o.GapMax-o.GapMin+1)

	minCenter := o.GapMargin + gapHeight/2
	maxCenter := e.groundY - o.GapMargin - gapHeight/2
	gapY := minCenter + e.rng.Intn(maxCenter-minCenter+1)

	e.nextID++
	e.obstacles = append(e.obstacles, Obstacle{
		ID:        e.nextID,
		X:         float64(e.cfg.Playfield.Width) + o.SpawnOffset,
		GapY:      gapY,
		GapHeight: gapHeight,
	})
	e.spawned++
}

// advanceSpawner runs the distance-based spawn countdown for one tick.
func (e *Engine) advanceSpawner() {
	if e.spawnCountdown <= 0 {
		e.spawnObstacle()
		e.spawnCountdown += e.cfg.Obstacles.SpawnEvery
	}
	e.spawnCountdown -= e.cfg.Physics.PipeSpeed
}

// scrollObstacles moves every pipe left and drops the ones that are gone.
// Survivors keep their relative order.
func (e *Engine) scrollObstacles() {
	speed := e.cfg.Physics.PipeSpeed
	for i := range e.obstacles {
		e.obstacles[i].X -= speed
	}

	width := float64(e.cfg.Obstacles.PipeWidth)
	limit := -e.cfg.Obstacles.DespawnMargin

	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		if o.X+width > limit {
			kept = append(kept, o)
			continue
		}
		delete(e.scored, o.ID)
	}
	// Zero the tail so dropped pipes do not linger in the backing array.
	for i := len(kept); i < len(e.obstacles); i++ {
		e.obstacles[i] = Obstacle{}
	}
	e.obstacles = kept
}

// awardPasses credits every pipe whose right edge is fully behind the bird.
// Returns the number of pipes credited this tick.
func (e *Engine) awardPasses() int {
	width := float64(e.cfg.Obstacles.PipeWidth)
	birdX := float64(e.cfg.Player.X)

	passed := 0
	for _, o := range e.obstacles {
		if _, done := e.scored[o.ID]; done {
			continue
		}
		if o.X+width < birdX {
			e.scored[o.ID] = struct{}{}
			passed++
		}
	}
	e.score += passed
	return passed
}
