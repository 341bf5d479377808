package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▒'
	GrassChar     = '▔'
)

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2.0

// viewport maps playfield pixels onto screen cells, keeping the
// playfield's aspect ratio and centring it horizontally.
type viewport struct {
	offX, offY int
	cols, rows int
	pxPerCol   float64
	pxPerRow   float64
}

func newViewport(dst *core.Screen, width, height int) viewport {
	if dst.Width() == 0 || dst.Height() == 0 {
		return viewport{pxPerCol: 1, pxPerRow: 1}
	}
	perCol := math.Max(float64(width)/float64(dst.Width()), float64(height)/(cellAspect*float64(dst.Height())))
	v := viewport{
		pxPerCol: perCol,
		pxPerRow: perCol * cellAspect,
		cols:     core.Min(dst.Width(), int(math.Ceil(float64(width)/perCol))),
		rows:     core.Min(dst.Height(), int(math.Ceil(float64(height)/(perCol*cellAspect)))),
	}
	v.offX = (dst.Width() - v.cols) / 2
	v.offY = (dst.Height() - v.rows) / 2
	return v
}

// col converts a playfield x to a screen column.
func (v viewport) col(x float64) int {
	return v.offX + int(math.Floor(x/v.pxPerCol))
}

// row converts a playfield y to a screen row.
func (v viewport) row(y float64) int {
	return v.offY + int(math.Floor(y/v.pxPerRow))
}

// clipCols clamps a column span to the viewport.
func (v viewport) clipCols(from, to int) (int, int) {
	return core.Clamp(from, v.offX, v.offX+v.cols), core.Clamp(to, v.offX, v.offX+v.cols)
}

// Render draws the current state into dst. It only reads engine state.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst, e.Width(), e.Height())

	groundRow := v.row(float64(e.groundY))
	e.drawGround(dst, v, groundRow)

	for _, o := range e.obstacles {
		e.drawPipe(dst, v, o, groundRow)
	}

	e.drawBird(dst, v)
	e.drawHUD(dst, v)

	switch e.status {
	case Paused:
		drawCenteredMessage(dst, v, "PAUSED", "Press P to resume")
	case Ended:
		drawCenteredMessage(dst, v, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", e.score))
	}
}

func (e *Engine) drawGround(dst *core.Screen, v viewport, groundRow int) {
	dst.DrawHLine(v.offX, groundRow, v.cols, GrassChar, core.ColorBrightGreen)
	for y := groundRow + 1; y < v.offY+v.rows; y++ {
		dst.DrawHLine(v.offX, y, v.cols, GroundChar, core.ColorBrown)
	}
}

// drawPipe renders both halves of a pipe pair, clipped to the viewport.
func (e *Engine) drawPipe(dst *core.Screen, v viewport, o Obstacle, groundRow int) {
	left, right := v.clipCols(v.col(o.X), v.col(o.X+float64(e.cfg.Obstacles.PipeWidth)))
	if right <= left {
		return
	}

	topEnd := v.row(float64(o.GapTop()))
	bottomStart := v.row(float64(o.GapBottom()))

	// Top section with its cap on the last row
	dst.FillRect(core.NewRect(left, v.offY, right-left, topEnd-v.offY), PipeChar, core.ColorGreen)
	if topEnd > v.offY {
		dst.DrawHLine(left, topEnd-1, right-left, PipeCapTop, core.ColorBrightGreen)
	}

	// Bottom section with its cap on the first row
	dst.FillRect(core.NewRect(left, bottomStart, right-left, groundRow-bottomStart), PipeChar, core.ColorGreen)
	if bottomStart < groundRow {
		dst.DrawHLine(left, bottomStart, right-left, PipeCapBottom, core.ColorBrightGreen)
	}
}

func (e *Engine) drawBird(dst *core.Screen, v viewport) {
	half := float64(e.cfg.Player.Size / 2)
	x := float64(e.cfg.Player.X)

	left, right := v.col(x-half), v.col(x+half)
	top, bottom := v.row(e.birdY-half), v.row(e.birdY+half)
	for y := top; y <= bottom; y++ {
		for cx := left; cx <= right; cx++ {
			dst.SetColored(cx, y, BirdChar, core.ColorBrightYellow)
		}
	}
}

func (e *Engine) drawHUD(dst *core.Screen, v viewport) {
	var text string
	switch e.status {
	case Running:
		if e.ticks == 0 {
			text = fmt.Sprintf(" Score: %d   [Space] flap  [P] pause  [R] restart ", e.score)
		} else {
			text = fmt.Sprintf(" Score: %d ", e.score)
		}
	case Paused:
		text = fmt.Sprintf(" Score: %d   Paused ", e.score)
	case Ended:
		text = fmt.Sprintf(" Score: %d   Game Over ", e.score)
	}
	dst.DrawTextColored(v.offX, v.offY, text, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the centre of the playfield.
func drawCenteredMessage(dst *core.Screen, v viewport, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := v.offX + (v.cols-boxW)/2
	boxY := v.offY + (v.rows-boxH)/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
