// Package ui draws game snapshots onto a Canvas.
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"retro-snake/game"
	"retro-snake/game/types"
	"retro-snake/stats"
)

// Renderer paints snapshots. It holds no game state and never changes what it is given.
type Renderer struct {
	theme Theme
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

func (r *Renderer) Theme() Theme {
	return r.theme
}

// layout holds the per-frame geometry derived from the canvas and grid size
type layout struct {
	cellSize  int
	boardSize int
	fontSize  int
	titleSize int
}

func newLayout(c Canvas, grid types.Grid) layout {
	w, h := c.Size()
	n := max(grid.Size, 1)
	cell := max(min(w, h)/n, 1)

	return layout{
		cellSize:  cell,
		boardSize: cell * n,
		fontSize:  max(cell*3/5, 1),
		titleSize: cell,
	}
}

// SpecialVisible reports whether blinking special food is shown at instant now
func SpecialVisible(now time.Time) bool {
	return math.Sin(float64(now.UnixMilli())*0.01) > 0
}

// Draw paints one frame: background, grid, snake, food, special food, then the
// overlay for the current state
func (r *Renderer) Draw(c Canvas, snap game.Snapshot, now time.Time) {
	l := newLayout(c, snap.Grid)

	c.Clear(r.theme.Background)
	r.drawGrid(c, l, snap.Grid)

	for i, p := range snap.Snake {
		col := r.theme.Body
		if i == 0 {
			col = r.theme.Head
		}
		fillCell(c, l, p, l.cellSize/10, col)
	}

	fillCell(c, l, snap.Food, l.cellSize*3/20, r.theme.Food)

	if snap.Special != nil && SpecialVisible(now) {
		fillCell(c, l, snap.Special.Pos, l.cellSize/20, r.theme.Special)
	}

	switch snap.State {
	case types.Menu:
		r.drawMenu(c, l)
	case types.Playing:
		if snap.Direction == types.None {
			r.drawAwaitingInput(c, l)
		}
	case types.GameOver:
		r.drawGameOver(c, l, snap)
	}
}

func (r *Renderer) drawGrid(c Canvas, l layout, grid types.Grid) {
	for i := 0; i <= grid.Size; i++ {
		pos := i * l.cellSize
		c.Line(pos, 0, pos, l.boardSize, r.theme.Grid)
		c.Line(0, pos, l.boardSize, pos, r.theme.Grid)
	}
}

func fillCell(c Canvas, l layout, p types.Point, inset int, col color.RGBA) {
	side := l.cellSize - 2*inset
	c.FillRect(p.X*l.cellSize+inset, p.Y*l.cellSize+inset, side, side, col)
}

type textLine struct {
	text string
	size int
	col  color.RGBA
}

// drawLines veils the board and stacks lines centered on it
func drawLines(c Canvas, l layout, veil color.RGBA, lines []textLine) {
	c.FillRect(0, 0, l.boardSize, l.boardSize, veil)

	total := 0
	for _, line := range lines {
		total += line.size + max(line.size/2, 1)
	}

	y := (l.boardSize - total) / 2
	for _, line := range lines {
		x := (l.boardSize - c.MeasureText(line.text, line.size)) / 2
		c.Text(line.text, x, y, line.size, line.col)
		y += line.size + max(line.size/2, 1)
	}
}

func (r *Renderer) drawMenu(c Canvas, l layout) {
	drawLines(c, l, r.theme.Overlay, []textLine{
		{r.theme.Title, l.titleSize, r.theme.Heading},
		{"USE ARROW KEYS OR WASD", l.fontSize, r.theme.Hint},
		{"PRESS SPACE TO START", l.fontSize, r.theme.Prompt},
		{fmt.Sprintf("FOOD = %d PTS", types.FoodReward), l.fontSize, r.theme.Food},
		{fmt.Sprintf("SPECIAL = %d PTS", types.SpecialFoodReward), l.fontSize, r.theme.Special},
	})
}

func (r *Renderer) drawAwaitingInput(c Canvas, l layout) {
	drawLines(c, l, r.theme.OverlayDim, []textLine{
		{"PRESS ANY ARROW KEY TO START", l.fontSize, r.theme.Highlight},
		{"↑ ↓ ← → OR W A S D", l.fontSize, r.theme.Hint},
	})
}

func (r *Renderer) drawGameOver(c Canvas, l layout, snap game.Snapshot) {
	lines := []textLine{
		{"GAME OVER", l.titleSize, r.theme.GameOver},
		{fmt.Sprintf("SCORE: %d", snap.Score), l.fontSize, r.theme.ScoreValue},
	}
	if snap.NewHighScore {
		lines = append(lines, textLine{"NEW HIGH SCORE!", l.fontSize, r.theme.Heading})
	}
	lines = append(lines, textLine{"PRESS SPACE TO PLAY AGAIN", l.fontSize, r.theme.Prompt})

	drawLines(c, l, r.theme.Overlay, lines)
}

// HUD is what the strip above the board shows
type HUD struct {
	Score     int
	HighScore int
	Stats     stats.Summary
}

// DrawHUD paints the score strip: SCORE on the left, HIGH on the right and the
// session history in between
func (r *Renderer) DrawHUD(c Canvas, hud HUD) {
	w, h := c.Size()
	size := max(h/2, 1)
	y := (h - size) / 2
	pad := max(size/2, 1)

	c.Clear(r.theme.HUDBackdrop)

	label := "SCORE: "
	c.Text(label, pad, y, size, r.theme.ScoreLabel)
	c.Text(fmt.Sprint(hud.Score), pad+c.MeasureText(label, size), y, size, r.theme.ScoreValue)

	high := fmt.Sprint(hud.HighScore)
	highX := w - pad - c.MeasureText(high, size)
	c.Text(high, highX, y, size, r.theme.HighValue)
	c.Text("HIGH: ", highX-c.MeasureText("HIGH: ", size), y, size, r.theme.ScoreLabel)

	if hud.Stats.GamesPlayed > 0 {
		history := fmt.Sprintf("GAMES %d AVG %.0f", hud.Stats.GamesPlayed, hud.Stats.AverageScore)
		small := max(size*3/4, 1)
		c.Text(history, (w-c.MeasureText(history, small))/2, (h-small)/2, small, r.theme.StatsLabel)
	}
}
