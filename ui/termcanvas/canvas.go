// Package termcanvas draws onto a tcell screen and maps tcell key events.
package termcanvas

import (
	"image/color"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// CellWidth is the number of terminal columns one surface unit spans, so that
// board cells look square
const CellWidth = 2

// Canvas is a region of a tcell screen measured in surface units: one unit is
// CellWidth columns by one row.
type Canvas struct {
	screen tcell.Screen
	col    int
	row    int
	width  int
	height int

	// background already painted per unit, used for translucent fills and text
	backdrop []color.RGBA
}

// New returns a canvas of width x height units whose top left corner sits at
// terminal column col and row row
func New(screen tcell.Screen, col, row, width, height int) *Canvas {
	return &Canvas{
		screen:   screen,
		col:      col,
		row:      row,
		width:    width,
		height:   height,
		backdrop: make([]color.RGBA, width*height),
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend composites c over dst by c's alpha
func blend(dst, c color.RGBA) color.RGBA {
	a := uint32(c.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	return color.RGBA{R: mix(dst.R, c.R), G: mix(dst.G, c.G), B: mix(dst.B, c.B), A: 255}
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) paint(x, y int, bg color.RGBA) {
	c.backdrop[y*c.width+x] = bg
	style := tcell.StyleDefault.Background(toColor(bg))
	for i := 0; i < CellWidth; i++ {
		c.screen.SetContent(c.col+x*CellWidth+i, c.row+y, ' ', nil, style)
	}
}

func (c *Canvas) Clear(col color.RGBA) {
	col.A = 255
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.paint(x, y, col)
		}
	}
}

func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if col.A == 0 {
		return
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if !c.inside(i, j) {
				continue
			}
			c.paint(i, j, blend(c.backdrop[j*c.width+i], col))
		}
	}
}

// Line is not drawn: a terminal cell cannot hold a hairline without hiding its content
func (c *Canvas) Line(x1, y1, x2, y2 int, col color.RGBA) {}

func (c *Canvas) Text(s string, x, y, size int, col color.RGBA) {
	if y < 0 || y >= c.height {
		return
	}
	column := c.col + x*CellWidth
	right := c.col + c.width*CellWidth
	for _, r := range s {
		if column >= right {
			break
		}
		unit := (column - c.col) / CellWidth
		if column >= c.col {
			style := tcell.StyleDefault.
				Foreground(toColor(col)).
				Background(toColor(c.backdrop[y*c.width+unit]))
			c.screen.SetContent(column, c.row+y, r, nil, style)
		}
		column++
	}
}

// MeasureText returns the width of s in units, rounded up
func (c *Canvas) MeasureText(s string, size int) int {
	return (utf8.RuneCountInString(s) + CellWidth - 1) / CellWidth
}
