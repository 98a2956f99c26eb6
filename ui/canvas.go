package ui

import (
	"image/color"
)

// Canvas is a 2D drawing surface. Coordinates are in surface units with the origin at
// the top left; a raster host uses pixels, a terminal host uses board cells.
type Canvas interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	Line(x1, y1, x2, y2 int, c color.RGBA)
	// Text draws s with its top left corner at (x, y)
	Text(s string, x, y, size int, c color.RGBA)
	MeasureText(s string, size int) int
}
