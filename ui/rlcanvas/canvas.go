// Package rlcanvas draws onto a raylib window and reads raylib key presses.
package rlcanvas

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas is a rectangular region of the raylib window. Must be used between
// rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	offsetX int32
	offsetY int32
	width   int32
	height  int32
}

func New(x, y, width, height int) *Canvas {
	return &Canvas{
		offsetX: int32(x),
		offsetY: int32(y),
		width:   int32(width),
		height:  int32(height),
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (c *Canvas) Size() (int, int) {
	return int(c.width), int(c.height)
}

func (c *Canvas) Clear(col color.RGBA) {
	rl.DrawRectangle(c.offsetX, c.offsetY, c.width, c.height, toColor(col))
}

func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	rl.DrawRectangle(c.offsetX+int32(x), c.offsetY+int32(y), int32(w), int32(h), toColor(col))
}

func (c *Canvas) Line(x1, y1, x2, y2 int, col color.RGBA) {
	rl.DrawLine(
		c.offsetX+int32(x1), c.offsetY+int32(y1),
		c.offsetX+int32(x2), c.offsetY+int32(y2),
		toColor(col))
}

func (c *Canvas) Text(s string, x, y, size int, col color.RGBA) {
	rl.DrawText(s, c.offsetX+int32(x), c.offsetY+int32(y), int32(size), toColor(col))
}

func (c *Canvas) MeasureText(s string, size int) int {
	return int(rl.MeasureText(s, int32(size)))
}
