package ui

import (
	"image/color"
	"sort"
)

// Theme is the palette and wording of one visual style
type Theme struct {
	Name  string
	Title string

	Background color.RGBA
	Grid       color.RGBA
	Head       color.RGBA
	Body       color.RGBA
	Food       color.RGBA
	Special    color.RGBA

	// Overlay veils the board behind the menu and game over texts
	Overlay     color.RGBA
	OverlayDim  color.RGBA
	Heading     color.RGBA
	Hint        color.RGBA
	Prompt      color.RGBA
	Highlight   color.RGBA
	GameOver    color.RGBA
	ScoreLabel  color.RGBA
	ScoreValue  color.RGBA
	HighValue   color.RGBA
	StatsLabel  color.RGBA
	HUDBackdrop color.RGBA
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func rgba(r, g, b uint8, alpha float64) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

var Retro = Theme{
	Name:  "retro",
	Title: "RETRO SNAKE",

	Background: rgb(0x00, 0x00, 0x00),
	Grid:       rgba(0x39, 0xFF, 0x14, 0.1),
	Head:       rgb(0x39, 0xFF, 0x14),
	Body:       rgb(0x00, 0xFF, 0xFF),
	Food:       rgb(0xFF, 0x00, 0xFF),
	Special:    rgb(0xFF, 0xFF, 0x00),

	Overlay:     rgba(0x0A, 0x0A, 0x14, 0.9),
	OverlayDim:  rgba(0x0A, 0x0A, 0x14, 0.6),
	Heading:     rgb(0x2E, 0xCC, 0x10),
	Hint:        rgb(0x1E, 0x90, 0xFF),
	Prompt:      rgb(0x00, 0xFF, 0xFF),
	Highlight:   rgb(0xFF, 0xFF, 0x00),
	GameOver:    rgb(0xFF, 0x00, 0xFF),
	ScoreLabel:  rgb(0x2E, 0xCC, 0x10),
	ScoreValue:  rgb(0xFF, 0xFF, 0x00),
	HighValue:   rgb(0xFF, 0x00, 0xFF),
	StatsLabel:  rgb(0x1E, 0x90, 0xFF),
	HUDBackdrop: rgb(0x0A, 0x0A, 0x14),
}

// Glass grid lines are rgba(129,140,248,.3) painted at 20% opacity
var Glass = Theme{
	Name:  "glass",
	Title: "Snake Game",

	Background: rgb(0x0F, 0x0F, 0x0F),
	Grid:       rgba(0x81, 0x8C, 0xF8, 0.06),
	Head:       rgb(0x81, 0x8C, 0xF8),
	Body:       rgb(0xA7, 0x8B, 0xFA),
	Food:       rgb(0xEC, 0x48, 0x99),
	Special:    rgb(0xEA, 0xB3, 0x08),

	Overlay:     rgba(0x00, 0x00, 0x00, 0.8),
	OverlayDim:  rgba(0x00, 0x00, 0x00, 0.6),
	Heading:     rgb(0xFF, 0xFF, 0xFF),
	Hint:        rgb(0xA5, 0xB4, 0xFC),
	Prompt:      rgb(0xA5, 0xB4, 0xFC),
	Highlight:   rgb(0xFF, 0xFF, 0xFF),
	GameOver:    rgb(0x9C, 0xA3, 0xAF),
	ScoreLabel:  rgb(0xA5, 0xB4, 0xFC),
	ScoreValue:  rgb(0xFF, 0xFF, 0xFF),
	HighValue:   rgb(0xFF, 0xFF, 0xFF),
	StatsLabel:  rgb(0xA5, 0xB4, 0xFC),
	HUDBackdrop: rgb(0x13, 0x13, 0x16),
}

var themes = map[string]Theme{
	Retro.Name: Retro,
	Glass.Name: Glass,
}

// ThemeByName looks up a built-in theme
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeNames lists the built-in themes in alphabetical order
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
