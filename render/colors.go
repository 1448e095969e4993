package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is a linear color in 0..255 per channel, converted to tcell at the cell write
type RGB struct {
	R, G, B float64
}

// Scale multiplies every channel
func (c RGB) Scale(k float64) RGB {
	return RGB{c.R * k, c.G * k, c.B * k}
}

// Lerp mixes a toward b by t
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(clamp(c.R)), int32(clamp(c.G)), int32(clamp(c.B)))
}

// clamp converts float to a byte channel
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scene palette
var (
	RgbSkyTop     = RGB{18, 20, 34}
	RgbSkyHorizon = RGB{52, 58, 88}
	RgbGround     = RGB{96, 84, 70}
	RgbPole       = RGB{190, 170, 140}
	RgbHighlight  = RGB{255, 255, 255}
)

// RgbRings colors rings by size rank, smallest first
var RgbRings = []RGB{
	{230, 70, 70},   // Red
	{240, 150, 50},  // Orange
	{235, 215, 60},  // Yellow
	{90, 200, 90},   // Green
	{60, 190, 200},  // Cyan
	{80, 120, 230},  // Blue
	{150, 90, 220},  // Purple
	{220, 100, 180}, // Pink
}

// RingColor returns the base color of a ring of the given size
func RingColor(size int) RGB {
	if size < 1 {
		size = 1
	}
	return RgbRings[(size-1)%len(RgbRings)]
}

// HUD and overlay colors
var (
	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim    = tcell.NewRGBColor(120, 120, 135) // Gray help text
	RgbStatusBg     = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbTitle        = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbPaused       = tcell.NewRGBColor(255, 200, 50)  // Amber
	RgbSolved       = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbOverlayBg    = tcell.NewRGBColor(20, 20, 30)
	RgbOverlayFrame = tcell.NewRGBColor(180, 180, 180)
	RgbAxisX        = tcell.NewRGBColor(255, 80, 80)
	RgbAxisY        = tcell.NewRGBColor(80, 255, 80)
	RgbAxisZ        = tcell.NewRGBColor(100, 150, 255)
)
