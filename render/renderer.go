// Package render draws the puzzle scene into a tcell screen by casting one view ray per cell
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/puzzle"
	"github.com/lixenwraith/ring-tower/scene"
	"github.com/lixenwraith/ring-tower/vmath"
)

// Frame carries the per-frame state shown outside the 3D view
type Frame struct {
	Session  string
	Rings    int
	Moves    int
	Minimal  int
	Paused   bool
	Muted    bool
	Solved   bool
	Debug    bool
	Dragging bool
	Grabbed  puzzle.RingID
	Message  string
}

// Lighting, light comes from above the default camera side
var (
	lightDir = vmath.V3FNormalize(vmath.Vec3F{X: -0.4, Y: 0.85, Z: -0.5})
)

const (
	ambient       = 0.28
	diffuse       = 0.72
	grabBrighten  = 0.25
	groundFogDist = 40.0
)

// Renderer owns the screen layout: title row, scene viewport, HUD rows
type Renderer struct {
	screen tcell.Screen
	scene  *scene.Scene
	camera *scene.Camera
	width  int
	height int
}

// NewRenderer creates a renderer over screen
func NewRenderer(screen tcell.Screen, sc *scene.Scene, camera *scene.Camera) *Renderer {
	r := &Renderer{screen: screen, scene: sc, camera: camera}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// Viewport returns the scene area below the title row and above the HUD
func (r *Renderer) Viewport() scene.Viewport {
	return scene.Viewport{
		W: r.width,
		H: max(r.height-parameter.TopMargin-parameter.HudRows, 0),
	}
}

// ToViewport converts screen cells to viewport cells
func (r *Renderer) ToViewport(sx, sy int) (int, int) {
	return sx, sy - parameter.TopMargin
}

// Draw renders one complete frame and shows it
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()

	r.drawTitle(f)
	r.drawScene(f)
	if f.Debug {
		r.drawAxes()
	}
	r.drawHUD(f)

	switch {
	case f.Paused:
		r.drawOverlay("PAUSED", "p or space to resume", RgbPaused)
	case f.Solved:
		r.drawOverlay("SOLVED", fmt.Sprintf("%d moves, minimum %d", f.Moves, f.Minimal), RgbSolved)
	}

	r.screen.Show()
}

func (r *Renderer) drawTitle(f Frame) {
	style := tcell.StyleDefault.Foreground(RgbTitle).Background(RgbStatusBg).Bold(true)
	r.fillRow(0, style)
	r.writeStr(1, 0, fmt.Sprintf("RING TOWER  %d rings", f.Rings), style)
}

func (r *Renderer) drawScene(f Frame) {
	vp := r.Viewport()
	for vy := 0; vy < vp.H; vy++ {
		sy := vy + parameter.TopMargin
		for sx := 0; sx < vp.W; sx++ {
			ray := r.camera.Ray(sx, vy, vp)
			c := r.shade(ray, vy, vp.H, f)
			r.screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault.Background(c.Color()))
		}
	}
}

// shade returns the cell color for a view ray, sky gradient on miss
func (r *Renderer) shade(ray vmath.Ray, vy, h int, f Frame) RGB {
	hit, body, ok := r.scene.Cast(ray, nil)
	if !ok {
		t := 1.0
		if h > 1 {
			t = float64(vy) / float64(h-1)
		}
		return Lerp(RgbSkyTop, RgbSkyHorizon, t)
	}

	base, boost := r.bodyColor(body, f)
	lambert := math.Max(0, vmath.V3FDot(hit.Normal, lightDir))
	c := base.Scale(ambient + diffuse*lambert)
	if boost > 0 {
		c = Lerp(c, RgbHighlight, boost)
	}
	if body.Kind == puzzle.BodyGround {
		c = Lerp(c, RgbSkyHorizon, math.Min(hit.T/groundFogDist, 1))
	}
	return c
}

func (r *Renderer) bodyColor(body puzzle.BodyRef, f Frame) (RGB, float64) {
	switch body.Kind {
	case puzzle.BodyRing:
		ring, _ := r.scene.World().Registry().Ring(body.Ring)
		if f.Dragging && body.Ring == f.Grabbed {
			return RingColor(ring.Size), grabBrighten
		}
		return RingColor(ring.Size), 0
	case puzzle.BodyPole:
		return RgbPole, 0
	default:
		return RgbGround, 0
	}
}

// drawAxes marks the world axes from the origin with their letters
func (r *Renderer) drawAxes() {
	vp := r.Viewport()
	axes := []struct {
		dir   vmath.Vec3F
		glyph rune
		color tcell.Color
	}{
		{vmath.Vec3F{X: 1}, 'x', RgbAxisX},
		{vmath.Vec3F{Y: 1}, 'y', RgbAxisY},
		{vmath.Vec3F{Z: 1}, 'z', RgbAxisZ},
	}

	for _, axis := range axes {
		for i := 1; i <= parameter.DebugAxisSteps; i++ {
			t := parameter.DebugAxisLength * float64(i) / parameter.DebugAxisSteps
			glyph := '·'
			if i == parameter.DebugAxisSteps {
				glyph = axis.glyph
			}
			r.plot(vmath.V3FScale(axis.dir, t), vp, glyph, axis.color)
		}
	}
	r.plot(vmath.Vec3F{}, vp, '+', RgbStatusBar)
}

func (r *Renderer) plot(p vmath.Vec3F, vp scene.Viewport, glyph rune, fg tcell.Color) {
	fx, fy, ok := r.camera.Project(p, vp)
	if !ok {
		return
	}
	vx, vy := int(math.Floor(fx)), int(math.Floor(fy))
	if !vp.Contains(vx, vy) {
		return
	}
	sy := vy + parameter.TopMargin
	_, _, style, _ := r.screen.GetContent(vx, sy)
	r.screen.SetContent(vx, sy, glyph, nil, style.Foreground(fg).Bold(true))
}

func (r *Renderer) drawHUD(f Frame) {
	if r.height < parameter.HudRows {
		return
	}
	statusY := r.height - 2
	controlY := r.height - 1
	status := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	dim := tcell.StyleDefault.Foreground(RgbStatusDim).Background(RgbStatusBg)

	r.fillRow(statusY, status)
	r.fillRow(controlY, dim)

	line := fmt.Sprintf("Moves %d  Minimal %d  Session %s", f.Moves, f.Minimal, f.Session)
	if f.Message != "" {
		line += "  " + f.Message
	}
	r.writeStr(1, statusY, line, status)
	if f.Paused {
		r.writeStr(r.width-9, statusY, "[PAUSED]", status.Foreground(RgbPaused))
	}
	if f.Muted {
		r.writeStr(r.width-17, statusY, "[MUTED]", dim)
	}
	r.writeStr(1, controlY, parameter.HelpText, dim)
}

// drawOverlay draws a centered framed box with a title and one detail line
func (r *Renderer) drawOverlay(title, detail string, accent tcell.Color) {
	w, h := parameter.OverlayWidth, parameter.OverlayHeight
	if r.width < w || r.height < h {
		r.writeStr(0, r.height/2, title, tcell.StyleDefault.Foreground(accent).Bold(true))
		return
	}
	x0 := (r.width - w) / 2
	y0 := (r.height - h) / 2
	bg := tcell.StyleDefault.Background(RgbOverlayBg)
	frame := bg.Foreground(RgbOverlayFrame)

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+h-1) && (x == x0 || x == x0+w-1):
				ch = '+'
			case y == y0 || y == y0+h-1:
				ch = '-'
			case x == x0 || x == x0+w-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, nil, frame)
		}
	}

	r.writeCentered(y0+2, title, bg.Foreground(accent).Bold(true))
	r.writeCentered(y0+4, detail, bg.Foreground(RgbStatusBar))
}

func (r *Renderer) fillRow(y int, style tcell.Style) {
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) writeCentered(y int, s string, style tcell.Style) {
	r.writeStr((r.width-len([]rune(s)))/2, y, s, style)
}

func (r *Renderer) writeStr(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
