package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/puzzle"
	"github.com/lixenwraith/ring-tower/scene"
	"github.com/lixenwraith/ring-tower/vmath"
)

type fixture struct {
	screen   tcell.SimulationScreen
	stage    *puzzle.Stage
	camera   *scene.Camera
	renderer *Renderer
}

func newFixture(t *testing.T, w, h int) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	stage, err := puzzle.NewStage(puzzle.StageConfig{RingCount: 3, StrictInvariants: true}, nil, nil, nil)
	require.NoError(t, err)
	camera := scene.NewCamera(parameter.CameraDistance, parameter.CameraYaw, parameter.CameraPitch, parameter.CameraSensitivity)

	return &fixture{
		screen:   screen,
		stage:    stage,
		camera:   camera,
		renderer: NewRenderer(screen, scene.New(stage), camera),
	}
}

func (f *fixture) frame() Frame {
	return Frame{
		Session: "abcd1234",
		Rings:   3,
		Moves:   f.stage.Moves(),
		Minimal: f.stage.MinimalMoves(),
	}
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func bgAt(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestLayout(t *testing.T) {
	f := newFixture(t, 80, 30)
	vp := f.renderer.Viewport()
	assert.Equal(t, scene.Viewport{W: 80, H: 30 - parameter.TopMargin - parameter.HudRows}, vp)

	x, y := f.renderer.ToViewport(10, parameter.TopMargin)
	assert.Equal(t, 10, x)
	assert.Equal(t, 0, y)

	f.screen.SetSize(40, 2)
	f.renderer.Resize()
	assert.Zero(t, f.renderer.Viewport().H)
}

func TestDraw_TitleAndHUD(t *testing.T) {
	f := newFixture(t, 100, 30)
	f.renderer.Draw(f.frame())

	assert.Contains(t, rowText(f.screen, 0), "RING TOWER  3 rings")
	status := rowText(f.screen, 28)
	assert.Contains(t, status, "Moves 0")
	assert.Contains(t, status, "Minimal 7")
	assert.Contains(t, status, "Session abcd1234")
	assert.Contains(t, rowText(f.screen, 29), parameter.HelpText)
}

func TestDraw_Overlays(t *testing.T) {
	f := newFixture(t, 100, 30)

	frame := f.frame()
	frame.Paused = true
	frame.Solved = true
	f.renderer.Draw(frame)
	text := screenText(f.screen)
	assert.Contains(t, text, "PAUSED")
	assert.NotContains(t, text, "SOLVED", "pause overlay takes precedence")
	assert.Contains(t, rowText(f.screen, 28), "[PAUSED]")

	frame.Paused = false
	frame.Moves = 7
	f.renderer.Draw(frame)
	text = screenText(f.screen)
	assert.Contains(t, text, "SOLVED")
	assert.Contains(t, text, "7 moves, minimum 7")
}

func TestDraw_OverlayOnTinyScreen(t *testing.T) {
	f := newFixture(t, 10, 6)
	frame := f.frame()
	frame.Solved = true
	assert.NotPanics(t, func() { f.renderer.Draw(frame) })
	assert.Contains(t, screenText(f.screen), "SOLVED")
}

func TestDraw_SceneShading(t *testing.T) {
	f := newFixture(t, 200, 100)
	f.renderer.Draw(f.frame())
	vp := f.renderer.Viewport()

	// Top viewport row is sky
	assert.Equal(t, RgbSkyTop.Color(), bgAt(f.screen, 100, parameter.TopMargin))

	// Cell over the top ring carries the shaded ring color
	top, _ := f.stage.Registry().Top(parameter.StartPole)
	fx, fy, ok := f.camera.Project(f.stage.Transforms().Get(top), vp)
	require.True(t, ok)
	vx, vy := int(math.Floor(fx)), int(math.Floor(fy))

	ray := f.camera.Ray(vx, vy, vp)
	_, body, hit := f.renderer.scene.Cast(ray, nil)
	require.True(t, hit)
	require.Equal(t, puzzle.BodyRing, body.Kind)
	require.Equal(t, top, body.Ring)

	want := f.renderer.shade(ray, vy, vp.H, f.frame())
	assert.Equal(t, want.Color(), bgAt(f.screen, vx, vy+parameter.TopMargin))
	assert.NotEqual(t, RgbSkyTop.Color(), want.Color())

	// Grabbed ring is drawn brighter
	frame := f.frame()
	frame.Dragging = true
	frame.Grabbed = top
	bright := f.renderer.shade(ray, vy, vp.H, frame)
	assert.Greater(t, bright.R+bright.G+bright.B, want.R+want.G+want.B)
}

func TestDraw_DebugAxes(t *testing.T) {
	f := newFixture(t, 200, 100)
	frame := f.frame()
	frame.Debug = true
	f.renderer.Draw(frame)

	vp := f.renderer.Viewport()
	glyphAt := func(p vmath.Vec3F) rune {
		fx, fy, ok := f.camera.Project(p, vp)
		require.True(t, ok)
		ch, _, _, _ := f.screen.GetContent(int(math.Floor(fx)), int(math.Floor(fy))+parameter.TopMargin)
		return ch
	}

	assert.Equal(t, '+', glyphAt(vmath.Vec3F{}))
	assert.Equal(t, 'x', glyphAt(vmath.Vec3F{X: parameter.DebugAxisLength}))
	assert.Equal(t, 'y', glyphAt(vmath.Vec3F{Y: parameter.DebugAxisLength}))
	assert.Equal(t, 'z', glyphAt(vmath.Vec3F{Z: parameter.DebugAxisLength}))
}

func TestRingColor(t *testing.T) {
	assert.Equal(t, RgbRings[0], RingColor(1))
	assert.Equal(t, RgbRings[0], RingColor(0))
	assert.Equal(t, RgbRings[len(RgbRings)-1], RingColor(parameter.RingCountMax))
	assert.NotEqual(t, RingColor(1), RingColor(2))
}
