// Package game wires the puzzle, pointer, camera, renderer and audio into a terminal game loop
package game

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ring-tower/config"
	"github.com/lixenwraith/ring-tower/puzzle"
	"github.com/lixenwraith/ring-tower/render"
	"github.com/lixenwraith/ring-tower/scene"
)

// Sound plays the puzzle cues, implementations must not block the loop
type Sound interface {
	PlaySnap()
	PlayReject()
	PlaySolved()
	SetMuted(muted bool)
}

type silence struct{}

func (silence) PlaySnap()     {}
func (silence) PlayReject()   {}
func (silence) PlaySolved()   {}
func (silence) SetMuted(bool) {}

// Game owns the screen and all session state
// Everything except the event pump in Run executes on the loop goroutine
type Game struct {
	cfg    config.Config
	screen tcell.Screen
	sound  Sound
	logger *slog.Logger

	camera   *scene.Camera
	scene    *scene.Scene
	picker   *scene.Picker
	renderer *render.Renderer
	session  *Session

	paused  bool
	muted   bool
	debug   bool
	buttons tcell.ButtonMask
	message string

	crashHandler func(any)
}

// New creates a game over an initialized screen, sound and logger may be nil
func New(cfg config.Config, screen tcell.Screen, sound Sound, logger *slog.Logger) (*Game, error) {
	if sound == nil {
		sound = silence{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Game{
		cfg:    cfg,
		screen: screen,
		sound:  sound,
		logger: logger,
		debug:  cfg.Debug,
		camera: scene.NewCamera(cfg.Camera.Distance, cfg.Camera.Yaw, cfg.Camera.Pitch, cfg.Camera.Sensitivity),
		scene:  scene.New(nil),
	}
	g.picker = scene.NewPicker(g.scene, g.camera)
	g.renderer = render.NewRenderer(screen, g.scene, g.camera)
	g.picker.SetViewport(g.renderer.Viewport())

	if err := g.startSession(); err != nil {
		return nil, err
	}
	return g, nil
}

// SetCrashHandler installs the handler invoked when the loop panics
// Without a handler the panic propagates
func (g *Game) SetCrashHandler(fn func(any)) {
	g.crashHandler = fn
}

// Session returns the active session
func (g *Game) Session() *Session {
	return g.session
}

// Camera returns the orbit camera
func (g *Game) Camera() *scene.Camera {
	return g.camera
}

// Renderer returns the screen renderer
func (g *Game) Renderer() *render.Renderer {
	return g.renderer
}

// Paused reports whether the game is paused
func (g *Game) Paused() bool {
	return g.paused
}

// startSession replaces the active session with fresh stacks
func (g *Game) startSession() error {
	if g.session != nil {
		g.session.Pointer.Cancel()
		g.session.Animator.CancelAll()
	}

	session, err := newSession(g.cfg, g.picker, g.camera, puzzle.NotifierFunc(g.announceSolved), g.logger)
	if err != nil {
		return err
	}
	session.Pointer.SetReleaseHandler(g.onRelease)
	session.Animator.SetPaused(g.paused)

	g.session = session
	g.scene.SetWorld(session.Stage)
	g.buttons = 0
	g.message = ""
	g.logger.Info("session started", "session", session.ID.String(), "rings", g.cfg.Rings)
	return nil
}

// Reset starts a new session, a failure keeps the current one
func (g *Game) Reset() {
	if err := g.startSession(); err != nil {
		g.logger.Error("reset failed", "error", err)
		g.message = "reset failed"
	}
}

// TogglePause freezes transitions and pointer input, an active drag is cancelled
func (g *Game) TogglePause() {
	g.paused = !g.paused
	if g.paused {
		g.session.Pointer.Cancel()
		g.camera.EndDrag()
	}
	g.session.Animator.SetPaused(g.paused)
	g.logger.Debug("pause", "paused", g.paused)
}

// ToggleMute silences or restores the sound cues
func (g *Game) ToggleMute() {
	g.muted = !g.muted
	g.sound.SetMuted(g.muted)
	g.logger.Debug("mute", "muted", g.muted)
}

// Cancel aborts any drag or orbit in progress, used on focus loss
func (g *Game) Cancel() {
	g.session.Pointer.Cancel()
	g.camera.EndDrag()
	g.buttons = 0
}

func (g *Game) onRelease(out puzzle.Outcome) {
	switch {
	case out.Accepted:
		g.sound.PlaySnap()
		g.message = ""
	case out.Reason == puzzle.ReasonIllegal:
		g.sound.PlayReject()
		g.message = "a ring cannot rest on a smaller one"
	}
	g.logger.Debug("drop", "ring", out.Ring, "reason", out.Reason.String(), "moves", g.session.Stage.Moves())
}

// announceSolved runs inside the resolver, before the move counter advances
func (g *Game) announceSolved() {
	g.sound.PlaySolved()
	g.logger.Info("puzzle solved", "session", g.session.ID.String())
}

// Tick advances transitions by one frame and draws
func (g *Game) Tick() {
	if !g.paused {
		g.session.Animator.Step()
	}
	g.renderer.Draw(g.frame())
}

func (g *Game) frame() render.Frame {
	stage := g.session.Stage
	ring, dragging := g.session.Pointer.Dragging()
	f := render.Frame{
		Session:  g.session.ShortID(),
		Rings:    stage.Registry().RingCount(),
		Moves:    stage.Moves(),
		Minimal:  stage.MinimalMoves(),
		Paused:   g.paused,
		Muted:    g.muted,
		Solved:   stage.IsSolved(),
		Debug:    g.debug,
		Dragging: dragging,
		Grabbed:  ring,
		Message:  g.message,
	}
	if f.Solved && f.Moves == f.Minimal {
		f.Message = "optimal"
	}
	return f
}

// recoverCrash hands loop panics to the crash handler
func (g *Game) recoverCrash() {
	if r := recover(); r != nil {
		if g.crashHandler == nil {
			panic(r)
		}
		g.crashHandler(fmt.Errorf("game loop: %v", r))
	}
}
