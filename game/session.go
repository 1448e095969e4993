package game

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/ring-tower/config"
	"github.com/lixenwraith/ring-tower/pointer"
	"github.com/lixenwraith/ring-tower/puzzle"
	"github.com/lixenwraith/ring-tower/tween"
)

// Session is one play-through: fresh stacks, its own animator and drag system
type Session struct {
	ID       uuid.UUID
	Stage    *puzzle.Stage
	Animator *tween.Animator
	Pointer  *pointer.System
	logger   *slog.Logger
}

// newSession stacks cfg.Rings rings on the start pole
func newSession(cfg config.Config, picker pointer.Picker, camera pointer.CameraControl, notifier puzzle.Notifier, logger *slog.Logger) (*Session, error) {
	id := uuid.New()
	logger = logger.With("session", id.String())

	// Animator writes into the stage's table, which exists only after NewStage
	var stage *puzzle.Stage
	animator := tween.New(tween.SinkFunc(func(ring puzzle.RingID, axis puzzle.Axis, value float64) {
		stage.Transforms().SetAxis(ring, axis, value)
	}))

	stage, err := puzzle.NewStage(puzzle.StageConfig{
		RingCount:        cfg.Rings,
		AnimationFrames:  cfg.AnimationFrames,
		StrictInvariants: cfg.StrictInvariants,
	}, animator, notifier, logger.With("component", "puzzle"))
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		ID:       id,
		Stage:    stage,
		Animator: animator,
		logger:   logger,
	}
	s.Pointer = pointer.NewSystem(stage, picker, camera, animator, logger.With("component", "pointer"))
	return s, nil
}

// ShortID is the session id prefix shown in the HUD
func (s *Session) ShortID() string {
	return s.ID.String()[:8]
}
