package pointer

import (
	"log/slog"

	"github.com/lixenwraith/ring-tower/fsm"
	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/puzzle"
	"github.com/lixenwraith/ring-tower/vmath"
)

// Picker resolves screen coordinates into world points
type Picker interface {
	// PickFiltered casts against bodies accepted by pred and returns the nearest hit
	PickFiltered(sx, sy int, pred func(puzzle.BodyRef) bool) (vmath.Vec3F, puzzle.BodyRef, bool)
	// PickFree returns the point on the drag plane under the pointer
	PickFree(sx, sy int) (vmath.Vec3F, bool)
}

// CameraControl suspends and resumes pointer-driven camera manipulation, both idempotent
type CameraControl interface {
	Suspend()
	Resume()
}

// Board is the puzzle state the drag operates on
type Board interface {
	Registry() *puzzle.Registry
	Transforms() *puzzle.Transforms
	ResolveDrop(ring puzzle.RingID) puzzle.Outcome
	SnapBack(ring puzzle.RingID)
}

// States
const (
	StateIdle fsm.StateID = iota + 1
	StateDragging
)

// Events
const (
	EventPointerDown fsm.EventType = iota + 1
	EventPointerMove
	EventPointerUp
	EventCancel
)

// System is the drag interaction state machine
// All methods must be called from the game loop goroutine
type System struct {
	board     Board
	picker    Picker
	camera    CameraControl
	animator  puzzle.Animator
	onRelease func(puzzle.Outcome)
	logger    *slog.Logger

	machine *fsm.Machine[*System]

	// Drag session, valid only in StateDragging
	ring   puzzle.RingID
	anchor vmath.Vec3F

	// Grab candidate computed by the down guard
	pendingRing   puzzle.RingID
	pendingAnchor vmath.Vec3F
}

// NewSystem creates a drag system in Idle
// animator may be nil, in-flight transitions of a grabbed ring are then left alone
func NewSystem(board Board, picker Picker, camera CameraControl, animator puzzle.Animator, logger *slog.Logger) *System {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &System{
		board:    board,
		picker:   picker,
		camera:   camera,
		animator: animator,
		logger:   logger,
		machine:  fsm.NewMachine[*System](),
	}
	s.build()
	if err := s.machine.Init(s, StateIdle); err != nil {
		panic(err)
	}
	return s
}

// SetReleaseHandler registers a callback receiving every drop outcome
func (s *System) SetReleaseHandler(fn func(puzzle.Outcome)) {
	s.onRelease = fn
}

func (s *System) build() {
	m := s.machine
	m.AddState(StateIdle, "Idle")
	dragging := m.AddState(StateDragging, "Dragging")

	dragging.OnEnter = append(dragging.OnEnter, (*System).enterDragging)
	dragging.OnExit = append(dragging.OnExit, (*System).resumeCamera)

	m.AddTransition(StateIdle, fsm.Transition[*System]{
		Event:    EventPointerDown,
		TargetID: StateDragging,
		Guard:    (*System).canGrab,
	})
	m.AddTransition(StateIdle, fsm.Transition[*System]{
		Event:  EventPointerUp,
		Action: (*System).resumeCamera,
	})
	m.AddTransition(StateIdle, fsm.Transition[*System]{
		Event:  EventCancel,
		Action: (*System).resumeCamera,
	})
	m.AddTransition(StateDragging, fsm.Transition[*System]{
		Event:  EventPointerMove,
		Action: (*System).drag,
	})
	m.AddTransition(StateDragging, fsm.Transition[*System]{
		Event:    EventPointerUp,
		TargetID: StateIdle,
		Action:   (*System).release,
	})
	m.AddTransition(StateDragging, fsm.Transition[*System]{
		Event:    EventCancel,
		TargetID: StateIdle,
		Action:   (*System).abort,
	})
}

// OnPointerDown starts a drag when the primary button presses the top ring of a pole
func (s *System) OnPointerDown(ev Event) {
	s.machine.HandleEvent(s, EventPointerDown, ev)
}

// OnPointerMove drags the grabbed ring along the drag plane
func (s *System) OnPointerMove(ev Event) {
	s.machine.HandleEvent(s, EventPointerMove, ev)
}

// OnPointerUp resumes the camera and resolves the drop of a grabbed ring
func (s *System) OnPointerUp(ev Event) {
	s.machine.HandleEvent(s, EventPointerUp, ev)
}

// Cancel aborts a drag, the ring returns to its slot unchanged
func (s *System) Cancel() {
	s.machine.HandleEvent(s, EventCancel, nil)
}

// Dragging returns the grabbed ring while a drag session is active
func (s *System) Dragging() (puzzle.RingID, bool) {
	if s.machine.State() != StateDragging {
		return 0, false
	}
	return s.ring, true
}

// StateName returns the active state name
func (s *System) StateName() string {
	return s.machine.StateName()
}

// canGrab filters the press: primary button, ring hit, top of stack, drag plane reachable
func (s *System) canGrab(payload any) bool {
	ev, ok := payload.(Event)
	if !ok || ev.Button != ButtonPrimary {
		return false
	}

	_, body, hit := s.picker.PickFiltered(ev.X, ev.Y, puzzle.IsRing)
	if !hit || body.Kind != puzzle.BodyRing {
		return false
	}
	if !s.board.Registry().IsTop(body.Ring) {
		return false
	}

	// Anchor on the drag plane, not on the ring surface
	anchor, ok := s.picker.PickFree(ev.X, ev.Y)
	if !ok {
		return false
	}

	s.pendingRing = body.Ring
	s.pendingAnchor = anchor
	return true
}

func (s *System) enterDragging(_ any) {
	s.ring = s.pendingRing
	s.anchor = s.pendingAnchor
	if s.animator != nil {
		s.animator.Cancel(s.ring)
	}
	s.camera.Suspend()
	s.logger.Debug("grab", "ring", s.ring)
}

func (s *System) resumeCamera(_ any) {
	s.camera.Resume()
}

// drag applies the incremental delta since the last anchor, then clamps
// Height is held, depth is pinned to the drag plane, x is bounded to DragLimitX
func (s *System) drag(payload any) {
	ev, ok := payload.(Event)
	if !ok {
		return
	}
	current, ok := s.picker.PickFree(ev.X, ev.Y)
	if !ok {
		return
	}

	transforms := s.board.Transforms()
	pos := transforms.Get(s.ring)
	oldY := pos.Y

	pos = vmath.V3FAdd(pos, vmath.V3FSub(current, s.anchor))
	pos.Y = oldY
	pos.Z = parameter.DragPlaneZ
	pos.X = vmath.Clamp(pos.X, -parameter.DragLimitX, parameter.DragLimitX)

	transforms.Set(s.ring, pos)
	s.anchor = current
}

func (s *System) release(_ any) {
	ring := s.ring
	s.clear()

	out := s.board.ResolveDrop(ring)
	s.logger.Debug("release", "ring", ring, "accepted", out.Accepted, "reason", out.Reason)
	if s.onRelease != nil {
		s.onRelease(out)
	}
}

func (s *System) abort(_ any) {
	ring := s.ring
	s.clear()
	s.board.SnapBack(ring)
	s.logger.Debug("drag cancelled", "ring", ring)
}

func (s *System) clear() {
	s.ring = 0
	s.anchor = vmath.Vec3F{}
	s.pendingRing = 0
	s.pendingAnchor = vmath.Vec3F{}
}
