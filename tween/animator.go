// Package tween runs per-ring, per-axis position transitions stepped once per frame
package tween

import (
	"github.com/lixenwraith/ring-tower/puzzle"
	"github.com/lixenwraith/ring-tower/vmath"
)

// Sink receives interpolated axis values
type Sink interface {
	SetAxis(ring puzzle.RingID, axis puzzle.Axis, value float64)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ring puzzle.RingID, axis puzzle.Axis, value float64)

func (f SinkFunc) SetAxis(ring puzzle.RingID, axis puzzle.Axis, value float64) { f(ring, axis, value) }

// EaseFunc maps linear progress [0,1] to eased progress
type EaseFunc func(t float64) float64

func linear(t float64) float64 { return t }

type task struct {
	ring   puzzle.RingID
	axis   puzzle.Axis
	from   float64
	to     float64
	frames int
	frame  int
	ease   EaseFunc
}

// Animator implements puzzle.Animator
// At most one task per (ring, axis) exists, a new Animate on the same pair replaces the old task
type Animator struct {
	sink   Sink
	tasks  []*task
	paused bool
	ease   [3]EaseFunc
}

// New creates an animator writing into sink
// Horizontal slides ease out, vertical falls ease in
func New(sink Sink) *Animator {
	return &Animator{
		sink: sink,
		ease: [3]EaseFunc{
			puzzle.AxisX: vmath.EaseOutCubic,
			puzzle.AxisY: vmath.EaseInQuad,
			puzzle.AxisZ: linear,
		},
	}
}

// Animate schedules a transition, frames <= 0 writes the destination immediately
func (a *Animator) Animate(ring puzzle.RingID, axis puzzle.Axis, from, to float64, frames int) {
	a.remove(func(t *task) bool { return t.ring == ring && t.axis == axis })
	if frames <= 0 {
		a.sink.SetAxis(ring, axis, to)
		return
	}

	ease := linear
	if int(axis) >= 0 && int(axis) < len(a.ease) {
		ease = a.ease[axis]
	}
	a.tasks = append(a.tasks, &task{
		ring:   ring,
		axis:   axis,
		from:   from,
		to:     to,
		frames: frames,
		ease:   ease,
	})
}

// Cancel drops every task of the ring, the ring keeps its current position
func (a *Animator) Cancel(ring puzzle.RingID) {
	a.remove(func(t *task) bool { return t.ring == ring })
}

// CancelAll drops every task
func (a *Animator) CancelAll() {
	a.tasks = a.tasks[:0]
}

// Step advances every task by one frame, finished tasks write the exact destination
func (a *Animator) Step() {
	if a.paused || len(a.tasks) == 0 {
		return
	}

	live := a.tasks[:0]
	for _, t := range a.tasks {
		t.frame++
		if t.frame >= t.frames {
			a.sink.SetAxis(t.ring, t.axis, t.to)
			continue
		}
		p := t.ease(float64(t.frame) / float64(t.frames))
		a.sink.SetAxis(t.ring, t.axis, vmath.Lerp(t.from, t.to, p))
		live = append(live, t)
	}
	clear(a.tasks[len(live):])
	a.tasks = live
}

// SetPaused freezes or resumes stepping
func (a *Animator) SetPaused(paused bool) {
	a.paused = paused
}

// Paused reports whether stepping is frozen
func (a *Animator) Paused() bool {
	return a.paused
}

// Active returns the number of running tasks
func (a *Animator) Active() int {
	return len(a.tasks)
}

// Animating reports whether the ring has a running task on any axis
func (a *Animator) Animating(ring puzzle.RingID) bool {
	for _, t := range a.tasks {
		if t.ring == ring {
			return true
		}
	}
	return false
}

func (a *Animator) remove(match func(*task) bool) {
	live := a.tasks[:0]
	for _, t := range a.tasks {
		if !match(t) {
			live = append(live, t)
		}
	}
	clear(a.tasks[len(live):])
	a.tasks = live
}
