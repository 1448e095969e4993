package puzzle

// Animator drives position transitions, fire-and-forget from the caller's view
// Cancel drops every pending transition of the ring
type Animator interface {
	Animate(ring RingID, axis Axis, from, to float64, frames int)
	Cancel(ring RingID)
}

// Notifier receives the one-time solved announcement
type Notifier interface {
	AnnounceSolved()
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func()

func (f NotifierFunc) AnnounceSolved() { f() }
