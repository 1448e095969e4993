// Package fsm is a small generic event-driven finite state machine
// T is the context passed to guards and actions
package fsm

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an internal transition target and an uninitialized machine
const StateNone StateID = 0

// EventType identifies an input event, 0 is reserved
type EventType int

// Machine is the FSM runtime
type Machine[T any] struct {
	// Graph Data (Immutable after Init)
	nodes map[StateID]*Node[T]

	// Runtime State
	activeStateID StateID
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
// TargetID == StateNone is an internal transition: Action runs, no exit or enter
type Transition[T any] struct {
	Event    EventType
	TargetID StateID
	Guard    GuardFunc[T]  // nil = Always true
	Action   ActionFunc[T] // nil = no side effect
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, payload any) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, payload any)
