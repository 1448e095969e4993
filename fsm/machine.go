package fsm

import "fmt"

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// Init validates transition targets and enters the initial state
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	for id, n := range m.nodes {
		for _, t := range n.Transitions {
			if t.TargetID == StateNone {
				continue
			}
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state %d (%s) has transition to unknown state %d", id, n.Name, t.TargetID)
			}
		}
	}

	m.activeStateID = initialID
	for _, action := range node.OnEnter {
		action(ctx, nil)
	}
	return nil
}

// HandleEvent routes an event through the active state
// Returns true if a transition fired
func (m *Machine[T]) HandleEvent(ctx T, ev EventType, payload any) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}

	for _, trans := range node.Transitions {
		if trans.Event != ev {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx, payload) {
			continue
		}
		m.fire(ctx, node, trans, payload)
		return true
	}
	return false
}

// fire runs exit, transition action and enter in that order
func (m *Machine[T]) fire(ctx T, source *Node[T], trans Transition[T], payload any) {
	if trans.TargetID == StateNone {
		if trans.Action != nil {
			trans.Action(ctx, payload)
		}
		return
	}

	target, ok := m.nodes[trans.TargetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", trans.TargetID))
	}

	for _, action := range source.OnExit {
		action(ctx, payload)
	}
	if trans.Action != nil {
		trans.Action(ctx, payload)
	}
	m.activeStateID = target.ID
	for _, action := range target.OnEnter {
		action(ctx, payload)
	}
}

// State returns the active StateID
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the active state name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}
