package puzzle

import (
	"fmt"
	"slices"
)

// Registry owns the per-pole stacks, index 0 is the bottom ring
// Reassign is the only mutation of ownership
type Registry struct {
	rings  []Ring
	poles  []Pole
	stacks [][]RingID
}

// NewRegistry creates a registry with every stack empty
func NewRegistry(rings []Ring, poles []Pole) *Registry {
	stacks := make([][]RingID, len(poles))
	for i := range stacks {
		stacks[i] = make([]RingID, 0, len(rings))
	}
	return &Registry{
		rings:  slices.Clone(rings),
		poles:  slices.Clone(poles),
		stacks: stacks,
	}
}

// Rings returns all rings in creation order
func (r *Registry) Rings() []Ring {
	return slices.Clone(r.rings)
}

// Poles returns all poles in order A, B, C
func (r *Registry) Poles() []Pole {
	return slices.Clone(r.poles)
}

// RingCount returns the total number of rings in the session
func (r *Registry) RingCount() int {
	return len(r.rings)
}

// Ring returns the ring with the given id
func (r *Registry) Ring(id RingID) (Ring, bool) {
	if id < 0 || int(id) >= len(r.rings) {
		return Ring{}, false
	}
	return r.rings[id], true
}

// RingBySize returns the ring with the given size rank
func (r *Registry) RingBySize(size int) (Ring, bool) {
	for _, ring := range r.rings {
		if ring.Size == size {
			return ring, true
		}
	}
	return Ring{}, false
}

// Pole returns the pole with the given id
func (r *Registry) Pole(id PoleID) (Pole, bool) {
	if id < 0 || int(id) >= len(r.poles) {
		return Pole{}, false
	}
	return r.poles[id], true
}

// StackOf returns a copy of the pole's stack, bottom to top
func (r *Registry) StackOf(pole PoleID) []RingID {
	if pole < 0 || int(pole) >= len(r.stacks) {
		return nil
	}
	return slices.Clone(r.stacks[pole])
}

// Len returns the stack height of a pole
func (r *Registry) Len(pole PoleID) int {
	if pole < 0 || int(pole) >= len(r.stacks) {
		return 0
	}
	return len(r.stacks[pole])
}

// Top returns the topmost ring of a pole
func (r *Registry) Top(pole PoleID) (RingID, bool) {
	if pole < 0 || int(pole) >= len(r.stacks) {
		return 0, false
	}
	s := r.stacks[pole]
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// PoleHolding returns the pole whose stack contains the ring
func (r *Registry) PoleHolding(ring RingID) (PoleID, bool) {
	pole, _, ok := r.IndexOf(ring)
	return pole, ok
}

// IndexOf returns the holding pole and the stack index of the ring
func (r *Registry) IndexOf(ring RingID) (PoleID, int, bool) {
	for p, s := range r.stacks {
		if i := slices.Index(s, ring); i >= 0 {
			return PoleID(p), i, true
		}
	}
	return NoPole, -1, false
}

// IsTop reports whether the ring is the topmost ring of its pole
func (r *Registry) IsTop(ring RingID) bool {
	pole, ok := r.PoleHolding(ring)
	if !ok {
		return false
	}
	top, _ := r.Top(pole)
	return top == ring
}

// Reassign removes the ring from every stack and appends it to the target stack
// from is informational, removal is by identity across all poles so a ring that is
// absent everywhere is simply appended
func (r *Registry) Reassign(ring RingID, from, to PoleID) error {
	if _, ok := r.Ring(ring); !ok {
		return fmt.Errorf("reassign ring %d: %w", ring, ErrUnknownRing)
	}
	if to < 0 || int(to) >= len(r.stacks) {
		return fmt.Errorf("reassign ring %d to pole %d: %w", ring, to, ErrUnknownPole)
	}

	for p := range r.stacks {
		r.stacks[p] = slices.DeleteFunc(r.stacks[p], func(id RingID) bool { return id == ring })
	}
	r.stacks[to] = append(r.stacks[to], ring)
	return nil
}

// Validate checks that every ring is in exactly one stack and every stack strictly
// decreases in size from bottom to top
func (r *Registry) Validate() error {
	seen := make([]int, len(r.rings))
	for p, s := range r.stacks {
		for i, id := range s {
			if id < 0 || int(id) >= len(r.rings) {
				return fmt.Errorf("%w: pole %s holds unknown ring %d", ErrInvariant, r.poles[p].Name, id)
			}
			seen[id]++
			if i > 0 && r.rings[s[i-1]].Size <= r.rings[id].Size {
				return fmt.Errorf("%w: pole %s ring size %d above size %d",
					ErrInvariant, r.poles[p].Name, r.rings[id].Size, r.rings[s[i-1]].Size)
			}
		}
	}
	for id, n := range seen {
		switch {
		case n == 0:
			return fmt.Errorf("%w: ring %d is on no pole", ErrInvariant, id)
		case n > 1:
			return fmt.Errorf("%w: ring %d is on %d poles", ErrInvariant, id, n)
		}
	}
	return nil
}
