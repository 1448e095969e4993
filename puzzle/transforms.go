package puzzle

import "github.com/lixenwraith/ring-tower/vmath"

// Transforms is the position component table keyed by RingID
// Written by the layout, the tween animator and the pointer system during a drag
type Transforms struct {
	positions []vmath.Vec3F
}

// NewTransforms allocates positions for n rings at the origin
func NewTransforms(n int) *Transforms {
	return &Transforms{positions: make([]vmath.Vec3F, n)}
}

// Get returns the ring position, zero for unknown rings
func (t *Transforms) Get(id RingID) vmath.Vec3F {
	if id < 0 || int(id) >= len(t.positions) {
		return vmath.Vec3F{}
	}
	return t.positions[id]
}

// Set overwrites the ring position
func (t *Transforms) Set(id RingID, pos vmath.Vec3F) {
	if id < 0 || int(id) >= len(t.positions) {
		return
	}
	t.positions[id] = pos
}

// SetAxis overwrites one component of the ring position
func (t *Transforms) SetAxis(id RingID, axis Axis, value float64) {
	if id < 0 || int(id) >= len(t.positions) {
		return
	}
	t.positions[id] = t.positions[id].WithAxis(int(axis), value)
}

// Len returns the number of tracked rings
func (t *Transforms) Len() int {
	return len(t.positions)
}
