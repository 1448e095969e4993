package puzzle

import (
	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/vmath"
)

// Layout computes resting slots and moves rings into them
type Layout struct {
	transforms *Transforms
	animator   Animator
	frames     int
}

// NewLayout creates a layout writing to transforms
// A nil animator or frames <= 0 makes every move instantaneous
func NewLayout(transforms *Transforms, animator Animator, frames int) *Layout {
	return &Layout{
		transforms: transforms,
		animator:   animator,
		frames:     frames,
	}
}

// Target returns the resting position of the ring at stackIndex on pole
// x is shared by all rings on a pole, y grows by RingThickness+RingGap per index
func (l *Layout) Target(pole Pole, stackIndex int) (x, y float64) {
	x = pole.X + parameter.PoleDiameter/2
	y = parameter.RingThickness/2 + parameter.RingGroundClearance +
		float64(stackIndex)*(parameter.RingThickness+parameter.RingGap)
	return x, y
}

// Place puts the ring into its slot immediately, cancelling any transition
func (l *Layout) Place(ring RingID, pole Pole, stackIndex int) {
	if l.animator != nil {
		l.animator.Cancel(ring)
	}
	x, y := l.Target(pole, stackIndex)
	l.transforms.Set(ring, vmath.Vec3F{X: x, Y: y, Z: parameter.DragPlaneZ})
}

// MoveTo transitions the ring into its slot, superseding earlier transitions of the ring
// Horizontal slide and vertical fall run as independent per-axis transitions
func (l *Layout) MoveTo(ring RingID, pole Pole, stackIndex int) {
	if l.animator == nil || l.frames <= 0 {
		l.Place(ring, pole, stackIndex)
		return
	}
	l.animator.Cancel(ring)

	x, y := l.Target(pole, stackIndex)
	from := l.transforms.Get(ring)
	l.transforms.SetAxis(ring, AxisZ, parameter.DragPlaneZ)
	l.animator.Animate(ring, AxisX, from.X, x, l.frames)
	l.animator.Animate(ring, AxisY, from.Y, y, l.frames)
}
