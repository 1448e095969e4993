// Package puzzle holds the authoritative ring tower model: which ring sits on which pole,
// where each ring should rest, whether a drop is legal and whether the puzzle is solved
//
// Stack membership in the Registry is the source of truth. Ring positions in Transforms
// are presentation values derived by the Layout and are never read back as puzzle state,
// except for the live drop position handed over by the pointer system.
package puzzle

import (
	"fmt"

	"github.com/lixenwraith/ring-tower/parameter"
)

// RingID indexes a ring, stable for the whole session
type RingID int

// PoleID indexes a pole, 0..2 from left anchor A to C
type PoleID int

// NoPole marks a ring missing from every stack
const NoPole PoleID = -1

// Ring is a disc with a unique size rank, 1 = smallest
type Ring struct {
	ID       RingID
	Size     int
	Diameter float64
}

// Pole is a fixed vertical rod, X is the anchor used by the layout and the drop band
type Pole struct {
	ID     PoleID
	Name   string
	X      float64
	Height float64
}

// CenterX returns the physical center of the pole
func (p Pole) CenterX() float64 {
	return p.X + parameter.PoleDiameter/2
}

// Axis selects a position component
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// BodyKind classifies pickable scene objects
type BodyKind uint8

const (
	BodyNone BodyKind = iota
	BodyGround
	BodyPole
	BodyRing
)

// BodyRef identifies the object hit by a pick
type BodyRef struct {
	Kind BodyKind
	Ring RingID
	Pole PoleID
}

// IsRing is the filter predicate restricting picks to ring bodies
func IsRing(b BodyRef) bool {
	return b.Kind == BodyRing
}

// NewRings creates n rings largest first, ring 0 has size n
func NewRings(n int) []Ring {
	rings := make([]Ring, n)
	for i := 0; i < n; i++ {
		size := n - i
		rings[i] = Ring{
			ID:       RingID(i),
			Size:     size,
			Diameter: parameter.RingDiameter(size),
		}
	}
	return rings
}

// NewPoles creates the three poles sized for ringCount rings
func NewPoles(ringCount int) []Pole {
	names := [parameter.PoleCount]string{"A", "B", "C"}
	poles := make([]Pole, parameter.PoleCount)
	for i := range poles {
		poles[i] = Pole{
			ID:     PoleID(i),
			Name:   names[i],
			X:      parameter.PoleAnchorX(i),
			Height: parameter.PoleHeight(ringCount),
		}
	}
	return poles
}
