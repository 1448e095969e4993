package scene

import (
	"math"

	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/puzzle"
	"github.com/lixenwraith/ring-tower/vmath"
)

// Shape is anything a view ray can hit
type Shape interface {
	Intersect(r vmath.Ray) (vmath.Hit, bool)
}

// Box is an axis aligned box
type Box struct {
	Min, Max vmath.Vec3F
}

func (b Box) Intersect(r vmath.Ray) (vmath.Hit, bool) {
	return vmath.IntersectBox(r, b.Min, b.Max)
}

// World is the puzzle state the scene reads bodies from
type World interface {
	Registry() *puzzle.Registry
	Transforms() *puzzle.Transforms
}

// Scene builds solids from the live world on every query
// Ground and poles are static per world, ring tubes follow the transforms table
type Scene struct {
	world  World
	ground Box
	poles  []vmath.Tube
}

// New creates a scene over world
func New(world World) *Scene {
	s := &Scene{
		ground: Box{
			Min: vmath.Vec3F{X: -parameter.LevelSizeX / 2, Y: -parameter.LevelSizeY, Z: -parameter.LevelSizeZ / 2},
			Max: vmath.Vec3F{X: parameter.LevelSizeX / 2, Y: 0, Z: parameter.LevelSizeZ / 2},
		},
	}
	s.SetWorld(world)
	return s
}

// SetWorld swaps the world, used when a new session starts
// A nil world leaves only the ground
func (s *Scene) SetWorld(world World) {
	s.world = world
	s.poles = s.poles[:0]
	if world == nil {
		return
	}
	for _, p := range world.Registry().Poles() {
		s.poles = append(s.poles, PoleSolid(p))
	}
}

// World returns the current world
func (s *Scene) World() World {
	return s.world
}

// Ground returns the ground solid
func (s *Scene) Ground() Box {
	return s.ground
}

// PoleSolid returns the solid cylinder of a pole standing on the ground
func PoleSolid(p puzzle.Pole) vmath.Tube {
	return vmath.Tube{
		Center:      vmath.Vec3F{X: p.CenterX(), Y: 0, Z: parameter.DragPlaneZ},
		Height:      p.Height,
		OuterRadius: parameter.PoleDiameter / 2,
	}
}

// RingSolid returns the annular tube of a ring whose center sits at pos
func RingSolid(r puzzle.Ring, pos vmath.Vec3F) vmath.Tube {
	return vmath.Tube{
		Center:      vmath.Vec3F{X: pos.X, Y: pos.Y - parameter.RingThickness/2, Z: pos.Z},
		Height:      parameter.RingThickness,
		OuterRadius: r.Diameter / 2,
		InnerRadius: parameter.PoleDiameter/2 + parameter.RingHoleMargin,
	}
}

// Cast returns the nearest hit among bodies accepted by pred, nil pred accepts all
func (s *Scene) Cast(r vmath.Ray, pred func(puzzle.BodyRef) bool) (vmath.Hit, puzzle.BodyRef, bool) {
	best := vmath.Hit{T: math.Inf(1)}
	var bestRef puzzle.BodyRef
	found := false

	try := func(shape Shape, ref puzzle.BodyRef) {
		if pred != nil && !pred(ref) {
			return
		}
		if h, ok := shape.Intersect(r); ok && h.T < best.T {
			best, bestRef, found = h, ref, true
		}
	}

	try(s.ground, puzzle.BodyRef{Kind: puzzle.BodyGround, Ring: -1, Pole: puzzle.NoPole})
	for i, tube := range s.poles {
		try(tube, puzzle.BodyRef{Kind: puzzle.BodyPole, Ring: -1, Pole: puzzle.PoleID(i)})
	}
	if s.world == nil {
		return best, bestRef, found
	}
	transforms := s.world.Transforms()
	for _, ring := range s.world.Registry().Rings() {
		try(RingSolid(ring, transforms.Get(ring.ID)), puzzle.BodyRef{Kind: puzzle.BodyRing, Ring: ring.ID, Pole: puzzle.NoPole})
	}
	return best, bestRef, found
}
