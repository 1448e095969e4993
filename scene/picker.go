package scene

import (
	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/puzzle"
	"github.com/lixenwraith/ring-tower/vmath"
)

// Picker casts camera rays through screen cells into the scene
type Picker struct {
	scene    *Scene
	camera   *Camera
	viewport Viewport
}

// NewPicker creates a picker, the viewport must be set before the first pick
func NewPicker(scene *Scene, camera *Camera) *Picker {
	return &Picker{scene: scene, camera: camera}
}

// SetViewport updates the projected area after a resize
func (p *Picker) SetViewport(vp Viewport) {
	p.viewport = vp
}

// Viewport returns the projected area
func (p *Picker) Viewport() Viewport {
	return p.viewport
}

// PickFiltered returns the nearest body accepted by pred under the cell
func (p *Picker) PickFiltered(sx, sy int, pred func(puzzle.BodyRef) bool) (vmath.Vec3F, puzzle.BodyRef, bool) {
	if !p.viewport.Contains(sx, sy) {
		return vmath.Vec3F{}, puzzle.BodyRef{}, false
	}
	hit, ref, ok := p.scene.Cast(p.camera.Ray(sx, sy, p.viewport), pred)
	if !ok {
		return vmath.Vec3F{}, puzzle.BodyRef{}, false
	}
	return hit.Point, ref, true
}

// PickFree returns the drag plane point under the cell
// Fails outside the viewport and when the view ray runs parallel to the plane
func (p *Picker) PickFree(sx, sy int) (vmath.Vec3F, bool) {
	if !p.viewport.Contains(sx, sy) {
		return vmath.Vec3F{}, false
	}
	hit, ok := vmath.IntersectPlaneZ(p.camera.Ray(sx, sy, p.viewport), parameter.DragPlaneZ)
	if !ok {
		return vmath.Vec3F{}, false
	}
	return hit.Point, true
}
