// Package scene holds the orbit camera, the solid bodies of the puzzle world and ray picking
package scene

import (
	"math"

	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/vmath"
)

// Viewport is the cell area the scene is projected onto, origin at the top-left cell
type Viewport struct {
	W, H int
}

// Contains reports whether the cell lies inside the viewport
func (v Viewport) Contains(sx, sy int) bool {
	return sx >= 0 && sy >= 0 && sx < v.W && sy < v.H
}

// Camera orbits a target point at fixed distance
// Pointer manipulation is ignored while suspended, keyboard orbit is not
type Camera struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	Target   vmath.Vec3F

	sensitivity float64
	suspended   bool

	dragging     bool
	lastX, lastY int
}

// NewCamera creates an orbit camera looking at the pole stacks
func NewCamera(distance, yaw, pitch, sensitivity float64) *Camera {
	c := &Camera{
		Yaw:         yaw,
		Target:      vmath.Vec3F{Y: parameter.CameraTargetY, Z: parameter.DragPlaneZ},
		sensitivity: sensitivity,
	}
	c.Distance = vmath.Clamp(distance, parameter.CameraDistanceMin, parameter.CameraDistanceMax)
	c.Pitch = vmath.Clamp(pitch, parameter.CameraPitchMin, parameter.CameraPitchMax)
	return c
}

// Suspend disables pointer-driven orbit and zoom
func (c *Camera) Suspend() {
	c.suspended = true
	c.dragging = false
}

// Resume re-enables pointer-driven orbit and zoom
func (c *Camera) Resume() {
	c.suspended = false
}

// Suspended reports whether pointer manipulation is disabled
func (c *Camera) Suspended() bool {
	return c.suspended
}

// BeginDrag starts a pointer orbit at the cell
func (c *Camera) BeginDrag(sx, sy int) {
	if c.suspended {
		return
	}
	c.dragging = true
	c.lastX, c.lastY = sx, sy
}

// DragTo orbits by the cell delta since the last pointer position
func (c *Camera) DragTo(sx, sy int) {
	if c.suspended || !c.dragging {
		return
	}
	dx, dy := sx-c.lastX, sy-c.lastY
	c.lastX, c.lastY = sx, sy
	c.Orbit(float64(dx)*c.sensitivity, float64(dy)*c.sensitivity*parameter.CameraCellAspect)
}

// EndDrag finishes a pointer orbit
func (c *Camera) EndDrag() {
	c.dragging = false
}

// Orbiting reports whether a pointer orbit is in progress
func (c *Camera) Orbiting() bool {
	return c.dragging
}

// Wheel zooms by wheel notches, positive moves closer
func (c *Camera) Wheel(notches int) {
	if c.suspended {
		return
	}
	c.Zoom(-float64(notches) * parameter.CameraZoomStep)
}

// Orbit rotates around the target, pitch is clamped above the ground
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw = math.Remainder(c.Yaw+dyaw, 2*math.Pi)
	c.Pitch = vmath.Clamp(c.Pitch+dpitch, parameter.CameraPitchMin, parameter.CameraPitchMax)
}

// Zoom changes the orbit distance within limits
func (c *Camera) Zoom(delta float64) {
	c.Distance = vmath.Clamp(c.Distance+delta, parameter.CameraDistanceMin, parameter.CameraDistanceMax)
}

// Eye returns the camera position
// Yaw 0 places the camera on the -z side of the drag plane
func (c *Camera) Eye() vmath.Vec3F {
	cp := math.Cos(c.Pitch)
	offset := vmath.Vec3F{
		X: c.Distance * cp * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: -c.Distance * cp * math.Cos(c.Yaw),
	}
	return vmath.V3FAdd(c.Target, offset)
}

// basis returns forward, right and up unit vectors
func (c *Camera) basis() (forward, right, up vmath.Vec3F) {
	forward = vmath.V3FNormalize(vmath.V3FSub(c.Target, c.Eye()))
	right = vmath.V3FNormalize(vmath.V3FCross(forward, vmath.Vec3F{Y: 1}))
	up = vmath.V3FCross(right, forward)
	return forward, right, up
}

// Ray returns the view ray through the center of cell (sx, sy)
// Cells are CameraCellAspect times taller than wide, vertical extent of the viewport spans [-1, 1]
func (c *Camera) Ray(sx, sy int, vp Viewport) vmath.Ray {
	forward, right, up := c.basis()
	half := float64(vp.H) / 2
	if half <= 0 {
		half = 1
	}
	nx := (float64(sx) + 0.5 - float64(vp.W)/2) / parameter.CameraCellAspect / half
	ny := (half - float64(sy) - 0.5) / half

	dir := vmath.V3FScale(forward, parameter.CameraFocal)
	dir = vmath.V3FAdd(dir, vmath.V3FScale(right, nx))
	dir = vmath.V3FAdd(dir, vmath.V3FScale(up, ny))
	return vmath.Ray{Origin: c.Eye(), Dir: vmath.V3FNormalize(dir)}
}

// Project maps a world point to fractional cell coordinates
// Returns false for points behind the camera
func (c *Camera) Project(p vmath.Vec3F, vp Viewport) (sx, sy float64, ok bool) {
	forward, right, up := c.basis()
	d := vmath.V3FSub(p, c.Eye())
	depth := vmath.V3FDot(d, forward)
	if depth <= vmath.Epsilon {
		return 0, 0, false
	}
	half := float64(vp.H) / 2
	nx := vmath.V3FDot(d, right) / depth * parameter.CameraFocal
	ny := vmath.V3FDot(d, up) / depth * parameter.CameraFocal

	sx = nx*half*parameter.CameraCellAspect + float64(vp.W)/2
	sy = half - ny*half
	return sx, sy, true
}
