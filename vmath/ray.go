package vmath

import "math"

// Ray is a half-line from Origin along Dir, Dir is expected normalized
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// At returns the point at parameter t
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// Hit is a ray intersection with the surface normal at the hit point
type Hit struct {
	T      float64
	Point  Vec3F
	Normal Vec3F
}

// IntersectPlaneZ intersects the ray with the plane z=depth
// Rays parallel to the plane or pointing away miss
func IntersectPlaneZ(r Ray, depth float64) (Hit, bool) {
	if math.Abs(r.Dir.Z) < Epsilon {
		return Hit{}, false
	}
	t := (depth - r.Origin.Z) / r.Dir.Z
	if t <= Epsilon {
		return Hit{}, false
	}
	n := Vec3F{Z: -1}
	if r.Dir.Z < 0 {
		n.Z = 1
	}
	return Hit{T: t, Point: r.At(t), Normal: n}, true
}

// IntersectBox intersects the ray with an axis aligned box using the slab method
func IntersectBox(r Ray, min, max Vec3F) (Hit, bool) {
	tNear, tFar := math.Inf(-1), math.Inf(1)
	nearAxis, nearSign := -1, 0.0

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin.Axis(axis), r.Dir.Axis(axis)
		lo, hi := min.Axis(axis), max.Axis(axis)
		if math.Abs(d) < Epsilon {
			if o < lo || o > hi {
				return Hit{}, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tNear {
			tNear, nearAxis, nearSign = t1, axis, sign
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return Hit{}, false
		}
	}

	if tFar <= Epsilon || nearAxis < 0 {
		return Hit{}, false
	}
	t := tNear
	if t <= Epsilon {
		// Origin inside the box
		t = tFar
	}
	return Hit{T: t, Point: r.At(t), Normal: Vec3F{}.WithAxis(nearAxis, nearSign)}, true
}

// IntersectCylinderY intersects the ray with the outer wall of an infinite vertical cylinder
// centered at (cx, cz), returning both roots sorted ascending
func IntersectCylinderY(r Ray, cx, cz, radius float64) (t0, t1 float64, ok bool) {
	ox, oz := r.Origin.X-cx, r.Origin.Z-cz
	a := r.Dir.X*r.Dir.X + r.Dir.Z*r.Dir.Z
	if a < Epsilon {
		return 0, 0, false
	}
	b := 2 * (ox*r.Dir.X + oz*r.Dir.Z)
	c := ox*ox + oz*oz - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	t0 = (-b - sq) / (2 * a)
	t1 = (-b + sq) / (2 * a)
	return t0, t1, true
}

// Tube is a capped vertical hollow cylinder (annulus extruded along y)
// Inner radius 0 makes it a solid cylinder
type Tube struct {
	Center      Vec3F // center of the bottom cap
	Height      float64
	OuterRadius float64
	InnerRadius float64
}

// Intersect returns the nearest positive hit on the tube surface
func (tb Tube) Intersect(r Ray) (Hit, bool) {
	best := Hit{T: math.Inf(1)}
	found := false
	yMin, yMax := tb.Center.Y, tb.Center.Y+tb.Height

	consider := func(t float64, normal Vec3F) {
		if t > Epsilon && t < best.T {
			best = Hit{T: t, Point: r.At(t), Normal: normal}
			found = true
		}
	}

	// Outer wall
	if t0, t1, ok := IntersectCylinderY(r, tb.Center.X, tb.Center.Z, tb.OuterRadius); ok {
		for _, t := range [2]float64{t0, t1} {
			p := r.At(t)
			if p.Y >= yMin && p.Y <= yMax {
				consider(t, V3FNormalize(Vec3F{X: p.X - tb.Center.X, Z: p.Z - tb.Center.Z}))
			}
		}
	}

	// Inner wall, normal faces the axis
	if tb.InnerRadius > 0 {
		if t0, t1, ok := IntersectCylinderY(r, tb.Center.X, tb.Center.Z, tb.InnerRadius); ok {
			for _, t := range [2]float64{t0, t1} {
				p := r.At(t)
				if p.Y >= yMin && p.Y <= yMax {
					consider(t, V3FNormalize(Vec3F{X: tb.Center.X - p.X, Z: tb.Center.Z - p.Z}))
				}
			}
		}
	}

	// Caps
	if math.Abs(r.Dir.Y) >= Epsilon {
		for _, capY := range [2]float64{yMin, yMax} {
			t := (capY - r.Origin.Y) / r.Dir.Y
			p := r.At(t)
			dx, dz := p.X-tb.Center.X, p.Z-tb.Center.Z
			d2 := dx*dx + dz*dz
			if d2 <= tb.OuterRadius*tb.OuterRadius && d2 >= tb.InnerRadius*tb.InnerRadius {
				ny := 1.0
				if capY == yMin {
					ny = -1.0
				}
				consider(t, Vec3F{Y: ny})
			}
		}
	}

	return best, found
}
