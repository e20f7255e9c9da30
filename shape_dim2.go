//go:build !dim3

package kine

const (
	shapeCapsule shapeKind = iota
	shapeBox
)

// Capsule is a 2D stadium: the set of points within Radius of the local
// segment running from (-HalfLength, 0) to (HalfLength, 0). A HalfLength
// of zero degenerates to a disc, so Ball is expressed as a Capsule
// rather than a third shape kind (spec §3 only requires the engine
// support "at least one convex shape type per dimension"; collapsing
// Ball into Capsule keeps the kernel's shape-pair matrix small without
// dropping the simple-disc constructor callers expect).
type Capsule struct {
	HalfLength Real
	Radius     Real
}

// NewBall returns a zero-length Capsule — a disc of the given radius.
func NewBall(radius Real) Capsule {
	return Capsule{HalfLength: 0, Radius: radius}
}

// NewCapsule returns a stadium shape with the given half-length (of the
// core segment) and radius.
func NewCapsule(halfLength, radius Real) Capsule {
	return Capsule{HalfLength: halfLength, Radius: radius}
}

// segment returns the capsule's core segment in world space.
func (c Capsule) segment(iso Isometry) (p0, p1 Vec) {
	p0 = iso.toWorld(Vec{X: -c.HalfLength, Y: 0})
	p1 = iso.toWorld(Vec{X: c.HalfLength, Y: 0})
	return
}

func (c Capsule) AABB(iso Isometry) AABB {
	p0, p1 := c.segment(iso)
	pad := Vec{X: c.Radius, Y: c.Radius}
	return AABB{
		Min: p0.minOf(p1).Sub(pad),
		Max: p0.maxOf(p1).Add(pad),
	}
}

func (c Capsule) SweptAABB(iso0, iso1 Isometry) AABB {
	return sweptAABB(c, iso0, iso1)
}

func (c Capsule) ContainsPoint(iso Isometry, p Vec) bool {
	local := iso.toLocal(p)
	cx := clampReal(local.X, -c.HalfLength, c.HalfLength)
	closest := Vec{X: cx, Y: 0}
	return local.Sub(closest).LenSq() <= c.Radius*c.Radius
}

func (c Capsule) kind() shapeKind { return shapeCapsule }

// Box is an oriented rectangle with the given local half-extents.
type Box struct {
	HalfExtents Vec
}

// NewBox returns a Box whose half-extents are halfWidth and halfHeight
// (the full size is twice each argument).
func NewBox(halfWidth, halfHeight Real) Box {
	return Box{HalfExtents: Vec{X: halfWidth, Y: halfHeight}}
}

// worldHalfExtents returns the AABB half-extents of the rotated box.
func (b Box) worldHalfExtents(iso Isometry) Vec {
	ax := iso.Rotation.rotate(Vec{X: b.HalfExtents.X, Y: 0}).Abs()
	ay := iso.Rotation.rotate(Vec{X: 0, Y: b.HalfExtents.Y}).Abs()
	return ax.Add(ay)
}

func (b Box) AABB(iso Isometry) AABB {
	he := b.worldHalfExtents(iso)
	return AABB{Min: iso.Position.Sub(he), Max: iso.Position.Add(he)}
}

func (b Box) SweptAABB(iso0, iso1 Isometry) AABB {
	return sweptAABB(b, iso0, iso1)
}

func (b Box) ContainsPoint(iso Isometry, p Vec) bool {
	local := iso.toLocal(p)
	return absReal(local.X) <= b.HalfExtents.X && absReal(local.Y) <= b.HalfExtents.Y
}

func (b Box) kind() shapeKind { return shapeBox }

func clampReal(v, lo, hi Real) Real {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
