//go:build !dim3

package kine

import "math"

// pointBoxLocalDistance computes the box-frame separation between a
// point and an axis-aligned half-extent box centered at the origin:
// positive outside (dist to surface), negative inside (penetration
// depth, negated), along with the outward unit normal.
func pointBoxLocalDistance(p, he Vec) (dist Real, normal Vec) {
	clamped := Vec{X: clampReal(p.X, -he.X, he.X), Y: clampReal(p.Y, -he.Y, he.Y)}
	if clamped == p {
		dx := he.X - absReal(p.X)
		dy := he.Y - absReal(p.Y)
		if dx < dy {
			n := Real(1)
			if p.X < 0 {
				n = -1
			}
			return -dx, Vec{X: n}
		}
		n := Real(1)
		if p.Y < 0 {
			n = -1
		}
		return -dy, Vec{Y: n}
	}
	d := p.Sub(clamped)
	dist = d.Len()
	if dist < 1e-9 {
		return 0, Vec{X: 1}
	}
	return dist, d.Mul(1 / dist)
}

// capsuleBoxContact computes the contact between a capsule and a box.
// The separated case follows the plan of treating the capsule's core
// segment and the box's 4 edges as convex polygons and taking the
// minimum edge-pair distance (Ericson §9.11 generalizes this to
// polygon-polygon); the overlapping case resolves against the box's
// nearest face using the segment's point closest to the box center.
func capsuleBoxContact(c Capsule, isoC Isometry, b Box, isoB Isometry, margin Real) (Contact, bool) {
	p0, p1 := c.segment(isoC)
	lp0, lp1 := isoB.toLocal(p0), isoB.toLocal(p1)

	// Closest point on the core segment to the box center, used to test
	// and resolve overlap.
	ref := closestPointOnSegment(lp0, lp1, Vec{})
	d, n := pointBoxLocalDistance(ref, b.HalfExtents)
	depth := c.Radius - d
	if depth >= -margin {
		worldNormal := isoB.Rotation.rotate(n)
		worldRef := isoB.toWorld(ref)
		return Contact{
			PointA: worldRef.Sub(worldNormal.Mul(c.Radius)),
			PointB: isoB.toWorld(Vec{X: clampReal(ref.X, -b.HalfExtents.X, b.HalfExtents.X), Y: clampReal(ref.Y, -b.HalfExtents.Y, b.HalfExtents.Y)}),
			Normal: worldNormal.Mul(-1),
			Depth:  depth,
		}, true
	}

	// Separated: minimum distance between the core segment and each of
	// the box's 4 local edges.
	he := b.HalfExtents
	corners := [4]Vec{
		{X: -he.X, Y: -he.Y}, {X: he.X, Y: -he.Y}, {X: he.X, Y: he.Y}, {X: -he.X, Y: he.Y},
	}
	bestDist := Real(math.MaxFloat32)
	var bestLocalSeg, bestLocalBox Vec
	for i := 0; i < 4; i++ {
		e0, e1 := corners[i], corners[(i+1)%4]
		cs, cb := closestSegSeg(lp0, lp1, e0, e1)
		dist := cs.Sub(cb).Len()
		if dist < bestDist {
			bestDist = dist
			bestLocalSeg, bestLocalBox = cs, cb
		}
	}
	sep := bestDist - c.Radius
	if sep > margin {
		return Contact{}, false
	}
	localNormal := bestLocalSeg.Sub(bestLocalBox)
	if bestDist < 1e-9 {
		localNormal = Vec{X: 1}
	} else {
		localNormal = localNormal.Mul(1 / bestDist)
	}
	worldNormal := isoB.Rotation.rotate(localNormal)
	return Contact{
		PointA: isoB.toWorld(bestLocalSeg).Sub(worldNormal.Mul(c.Radius)),
		PointB: isoB.toWorld(bestLocalBox),
		Normal: worldNormal.Mul(-1),
		Depth:  -sep,
	}, true
}

// boxBoxContact computes the contact between two oriented boxes: SAT
// for the overlapping case (grounded on the teacher's rigid-body SAT,
// generalized from 3 axis-aligned axes to the 4 face normals of two
// arbitrarily oriented rectangles), edge-pair closestSegSeg for the
// separated case.
func boxBoxContact(a Box, isoA Isometry, b Box, isoB Isometry, margin Real) (Contact, bool) {
	verts := func(box Box, iso Isometry) [4]Vec {
		he := box.HalfExtents
		local := [4]Vec{{X: -he.X, Y: -he.Y}, {X: he.X, Y: -he.Y}, {X: he.X, Y: he.Y}, {X: -he.X, Y: he.Y}}
		var out [4]Vec
		for i, l := range local {
			out[i] = iso.toWorld(l)
		}
		return out
	}
	va := verts(a, isoA)
	vb := verts(b, isoB)

	axes := []Vec{
		isoA.Rotation.rotate(Vec{X: 1}),
		isoA.Rotation.rotate(Vec{Y: 1}),
		isoB.Rotation.rotate(Vec{X: 1}),
		isoB.Rotation.rotate(Vec{Y: 1}),
	}

	overlapping := true
	minOverlap := Real(math.MaxFloat32)
	var minAxis Vec
	for _, axis := range axes {
		aMin, aMax := projectOntoAxis(va[:], axis)
		bMin, bMax := projectOntoAxis(vb[:], axis)
		o := minReal(aMax, bMax) - maxReal(aMin, bMin)
		if o < 0 {
			overlapping = false
			break
		}
		if o < minOverlap {
			minOverlap = o
			minAxis = axis
		}
	}

	if overlapping {
		d := isoB.Position.Sub(isoA.Position)
		if d.Dot(minAxis) < 0 {
			minAxis = minAxis.Mul(-1)
		}
		return Contact{
			PointA: isoA.Position.Add(minAxis.Mul(minOverlap / 2)),
			PointB: isoB.Position.Sub(minAxis.Mul(minOverlap / 2)),
			Normal: minAxis,
			Depth:  minOverlap,
		}, true
	}

	bestDist := Real(math.MaxFloat32)
	var bestA, bestB Vec
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			ca, cb := closestSegSeg(va[i], va[(i+1)%4], vb[j], vb[(j+1)%4])
			dist := ca.Sub(cb).Len()
			if dist < bestDist {
				bestDist = dist
				bestA, bestB = ca, cb
			}
		}
	}
	if bestDist > margin {
		return Contact{}, false
	}
	normal := bestB.Sub(bestA)
	if bestDist < 1e-9 {
		normal = Vec{X: 1}
	} else {
		normal = normal.Mul(1 / bestDist)
	}
	return Contact{PointA: bestA, PointB: bestB, Normal: normal, Depth: -bestDist}, true
}

func projectOntoAxis(verts []Vec, axis Vec) (min, max Real) {
	min, max = math.MaxFloat32, -math.MaxFloat32
	for _, v := range verts {
		p := v.Dot(axis)
		min = minReal(min, p)
		max = maxReal(max, p)
	}
	return
}

// shapePairContact dispatches to the concrete shape-pair routine. A pair
// neither side of the switch recognizes is reported through logger and
// treated as a non-contact (spec §4.4: unsupported geometry pairs must
// not panic).
func shapePairContact(a Shape, isoA Isometry, b Shape, isoB Isometry, margin Real, logger Logger) (Contact, bool) {
	switch av := a.(type) {
	case Capsule:
		switch bv := b.(type) {
		case Capsule:
			return capsuleCapsuleContact(av, isoA, bv, isoB, margin)
		case Box:
			return capsuleBoxContact(av, isoA, bv, isoB, margin)
		}
	case Box:
		switch bv := b.(type) {
		case Capsule:
			c, ok := capsuleBoxContact(bv, isoB, av, isoA, margin)
			if !ok {
				return Contact{}, false
			}
			return c.Swapped(), true
		case Box:
			return boxBoxContact(av, isoA, bv, isoB, margin)
		}
	}
	logger.Errorf("kine: unsupported shape pair %T/%T in default kernel", a, b)
	return Contact{}, false
}

// castRayShape intersects a ray against shape in the default kernel. An
// unrecognized shape type is reported through logger and treated as a
// miss rather than a panic (spec §4.4).
func castRayShape(shape Shape, iso Isometry, origin, dir Vec, maxToi Real, solid bool, logger Logger) (RayHit, bool) {
	switch s := shape.(type) {
	case Capsule:
		return castRayCapsule(s, iso, origin, dir, maxToi, solid)
	case Box:
		return castRayBox(s, iso, origin, dir, maxToi, solid)
	}
	logger.Errorf("kine: unsupported shape %T in default kernel raycast", shape)
	return RayHit{}, false
}

func castRayBox(b Box, iso Isometry, origin, dir Vec, maxToi Real, solid bool) (RayHit, bool) {
	lo := iso.toLocal(origin)
	ld := iso.Rotation.unrotate(dir)
	he := b.HalfExtents

	if b.ContainsPoint(iso, origin) {
		if solid {
			return RayHit{TimeOfImpact: 0, Point: origin, Normal: Vec{}}, true
		}
		// P9: solid=false skips a body the ray starts inside of.
		return RayHit{}, false
	}

	tmin, tmax := Real(0), maxToi
	var normal Vec
	axes := [2]struct {
		o, d, he Real
		n        Vec
	}{
		{lo.X, ld.X, he.X, Vec{X: 1}},
		{lo.Y, ld.Y, he.Y, Vec{Y: 1}},
	}
	for _, ax := range axes {
		if absReal(ax.d) < 1e-12 {
			if ax.o < -ax.he || ax.o > ax.he {
				return RayHit{}, false
			}
			continue
		}
		inv := 1 / ax.d
		t1 := (-ax.he - ax.o) * inv
		t2 := (ax.he - ax.o) * inv
		sign := Real(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			normal = ax.n.Mul(sign)
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RayHit{}, false
		}
	}
	if tmin > maxToi || tmax < 0 {
		return RayHit{}, false
	}
	return RayHit{
		TimeOfImpact: tmin,
		Point:        origin.Add(dir.Mul(tmin)),
		Normal:       iso.Rotation.rotate(normal),
	}, true
}

func castRayCapsule(c Capsule, iso Isometry, origin, dir Vec, maxToi Real, solid bool) (RayHit, bool) {
	if c.ContainsPoint(iso, origin) {
		if solid {
			return RayHit{TimeOfImpact: 0, Point: origin, Normal: Vec{}}, true
		}
		// P9: solid=false skips a body the ray starts inside of.
		return RayHit{}, false
	}
	p0, p1 := c.segment(iso)

	best := maxToi
	found := false
	var bestPoint, bestNormal Vec

	tryHit := func(toi Real, point, normal Vec) {
		if toi >= 0 && toi <= best {
			best = toi
			bestPoint = point
			bestNormal = normal
			found = true
		}
	}

	// Two side lines, offset by the radius along the segment's normal.
	axis := p1.Sub(p0)
	if axis.LenSq() > 1e-12 {
		perp := axis.Normalize().Perp()
		for _, sign := range [2]Real{1, -1} {
			offset := perp.Mul(c.Radius * sign)
			toi, point, ok := rayLineSegment(origin, dir, p0.Add(offset), p1.Add(offset), best)
			if ok {
				tryHit(toi, point, perp.Mul(sign))
			}
		}
	}
	// Two end caps.
	for _, center := range [2]Vec{p0, p1} {
		toi, point, normal, ok := rayCircle(origin, dir, center, c.Radius, best)
		if ok {
			tryHit(toi, point, normal)
		}
	}
	if !found {
		return RayHit{}, false
	}
	return RayHit{TimeOfImpact: best, Point: bestPoint, Normal: bestNormal}, true
}

func rayLineSegment(origin, dir, p0, p1 Vec, maxToi Real) (toi Real, point Vec, ok bool) {
	e := p1.Sub(p0)
	denom := dir.Cross2(e)
	if absReal(denom) < 1e-12 {
		return 0, Vec{}, false
	}
	d := p0.Sub(origin)
	t := d.Cross2(e) / denom
	s := d.Cross2(dir) / denom
	if t < 0 || t > maxToi || s < 0 || s > 1 {
		return 0, Vec{}, false
	}
	return t, origin.Add(dir.Mul(t)), true
}

func rayCircle(origin, dir, center Vec, radius, maxToi Real) (toi Real, point, normal Vec, ok bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius
	if c > 0 && b > 0 {
		return 0, Vec{}, Vec{}, false
	}
	a := dir.Dot(dir)
	if a < 1e-12 {
		return 0, Vec{}, Vec{}, false
	}
	discr := b*b - a*c
	if discr < 0 {
		return 0, Vec{}, Vec{}, false
	}
	t := (-b - Real(math.Sqrt(float64(discr)))) / a
	if t < 0 {
		// The origin is already inside the circle (or past it); the
		// caller's containment check is what decides solid/non-solid
		// behaviour for that case, not this clamp.
		return 0, Vec{}, Vec{}, false
	}
	if t > maxToi {
		return 0, Vec{}, Vec{}, false
	}
	p := origin.Add(dir.Mul(t))
	n := p.Sub(center).Normalize()
	return t, p, n, true
}
