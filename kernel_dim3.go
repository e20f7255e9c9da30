//go:build dim3

package kine

import "math"

// pointCuboidLocalDistance computes the box-frame separation between a
// point and an axis-aligned half-extent cuboid centered at the origin:
// positive outside, negative inside (penetration depth, negated), along
// with the outward unit normal. 3D generalization of the 2D build's
// pointBoxLocalDistance.
func pointCuboidLocalDistance(p, he Vec) (dist Real, normal Vec) {
	clamped := Vec{
		X: clampReal(p.X, -he.X, he.X),
		Y: clampReal(p.Y, -he.Y, he.Y),
		Z: clampReal(p.Z, -he.Z, he.Z),
	}
	if clamped == p {
		dx, dy, dz := he.X-absReal(p.X), he.Y-absReal(p.Y), he.Z-absReal(p.Z)
		min := dx
		axis := Vec{X: 1}
		if p.X < 0 {
			axis = Vec{X: -1}
		}
		if dy < min {
			min = dy
			axis = Vec{Y: 1}
			if p.Y < 0 {
				axis = Vec{Y: -1}
			}
		}
		if dz < min {
			min = dz
			axis = Vec{Z: 1}
			if p.Z < 0 {
				axis = Vec{Z: -1}
			}
		}
		return -min, axis
	}
	d := p.Sub(clamped)
	dist = d.Len()
	if dist < 1e-9 {
		return 0, Vec{X: 1}
	}
	return dist, d.Mul(1 / dist)
}

// capsuleCuboidContact computes the contact between a capsule and a
// cuboid, the 3D counterpart of the 2D build's capsuleBoxContact: the
// overlap case resolves against the cuboid's nearest face using the
// segment point closest to the cuboid center; the separated case takes
// the minimum distance between the core segment and the cuboid's 12
// local edges.
func capsuleCuboidContact(c Capsule, isoC Isometry, b Cuboid, isoB Isometry, margin Real) (Contact, bool) {
	p0, p1 := c.segment(isoC)
	lp0, lp1 := isoB.toLocal(p0), isoB.toLocal(p1)

	ref := closestPointOnSegment(lp0, lp1, Vec{})
	d, n := pointCuboidLocalDistance(ref, b.HalfExtents)
	depth := c.Radius - d
	if depth >= -margin {
		worldNormal := isoB.Rotation.rotate(n)
		worldRef := isoB.toWorld(ref)
		clampedRef := Vec{
			X: clampReal(ref.X, -b.HalfExtents.X, b.HalfExtents.X),
			Y: clampReal(ref.Y, -b.HalfExtents.Y, b.HalfExtents.Y),
			Z: clampReal(ref.Z, -b.HalfExtents.Z, b.HalfExtents.Z),
		}
		return Contact{
			PointA: worldRef.Sub(worldNormal.Mul(c.Radius)),
			PointB: isoB.toWorld(clampedRef),
			Normal: worldNormal.Mul(-1),
			Depth:  depth,
		}, true
	}

	he := b.HalfExtents
	corners := cuboidLocalCorners(he)
	bestDist := Real(math.MaxFloat32)
	var bestLocalSeg, bestLocalBox Vec
	for _, e := range cuboidEdges {
		cs, cb := closestSegSeg(lp0, lp1, corners[e[0]], corners[e[1]])
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

func cuboidLocalCorners(he Vec) [8]Vec {
	return [8]Vec{
		{X: -he.X, Y: -he.Y, Z: -he.Z}, {X: he.X, Y: -he.Y, Z: -he.Z},
		{X: he.X, Y: he.Y, Z: -he.Z}, {X: -he.X, Y: he.Y, Z: -he.Z},
		{X: -he.X, Y: -he.Y, Z: he.Z}, {X: he.X, Y: -he.Y, Z: he.Z},
		{X: he.X, Y: he.Y, Z: he.Z}, {X: -he.X, Y: he.Y, Z: he.Z},
	}
}

var cuboidEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// cuboidCuboidContact computes the contact between two oriented cuboids:
// SAT over the 6 face-normal axes and 9 edge-cross-edge axes for the
// overlap case (grounded on the teacher's axis-aligned 3-axis SAT,
// generalized to arbitrary orientation the way the 2D build generalizes
// it to 4 axes), edge-pair closestSegSeg for the separated case.
func cuboidCuboidContact(a Cuboid, isoA Isometry, b Cuboid, isoB Isometry, margin Real) (Contact, bool) {
	cornersA := cuboidWorldCorners(a, isoA)
	cornersB := cuboidWorldCorners(b, isoB)

	axesA := [3]Vec{isoA.Rotation.rotate(Vec{X: 1}), isoA.Rotation.rotate(Vec{Y: 1}), isoA.Rotation.rotate(Vec{Z: 1})}
	axesB := [3]Vec{isoB.Rotation.rotate(Vec{X: 1}), isoB.Rotation.rotate(Vec{Y: 1}), isoB.Rotation.rotate(Vec{Z: 1})}

	var axes []Vec
	axes = append(axes, axesA[0], axesA[1], axesA[2], axesB[0], axesB[1], axesB[2])
	for _, ea := range axesA {
		for _, eb := range axesB {
			ax := ea.Cross3(eb)
			if ax.LenSq() > 1e-9 {
				axes = append(axes, ax.Normalize())
			}
		}
	}

	overlapping := true
	minOverlap := Real(math.MaxFloat32)
	var minAxis Vec
	for _, axis := range axes {
		aMin, aMax := projectOntoAxis3(cornersA[:], axis)
		bMin, bMax := projectOntoAxis3(cornersB[:], axis)
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
	for _, ea := range cuboidEdges {
		for _, eb := range cuboidEdges {
			ca, cb := closestSegSeg(cornersA[ea[0]], cornersA[ea[1]], cornersB[eb[0]], cornersB[eb[1]])
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

func cuboidWorldCorners(box Cuboid, iso Isometry) [8]Vec {
	local := cuboidLocalCorners(box.HalfExtents)
	var out [8]Vec
	for i, l := range local {
		out[i] = iso.toWorld(l)
	}
	return out
}

func projectOntoAxis3(verts []Vec, axis Vec) (min, max Real) {
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
		case Cuboid:
			return capsuleCuboidContact(av, isoA, bv, isoB, margin)
		}
	case Cuboid:
		switch bv := b.(type) {
		case Capsule:
			c, ok := capsuleCuboidContact(bv, isoB, av, isoA, margin)
			if !ok {
				return Contact{}, false
			}
			return c.Swapped(), true
		case Cuboid:
			return cuboidCuboidContact(av, isoA, bv, isoB, margin)
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
	case Cuboid:
		return castRayCuboid(s, iso, origin, dir, maxToi, solid)
	}
	logger.Errorf("kine: unsupported shape %T in default kernel raycast", shape)
	return RayHit{}, false
}

func castRayCuboid(b Cuboid, iso Isometry, origin, dir Vec, maxToi Real, solid bool) (RayHit, bool) {
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
	axes := [3]struct {
		o, d, he Real
		n        Vec
	}{
		{lo.X, ld.X, he.X, Vec{X: 1}},
		{lo.Y, ld.Y, he.Y, Vec{Y: 1}},
		{lo.Z, ld.Z, he.Z, Vec{Z: 1}},
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

// castRayCapsule intersects a ray against a capsule (Ericson §5.3.7/5.3.8:
// infinite-cylinder quadratic, falling back to a sphere test at either
// cap when the cylinder hit falls outside the core segment).
func castRayCapsule(c Capsule, iso Isometry, origin, dir Vec, maxToi Real, solid bool) (RayHit, bool) {
	if c.ContainsPoint(iso, origin) {
		if solid {
			return RayHit{TimeOfImpact: 0, Point: origin, Normal: Vec{}}, true
		}
		// P9: solid=false skips a body the ray starts inside of.
		return RayHit{}, false
	}
	p0, p1 := c.segment(iso)
	d := p1.Sub(p0)
	m := origin.Sub(p0)
	md := m.Dot(d)
	nd := dir.Dot(d)
	dd := d.Dot(d)

	if dd < 1e-12 {
		toi, point, normal, ok := rayCircle3(origin, dir, p0, c.Radius, maxToi)
		if !ok {
			return RayHit{}, false
		}
		return RayHit{TimeOfImpact: toi, Point: point, Normal: normal}, true
	}

	if md < 0 && md+nd < 0 {
		toi, point, normal, ok := rayCircle3(origin, dir, p0, c.Radius, maxToi)
		return RayHit{TimeOfImpact: toi, Point: point, Normal: normal}, ok
	}
	if md > dd && md+nd > dd {
		toi, point, normal, ok := rayCircle3(origin, dir, p1, c.Radius, maxToi)
		return RayHit{TimeOfImpact: toi, Point: point, Normal: normal}, ok
	}

	nn := dir.Dot(dir)
	mn := m.Dot(dir)
	a := dd*nn - nd*nd
	k := m.Dot(m) - c.Radius*c.Radius
	cc := dd*k - md*md

	if absReal(a) < 1e-12 {
		if cc > 0 {
			return RayHit{}, false
		}
		toi0, p0hit, n0, ok0 := rayCircle3(origin, dir, p0, c.Radius, maxToi)
		toi1, p1hit, n1, ok1 := rayCircle3(origin, dir, p1, c.Radius, maxToi)
		switch {
		case ok0 && (!ok1 || toi0 <= toi1):
			return RayHit{TimeOfImpact: toi0, Point: p0hit, Normal: n0}, true
		case ok1:
			return RayHit{TimeOfImpact: toi1, Point: p1hit, Normal: n1}, true
		}
		return RayHit{}, false
	}

	b := dd*mn - nd*md
	discr := b*b - a*cc
	if discr < 0 {
		return RayHit{}, false
	}
	t := (-b - Real(math.Sqrt(float64(discr)))) / a
	if t < 0 || t > maxToi {
		return RayHit{}, false
	}
	s := md + t*nd
	if s < 0 {
		toi, point, normal, ok := rayCircle3(origin, dir, p0, c.Radius, maxToi)
		return RayHit{TimeOfImpact: toi, Point: point, Normal: normal}, ok
	}
	if s > dd {
		toi, point, normal, ok := rayCircle3(origin, dir, p1, c.Radius, maxToi)
		return RayHit{TimeOfImpact: toi, Point: point, Normal: normal}, ok
	}
	point := origin.Add(dir.Mul(t))
	axisPoint := p0.Add(d.Mul(s / dd))
	normal := point.Sub(axisPoint).Normalize()
	return RayHit{TimeOfImpact: t, Point: point, Normal: normal}, true
}

func rayCircle3(origin, dir, center Vec, radius, maxToi Real) (toi Real, point, normal Vec, ok bool) {
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
		// The origin is already inside the sphere (or past it); the
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
