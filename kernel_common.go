package kine

// closestSegSeg finds the closest points c1 on segment p1-q1 and c2 on
// segment p2-q2 (Ericson, "Real-Time Collision Detection" §5.1.9). It
// works unchanged in 2D and 3D since it only uses Vec's Add/Sub/Mul/Dot,
// and is the single geometric primitive every shape pair below is built
// from.
func closestSegSeg(p1, q1, p2, q2 Vec) (c1, c2 Vec) {
	const epsilon = 1e-9

	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t Real

	if a <= epsilon && e <= epsilon {
		return p1, p2
	}
	if a <= epsilon {
		s = 0
		t = clampReal(f/e, 0, 1)
	} else {
		c := d1.Dot(r)
		if e <= epsilon {
			t = 0
			s = clampReal(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = clampReal((b*f-c*e)/denom, 0, 1)
			} else {
				s = 0
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clampReal(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = clampReal((b-c)/a, 0, 1)
			}
		}
	}

	c1 = p1.Add(d1.Mul(s))
	c2 = p2.Add(d2.Mul(t))
	return
}

// closestPointOnSegment returns the point on segment p-q closest to x.
func closestPointOnSegment(p, q, x Vec) Vec {
	d := q.Sub(p)
	l2 := d.LenSq()
	if l2 < 1e-12 {
		return p
	}
	t := clampReal(x.Sub(p).Dot(d)/l2, 0, 1)
	return p.Add(d.Mul(t))
}

// capsuleCapsuleContact computes the contact (or near-contact, within
// margin) between two capsules. Unchanged between 2D and 3D builds.
func capsuleCapsuleContact(a Capsule, isoA Isometry, b Capsule, isoB Isometry, margin Real) (Contact, bool) {
	pa0, pa1 := a.segment(isoA)
	pb0, pb1 := b.segment(isoB)
	ca, cb := closestSegSeg(pa0, pa1, pb0, pb1)

	d := cb.Sub(ca)
	dist := d.Len()
	var normal Vec
	if dist < 1e-9 {
		normal = Vec{X: 1}
	} else {
		normal = d.Mul(1 / dist)
	}
	depth := a.Radius + b.Radius - dist
	if depth < -margin {
		return Contact{}, false
	}
	return Contact{
		PointA: ca.Add(normal.Mul(a.Radius)),
		PointB: cb.Sub(normal.Mul(b.Radius)),
		Normal: normal,
		Depth:  depth,
	}, true
}

// castShapesConservativeAdvancement sweeps two moving shapes forward in
// time using conservative advancement: at each step, the current
// separation (minus target distance) bounds how far the pair can safely
// advance without risking tunnelling through each other, since neither
// shape can close more than the relative speed allows in that time.
// Dimension-agnostic: it only calls shapePairContact and Vec ops.
func castShapesConservativeAdvancement(a Shape, isoA0 Isometry, velA Vec, b Shape, isoB0 Isometry, velB Vec, opts CastOptions, logger Logger) (CastHit, bool) {
	relVel := velA.Sub(velB)
	relSpeed := relVel.Len()

	t := Real(0)
	isoA, isoB := isoA0, isoB0
	const maxIterations = 32
	for i := 0; i < maxIterations; i++ {
		contact, _ := shapePairContact(a, isoA, b, isoB, largeMargin(), logger)
		sep := -contact.Depth
		if sep <= opts.TargetDistance {
			if t == 0 && !opts.StopAtPenetration {
				return CastHit{}, false
			}
			return CastHit{TimeOfImpact: t, Contact: contact}, true
		}
		if relSpeed < 1e-9 {
			return CastHit{}, false
		}
		advance := (sep - opts.TargetDistance) / relSpeed
		if advance < 1e-6 {
			advance = 1e-6
		}
		t += advance
		if t >= opts.MaxTimeOfImpact {
			return CastHit{}, false
		}
		isoA = isoA0.Translated(velA.Mul(t))
		isoB = isoB0.Translated(velB.Mul(t))
	}
	return CastHit{}, false
}

func largeMargin() Real { return Real(1e18) }
