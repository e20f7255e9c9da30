package kine

// Raycast casts a ray from origin along dir (not required to be unit
// length; maxToi is measured in multiples of dir) against every static
// and kinematic whose mask accepts layer, returning the closest hit, if
// any (spec §4.7).
func (w *World) Raycast(origin, dir Vec, maxToi Real, layer, mask Mask, solid bool) (RayHit, ObjectID, bool) {
	if dir == (Vec{}) {
		// spec §7 condition 2: a degenerate (zero-length) ray direction
		// returns no hit, independent of P9's origin-inside behavior.
		w.logger.Warnf("kine: Raycast called with a degenerate (zero-length) dir")
		return RayHit{}, ObjectID{}, false
	}

	best := maxToi
	var bestHit RayHit
	var bestID ObjectID
	found := false

	test := func(id ObjectID, shapeLayer, shapeMask Mask, shape Shape, iso Isometry) {
		if !masksIntersect(layer, shapeMask) || !masksIntersect(mask, shapeLayer) {
			return
		}
		hit, ok := w.kernel.CastRay(shape, iso, origin, dir, best, solid)
		if ok && hit.TimeOfImpact <= best {
			best = hit.TimeOfImpact
			bestHit = hit
			bestID = id
			found = true
		}
	}

	probeBox := AABB{Min: origin.minOf(origin.Add(dir.Mul(maxToi))), Max: origin.maxOf(origin.Add(dir.Mul(maxToi)))}
	query := BoundingVolume{Box: probeBox, Layer: layer, Mask: mask}

	w.Statics.ForEachOverlap(query, func(id ObjectID, s *Static) bool {
		test(id, s.Layer, s.Mask, s.Shape, s.Iso)
		return true
	})
	w.Kinematics.ForEachOverlap(query, func(id ObjectID, k *Kinematic) bool {
		test(id, k.Layer, k.Mask, k.Shape, k.Iso)
		return true
	})

	return bestHit, bestID, found
}

// PointQueryTriggers returns every trigger (mask-gated) whose shape
// contains p (spec §4.7, "point_query_areas").
func (w *World) PointQueryTriggers(p Vec, mask Mask) []*Trigger {
	var out []*Trigger
	probe := BoundingVolume{Box: AABB{Min: p, Max: p}, Layer: mask, Mask: MaskAll}
	w.Triggers.ForEachOverlap(probe, func(_ ObjectID, t *Trigger) bool {
		if t.Shape.ContainsPoint(t.Iso, p) {
			out = append(out, t)
		}
		return true
	})
	return out
}

// ShapeQueryKinematics returns every kinematic (mask-gated) whose
// current shape overlaps shape placed at iso (spec §4.7,
// "shape_query_kinematics").
func (w *World) ShapeQueryKinematics(shape Shape, iso Isometry, layer, mask Mask) []*Kinematic {
	var out []*Kinematic
	query := BoundingVolume{Box: shape.AABB(iso), Layer: layer, Mask: mask}
	w.Kinematics.ForEachOverlap(query, func(_ ObjectID, k *Kinematic) bool {
		if _, ok := w.kernel.Intersect(shape, iso, k.Shape, k.Iso, 0); ok {
			out = append(out, k)
		}
		return true
	})
	return out
}

// ShapeQueryStatics returns every static (mask-gated) whose shape
// overlaps shape placed at iso (spec §4.7, "shape_query_statics").
func (w *World) ShapeQueryStatics(shape Shape, iso Isometry, layer, mask Mask) []*Static {
	var out []*Static
	query := BoundingVolume{Box: shape.AABB(iso), Layer: layer, Mask: mask}
	w.Statics.ForEachOverlap(query, func(_ ObjectID, s *Static) bool {
		if _, ok := w.kernel.Intersect(shape, iso, s.Shape, s.Iso, 0); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}
