package kine

// castOptionsForTick returns w.cast with MaxTimeOfImpact overridden to
// this tick's Δt, per spec §4.6 steps 2/4 ("opts.max_time_of_impact =
// Δt"): the cast options are fixed at World construction, but the time
// bound is a per-tick quantity, not a construction-time constant.
func (w *World) castOptionsForTick(dt Real) CastOptions {
	opts := w.cast
	opts.MaxTimeOfImpact = dt
	return opts
}

// resolveKinematicVsStatic sweeps k's motion against s and, on a hit,
// records the contact's time of impact and normal into k's accumulator
// with a weight ratio of 1 — a static has no Weight of its own and
// always claims the full push-back (spec §4.6 step 2, "canonical
// weight-ratio definition"). Per spec §4.6 step 2 ("cast_shapes(k.iso,
// k.vel, k.shape, s.iso, 0, s.shape, opts)"), the raw velocity is passed,
// not a pre-scaled displacement — the tick length lives in opts.
func (w *World) resolveKinematicVsStatic(k *Kinematic, s *Static, dt Real) {
	hit, ok := w.kernel.CastShapes(k.Shape, k.Iso, k.Velocity, s.Shape, s.Iso, vecZero(), w.castOptionsForTick(dt))
	if !ok {
		return
	}
	k.accum.AddContact(hit.Contact.Normal, hit.TimeOfImpact, 1)
}

// resolveKinematicVsKinematic sweeps both a's and b's velocities against
// each other and, on a hit, records the contact into both accumulators —
// a sees the normal pointing towards b, b sees it swapped — each
// weighted by the other body's share of the pair's total weight, so the
// heavier body yields less ground (spec §4.6 step 4, "canonical
// weight-ratio definition").
func (w *World) resolveKinematicVsKinematic(a, b *Kinematic, dt Real) {
	hit, ok := w.kernel.CastShapes(a.Shape, a.Iso, a.Velocity, b.Shape, b.Iso, b.Velocity, w.castOptionsForTick(dt))
	if !ok {
		return
	}

	assertf(a.Weight > 0 && b.Weight > 0, "kine: kinematic Weight must be positive (a=%v, b=%v)", a.Weight, b.Weight)
	totalWeight := a.Weight + b.Weight
	if a.Weight <= 0 || b.Weight <= 0 {
		w.logger.Errorf("kine: non-positive Weight (a=%v, b=%v), defaulting to equal weighting", a.Weight, b.Weight)
		totalWeight = 2
		a.Weight, b.Weight = 1, 1
	}
	aRatio := b.Weight / totalWeight
	bRatio := a.Weight / totalWeight

	a.accum.AddContact(hit.Contact.Normal, hit.TimeOfImpact, aRatio)
	b.accum.AddContact(hit.Contact.Swapped().Normal, hit.TimeOfImpact, bRatio)
}
