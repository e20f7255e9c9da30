package kine

import "sort"

// contactRecord is one narrowphase hit recorded against a kinematic
// this tick, carried in the exact terms §4.6 step 5 resolves with: the
// contact normal pointing away from this kinematic, its time of impact,
// and its weight ratio (1 against a static, `other/(self+other)` against
// another kinematic).
type contactRecord struct {
	normal Vec
	toi    Real
	ratio  Real
}

// Accumulator collects every contact a kinematic picks up on a tick
// (from both the kinematic-vs-static and kinematic-vs-kinematic passes)
// and reduces them, in one combined TOI-ordered pass, to a position
// offset and a resolved velocity (spec §4.6 step 5). A World uses one
// Accumulator per Kinematic, reset once per tick — not once per phase —
// so every contact the kinematic picked up that tick is resolved
// together.
//
// A default weighted-push-back implementation (DefaultAccumulator) is
// provided, but per spec §4.1/§9 accumulators are pluggable: callers
// implementing an alternative response model (sliding-along-walls,
// step-up, ...) supply their own Accumulator via Kinematic.SetAccumulator,
// as long as it preserves P1 and P2.
type Accumulator interface {
	// Reset starts a new tick; called once per kinematic in phase 1
	// (spec §4.6 step 1).
	Reset()
	// AddContact records one narrowphase result: normal points away from
	// the owning kinematic, toi is its time of impact, and weightRatio is
	// this kinematic's share of the contact's push-back (1 against a
	// static, other/(self+other) against another kinematic).
	AddContact(normal Vec, toi, weightRatio Real)
	// Resolve folds every contact recorded since Reset into a position
	// offset and a resolved velocity, given the kinematic's current
	// velocity, its bounce flag, and the world's epsilon (spec §4.6 step 5).
	Resolve(velocity Vec, bounce bool, eps Real) (offset, resolvedVelocity Vec)
}

// DefaultAccumulator implements §4.6 step 5 literally: contacts are
// sorted by time of impact, then each contributes
// `offset -= n*(t*r)`, nearest contact first. A velocity component
// running into the contact (n·v > 0) is cut by `n*(d*r)`; otherwise,
// when bounce is set, `n*(d*r)` is added instead.
type DefaultAccumulator struct {
	contacts []contactRecord
}

func (a *DefaultAccumulator) Reset() {
	a.contacts = a.contacts[:0]
}

func (a *DefaultAccumulator) AddContact(normal Vec, toi, weightRatio Real) {
	a.contacts = append(a.contacts, contactRecord{normal: normal, toi: toi, ratio: weightRatio})
}

func (a *DefaultAccumulator) Resolve(velocity Vec, bounce bool, eps Real) (Vec, Vec) {
	if len(a.contacts) == 0 {
		return Vec{}, velocity
	}

	sort.SliceStable(a.contacts, func(i, j int) bool {
		return a.contacts[i].toi < a.contacts[j].toi-eps
	})

	offset := Vec{}
	for _, c := range a.contacts {
		n, r, t := c.normal, c.ratio, c.toi

		offset = offset.Sub(n.Mul(t * r))

		d := n.Dot(velocity)
		if d > 0 {
			velocity = velocity.Sub(n.Mul(d * r))
		} else if bounce {
			velocity = velocity.Add(n.Mul(d * r))
		}
	}
	return offset, velocity
}
