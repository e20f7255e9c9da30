package kine

import "github.com/google/uuid"

// ObjectID names a body for debugging and for deferred removal by
// identity (spec §3, §6). It has no meaning beyond equality.
type ObjectID = uuid.UUID

// newObjectID mints a fresh debug identifier (spec §9 encourages one for
// logging/tracing, mirroring the teacher's entity IDs).
func newObjectID() ObjectID { return uuid.New() }

// Static is an immovable obstacle: shape, isometry, (layer, mask), and a
// caller-owned payload (spec §4.2).
type Static struct {
	ID      ObjectID
	Shape   Shape
	Iso     Isometry
	Layer   Mask
	Mask    Mask
	Payload any
}

func (s *Static) boundingVolume() BoundingVolume {
	return BoundingVolume{Box: s.Shape.AABB(s.Iso), Layer: s.Layer, Mask: s.Mask}
}

// Trigger is a sensor volume that never resolves contacts, only reports
// overlap to Callback (spec §4.2, §4.6 trigger phase). Per spec §9's
// resolved open question, Callback fires on every tick a kinematic is
// still overlapping — not just on entry — so a callback that only cares
// about entry/exit transitions must debounce using its own Payload.
type Trigger struct {
	ID       ObjectID
	Shape    Shape
	Iso      Isometry
	Layer    Mask
	Mask     Mask
	Payload  any
	Callback TriggerCallback
}

// TriggerCallback is invoked once per kinematic overlapping this trigger,
// every tick the overlap persists (spec §4.6, §6 "trigger callback
// signature").
type TriggerCallback func(t *Trigger, k *Kinematic)

func (t *Trigger) boundingVolume() BoundingVolume {
	return BoundingVolume{Box: t.Shape.AABB(t.Iso), Layer: t.Layer, Mask: t.Mask}
}

// Kinematic is a moving body driven by velocity and resolved against the
// world each tick (spec §4.2). Velocity and Weight are read by the
// resolver (spec §4.6 step 5); NextIso is staged by the pre-update hook
// and the per-phase narrowphase/resolution steps, and is committed to Iso
// at the start of the next Update, not at the end of the current one.
type Kinematic struct {
	ID      ObjectID
	Shape   Shape
	Iso     Isometry
	NextIso Isometry
	Layer   Mask
	Mask    Mask
	Payload any

	// Velocity is the world-space displacement rate applied by the
	// default pre-update step: NextIso = Iso.Translated(Velocity * dt)
	// (spec §4.6 step 1, `next_isometry ← next_isometry · translate(offset · Δt)`).
	// PreUpdate, if set, overrides this.
	Velocity Vec
	Weight   Real

	// Bounce, when true, adds n*(d*r) to the velocity for each contact
	// whose normal n the velocity does not run into (d = n·v <= 0). The
	// component running into a contact (d > 0) is cut whether or not
	// Bounce is set (spec §4.6 step 5).
	Bounce bool

	// PreUpdate lets a caller compute this tick's NextIso directly
	// instead of relying on Velocity (spec §4.6 step 1). Optional.
	PreUpdate func(k *Kinematic, dt Real)

	accum Accumulator
}

// SetAccumulator installs a custom Accumulator for this kinematic,
// replacing the DefaultAccumulator installed when the body is added to a
// World (spec §4.1/§9: accumulators are part of the public, pluggable
// contract). Call before the body's first Update to take effect from
// tick one; implementations must preserve P1 and P2.
func (k *Kinematic) SetAccumulator(a Accumulator) {
	k.accum = a
}

func (k *Kinematic) boundingVolume() BoundingVolume {
	return BoundingVolume{Box: k.Shape.SweptAABB(k.Iso, k.NextIso), Layer: k.Layer, Mask: k.Mask}
}
