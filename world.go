package kine

// World owns every body population and runs the per-tick collision
// pipeline (spec §4.6). It is not safe for concurrent use from more than
// one goroutine at a time (spec §5) — the tickLock guard only catches
// reentrant calls (e.g. a trigger callback calling Update again), not
// genuine concurrent access.
type World struct {
	Statics    *Set[*Static]
	Kinematics *Set[*Kinematic]
	Triggers   *Set[*Trigger]

	kernel  Kernel
	logger  Logger
	epsilon Real
	cast    CastOptions

	lock tickLock

	deferredRemoveKinematic []ObjectID
	deferredRemoveStatic    []ObjectID
	deferredRemoveTrigger   []ObjectID
}

// Option configures a World at construction time.
type Option func(*World)

// WithLogger overrides the default no-op Logger.
func WithLogger(l Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithKernel overrides the default geometry kernel — required if the
// caller registers Shape implementations the default kernel doesn't
// know about.
func WithKernel(k Kernel) Option {
	return func(w *World) { w.kernel = k }
}

// WithDefaultCastOptions overrides the CastOptions used internally by
// the broad/narrowphase passes (spec §4.4, §4.6).
func WithDefaultCastOptions(opts CastOptions) Option {
	return func(w *World) { w.cast = opts }
}

// NewWorld returns a World. epsilon is the margin used to fatten BVH
// boxes, the tolerance under which two contacts' times of impact sort as
// equal, and the component-wise threshold below which a resolved offset
// is not applied (spec §4.3, §4.6).
func NewWorld(epsilon Real, opts ...Option) *World {
	assertf(epsilon > 0, "kine: epsilon must be positive, got %v", epsilon)
	w := &World{
		Statics:    NewSet[*Static](epsilon),
		Kinematics: NewSet[*Kinematic](epsilon),
		Triggers:   NewSet[*Trigger](epsilon),
		kernel:     NewDefaultKernel(),
		logger:     NewNopLogger(),
		epsilon:    epsilon,
		cast:       DefaultCastOptions(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if dk, ok := w.kernel.(defaultKernel); ok {
		dk.logger = w.logger
		w.kernel = dk
	}
	if epsilon <= 0 {
		w.logger.Errorf("kine: NewWorld called with non-positive epsilon %v", epsilon)
	}
	return w
}

// AddStatic registers an immovable obstacle.
func (w *World) AddStatic(s *Static) ObjectID {
	if s.ID == (ObjectID{}) {
		s.ID = newObjectID()
	}
	w.Statics.Add(s.ID, s)
	return s.ID
}

// AddKinematic registers a moving body.
func (w *World) AddKinematic(k *Kinematic) ObjectID {
	if k.ID == (ObjectID{}) {
		k.ID = newObjectID()
	}
	if k.accum == nil {
		k.accum = &DefaultAccumulator{}
	}
	k.NextIso = k.Iso
	w.Kinematics.Add(k.ID, k)
	return k.ID
}

// AddTrigger registers a sensor volume.
func (w *World) AddTrigger(t *Trigger) ObjectID {
	if t.ID == (ObjectID{}) {
		t.ID = newObjectID()
	}
	w.Triggers.Add(t.ID, t)
	return t.ID
}

// RemoveStatic removes a static immediately.
func (w *World) RemoveStatic(id ObjectID) { w.Statics.QuickRemove(id) }

// RemoveKinematic removes a kinematic immediately.
func (w *World) RemoveKinematic(id ObjectID) { w.Kinematics.QuickRemove(id) }

// RemoveTrigger removes a trigger immediately.
func (w *World) RemoveTrigger(id ObjectID) {
	w.Triggers.QuickRemove(id)
}

// DeferRemoveKinematic queues a removal to run at the start of the next
// Update, for callers (e.g. a contact callback mid-tick) that must not
// mutate the World's sets while Update is iterating them (spec §6).
func (w *World) DeferRemoveKinematic(id ObjectID) {
	w.deferredRemoveKinematic = append(w.deferredRemoveKinematic, id)
}

// DeferRemoveStatic queues a static removal for the next Update.
func (w *World) DeferRemoveStatic(id ObjectID) {
	w.deferredRemoveStatic = append(w.deferredRemoveStatic, id)
}

// DeferRemoveTrigger queues a trigger removal for the next Update.
func (w *World) DeferRemoveTrigger(id ObjectID) {
	w.deferredRemoveTrigger = append(w.deferredRemoveTrigger, id)
}

func (w *World) drainDeferred() {
	for _, id := range w.deferredRemoveKinematic {
		w.RemoveKinematic(id)
	}
	w.deferredRemoveKinematic = w.deferredRemoveKinematic[:0]
	for _, id := range w.deferredRemoveStatic {
		w.RemoveStatic(id)
	}
	w.deferredRemoveStatic = w.deferredRemoveStatic[:0]
	for _, id := range w.deferredRemoveTrigger {
		w.RemoveTrigger(id)
	}
	w.deferredRemoveTrigger = w.deferredRemoveTrigger[:0]
}

// Update runs one tick of the six-phase pipeline: pre-update, kinematic-
// vs-static broad+narrowphase, kinematic set repartition, kinematic-vs-
// kinematic broad+narrowphase, resolution, trigger overlap dispatch
// (spec §4.6).
func (w *World) Update(dt Real) {
	if !w.lock.tryLock() {
		w.logger.Warnf("kine: reentrant World.Update call ignored")
		return
	}
	defer w.lock.unlock()

	w.drainDeferred()

	// 1. Pre-update: commit the previous tick's resolved NextIso into Iso
	// (spec §4.6 step 1, "commit k.isometry ← k.next_isometry"), then
	// stage a fresh NextIso from the newly committed Iso and reset
	// accumulators. The commit happens here, at the *start* of this tick,
	// not at the end of the previous one — P1 requires that a caller
	// inspecting Iso right after Update returns still sees the isometry
	// Update was called with.
	w.Kinematics.Iter(func(_ ObjectID, k *Kinematic) bool {
		k.Iso = k.NextIso
		if k.PreUpdate != nil {
			k.PreUpdate(k, dt)
		} else {
			k.NextIso = k.Iso.Translated(k.Velocity.Mul(dt))
		}
		k.accum.Reset()
		w.Kinematics.Repartition(k.ID)
		return true
	})

	// 2. Kinematic-vs-static broad+narrowphase. Contacts are recorded
	// into each kinematic's accumulator, not applied yet — resolution
	// happens once, in step 5, over every contact the tick picked up.
	w.Kinematics.Iter(func(_ ObjectID, k *Kinematic) bool {
		bv := k.boundingVolume()
		w.Statics.ForEachOverlap(bv, func(_ ObjectID, s *Static) bool {
			w.resolveKinematicVsStatic(k, s, dt)
			return true
		})
		return true
	})

	// 3. Repartition kinematics ahead of the kinematic-vs-kinematic pass.
	w.Kinematics.Iter(func(_ ObjectID, k *Kinematic) bool {
		w.Kinematics.Repartition(k.ID)
		return true
	})

	// 4. Kinematic-vs-kinematic broad+narrowphase, adding to the same
	// per-tick accumulators step 2 populated.
	w.Kinematics.ForEachOverlappingPair(func(_, _ ObjectID, a, b *Kinematic) bool {
		w.resolveKinematicVsKinematic(a, b, dt)
		return true
	})

	// 5. Resolution: fold every contact recorded this tick — static and
	// kinematic alike — into a single TOI-ordered offset applied to
	// NextIso, and a resolved Velocity (spec §4.6 step 5). Iso itself is
	// untouched here — it commits to this tick's resolved NextIso at the
	// start of the *next* Update (step 1), per P1/S1.
	w.Kinematics.Iter(func(_ ObjectID, k *Kinematic) bool {
		offset, vel := k.accum.Resolve(k.Velocity, k.Bounce, w.epsilon)
		if offset.AnyComponentAbove(w.epsilon) {
			k.NextIso = k.NextIso.Translated(offset.Mul(dt))
		}
		k.Velocity = vel
		w.Kinematics.Repartition(k.ID)
		return true
	})

	// 6. Trigger overlap dispatch. Per spec §4.6 step 6 / §9 resolved open
	// question, the callback fires on every tick the overlap holds, not
	// just on entry — a kinematic resting inside a trigger area gets
	// called every tick it's still there, and callers that only care
	// about entry/exit transitions are expected to debounce using their
	// own Payload.
	w.Kinematics.Iter(func(_ ObjectID, k *Kinematic) bool {
		bv := k.boundingVolume()
		w.Triggers.ForEachOverlap(bv, func(_ ObjectID, trig *Trigger) bool {
			if _, ok := w.kernel.Intersect(k.Shape, k.Iso, trig.Shape, trig.Iso, 0); ok && trig.Callback != nil {
				trig.Callback(trig, k)
			}
			return true
		})
		return true
	})
}
