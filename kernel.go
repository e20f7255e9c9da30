package kine

// Contact is a single narrowphase result between two shapes (spec §4.4,
// §4.6). Normal points from shape A towards shape B. Depth is positive
// when the shapes overlap and negative when they are separated by at
// most the query's target distance.
type Contact struct {
	PointA, PointB Vec
	Normal         Vec
	Depth          Real
}

// Swapped returns the same contact seen from B's point of view.
func (c Contact) Swapped() Contact {
	return Contact{PointA: c.PointB, PointB: c.PointA, Normal: c.Normal.Mul(-1), Depth: c.Depth}
}

// CastOptions tunes the continuous shape-cast narrowphase (spec §4.4).
type CastOptions struct {
	// TargetDistance stops conservative advancement once the shapes are
	// within this separation — the narrowphase's equivalent of a
	// contact margin. Zero means "touching".
	TargetDistance Real
	// MaxTimeOfImpact bounds the search to t ∈ [0, MaxTimeOfImpact].
	MaxTimeOfImpact Real
	// StopAtPenetration, when true, reports a hit at t=0 for shapes that
	// already overlap (or are within TargetDistance) when the cast
	// starts; when false, such a cast reports no hit.
	StopAtPenetration bool
}

// DefaultCastOptions mirrors the values every spec scenario uses when
// none are supplied explicitly.
func DefaultCastOptions() CastOptions {
	return CastOptions{TargetDistance: 0, MaxTimeOfImpact: 1, StopAtPenetration: true}
}

// CastHit is the result of a continuous shape cast (spec §4.4).
type CastHit struct {
	TimeOfImpact Real
	Contact      Contact
}

// RayHit is the result of a raycast against a single shape (spec §4.7).
type RayHit struct {
	TimeOfImpact Real
	Point        Vec
	Normal       Vec
}

// Kernel is the geometry backend the world and query surface delegate
// all pairwise shape math to (spec §4.4's "geometry kernel"). The
// default implementation (kernel_dim2.go / kernel_dim3.go) covers every
// Shape this package ships; a caller with custom shapes can supply their
// own Kernel to World via WithKernel.
type Kernel interface {
	// Intersect returns the contact between a and b if they are
	// overlapping or within margin of each other, and ok=false
	// otherwise.
	Intersect(a Shape, isoA Isometry, b Shape, isoB Isometry, margin Real) (Contact, bool)

	// CastShapes sweeps a from isoA0 along velA and b from isoB0 along
	// velB and returns the first impact within opts, or ok=false if none
	// occurs before opts.MaxTimeOfImpact.
	CastShapes(a Shape, isoA0 Isometry, velA Vec, b Shape, isoB0 Isometry, velB Vec, opts CastOptions) (CastHit, bool)

	// CastRay intersects a ray (origin, dir, maxToi) against a single
	// shape at iso. solid controls whether an origin that starts inside
	// the shape counts as an immediate hit (spec §4.7, P9).
	CastRay(shape Shape, iso Isometry, origin, dir Vec, maxToi Real, solid bool) (RayHit, bool)
}

// defaultKernel is the package-provided Kernel, built from the
// dimension-specific distance/cast/ray primitives in kernel_dim2.go /
// kernel_dim3.go. logger receives the "unsupported geometry pair"
// diagnostic (spec §7) instead of the kernel panicking; World rewires it
// to match whatever Logger the World was constructed with.
type defaultKernel struct {
	logger Logger
}

// NewDefaultKernel returns the Kernel used when World is constructed
// without WithKernel.
func NewDefaultKernel() Kernel { return defaultKernel{logger: NewNopLogger()} }

func (k defaultKernel) Intersect(a Shape, isoA Isometry, b Shape, isoB Isometry, margin Real) (Contact, bool) {
	return shapePairContact(a, isoA, b, isoB, margin, k.logger)
}

func (k defaultKernel) CastShapes(a Shape, isoA0 Isometry, velA Vec, b Shape, isoB0 Isometry, velB Vec, opts CastOptions) (CastHit, bool) {
	return castShapesConservativeAdvancement(a, isoA0, velA, b, isoB0, velB, opts, k.logger)
}

func (k defaultKernel) CastRay(shape Shape, iso Isometry, origin, dir Vec, maxToi Real, solid bool) (RayHit, bool) {
	return castRayShape(shape, iso, origin, dir, maxToi, solid, k.logger)
}
