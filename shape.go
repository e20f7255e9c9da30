package kine

// Shape is the engine's view of spec §3's "opaque handle to a convex or
// composite geometry primitive". Shapes are immutable and meant to be
// shared read-only across many bodies (spec §3, §9 "Shared shapes,
// shared bodies"). The required capabilities mirror spec §4.4 exactly:
// AABB at an isometry, swept AABB between two isometries, and point
// containment live on the shape itself; contact/cast/ray queries between
// two shapes live on the Kernel (kernel.go), since they are inherently
// pairwise.
type Shape interface {
	// AABB computes the shape's bounding box at a single isometry.
	AABB(iso Isometry) AABB

	// SweptAABB computes a conservative bounding box for the shape
	// moving from iso0 to iso1 — used for kinematic broadphase (spec §3,
	// Kinematic body AABB = shape.swept_aabb(iso, next_iso)).
	SweptAABB(iso0, iso1 Isometry) AABB

	// ContainsPoint reports whether p (world space) lies within the
	// shape placed at iso.
	ContainsPoint(iso Isometry, p Vec) bool

	// kind tags the concrete shape. Unexported, so only this package's
	// shapes implement Shape. The default Kernel's pairwise dispatch
	// (kernel_dim2.go / kernel_dim3.go) switches on the concrete type
	// and does not call it.
	kind() shapeKind
}

// shapeKind tags a concrete Shape. Each dimension build defines its own
// small set of constants; the numbering has no meaning across builds.
type shapeKind int

// sweptAABB is the shared default for SweptAABB: the union of the two
// single-isometry boxes. This is conservative (spec §4.4) for every
// convex shape, so every concrete shape below delegates to it.
func sweptAABB(s Shape, iso0, iso1 Isometry) AABB {
	return mergeAABB(s.AABB(iso0), s.AABB(iso1))
}
