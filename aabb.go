package kine

// AABB is an axis-aligned bounding box (spec §3, "Bounding volume").
type AABB struct {
	Min, Max Vec
}

// mergeAABB returns the union of two boxes.
func mergeAABB(a, b AABB) AABB {
	return AABB{Min: a.Min.minOf(b.Min), Max: a.Max.maxOf(b.Max)}
}

// extent is the per-axis size of the box (Max - Min).
func (a AABB) extent() Vec {
	return a.Max.Sub(a.Min)
}

// intersects reports plain AABB-AABB overlap, ignoring layer/mask.
func (a AABB) intersects(b AABB) bool {
	return aabbAxesOverlap(a, b)
}

// containsPoint reports whether p lies within the box.
func (a AABB) containsPoint(p Vec) bool {
	return aabbContainsPoint(a, p)
}

// BoundingVolume is an AABB augmented with (layer, mask) bitfields — the
// unit the BVH-backed Set actually stores and queries (spec §3, §4.3).
type BoundingVolume struct {
	Box   AABB
	Layer Mask
	Mask  Mask
}

// MergeBoundingVolume unions two boxes and ORs both bitfields, used by
// the BVH to refit interior nodes (spec §4.3).
func MergeBoundingVolume(a, b BoundingVolume) BoundingVolume {
	return BoundingVolume{
		Box:   mergeAABB(a.Box, b.Box),
		Layer: a.Layer | b.Layer,
		Mask:  a.Mask | b.Mask,
	}
}

// Area returns a monotone-under-merge size heuristic for the volume
// (surface area in 3D, perimeter in 2D — either is acceptable per spec
// §4.3 as long as it grows when boxes merge). Used by the BVH as its
// refit/insert cost heuristic.
func (bv BoundingVolume) Area() Real {
	return boundingVolumeArea(bv.Box)
}

// OverlapsBoundingVolume implements spec §3's symmetric layer/mask gated AABB test:
// (a.layer & b.mask) != 0 && (a.mask & b.layer) != 0 && aabb overlap.
func OverlapsBoundingVolume(a, b BoundingVolume) bool {
	if !masksIntersect(a.Layer, b.Mask) || !masksIntersect(a.Mask, b.Layer) {
		return false
	}
	return a.Box.intersects(b.Box)
}
