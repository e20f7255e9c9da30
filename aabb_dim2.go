//go:build !dim3

package kine

func aabbAxesOverlap(a, b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

func aabbContainsPoint(a AABB, p Vec) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// boundingVolumeArea returns the box's perimeter, used as the BVH's
// monotone-under-merge insert/refit heuristic in the 2D build (spec §4.3
// allows either surface area or a 2D analogue).
func boundingVolumeArea(box AABB) Real {
	e := box.extent()
	return 2 * (e.X + e.Y)
}
