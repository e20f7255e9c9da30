//go:build dim3

package kine

func aabbAxesOverlap(a, b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func aabbContainsPoint(a AABB, p Vec) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// boundingVolumeArea returns the box's surface area, the BVH's monotone-
// under-merge insert/refit heuristic (spec §4.3).
func boundingVolumeArea(box AABB) Real {
	e := box.extent()
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}
