// Package kine is a lightweight kinematic collision engine: swept-AABB
// broadphase, continuous shape-cast narrowphase, weighted contact
// resolution, trigger overlap dispatch, and a BVH-backed query surface
// (raycast, point query, shape query) over static, kinematic, and
// trigger bodies.
//
// The package builds for 2D by default; compile with -tags dim3 for 3D.
// Real width defaults to float32; -tags real64 switches to float64.
// Bitmask width defaults to uint64; -tags mask32 switches to uint32.
// The tick-reentrancy guard defaults to a plain bool; -tags atomic
// switches to a sync/atomic-backed one. -tags debug enables internal
// assertions. See SPEC_FULL.md §7 for the full build matrix.
package kine
