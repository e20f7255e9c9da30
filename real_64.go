//go:build real64

package kine

// Real is the floating point width the engine is built for. This file is
// compiled with -tags real64 and switches every Vec/Isometry/AABB
// computation to double precision.
type Real = float64

const realEpsilonScale Real = 1
