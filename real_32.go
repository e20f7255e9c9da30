//go:build !real64

package kine

// Real is the floating point width the engine is built for. This file
// selects the default, single-precision build; compile with -tags real64
// to switch every Vec/Isometry/AABB computation to float64 (real_64.go).
type Real = float32

const realEpsilonScale Real = 1
