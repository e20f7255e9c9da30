//go:build !dim3

package kine

import "math"

// Vec is a 2D vector. This file is the default (2D) build; compile with
// -tags dim3 for the 3D build (vec_dim3.go, mathgl-backed).
type Vec struct {
	X, Y Real
}

// Rotation is a 2D orientation: a single angle in radians. The engine
// never solves for rotation changes (spec §3) — it is only ever carried
// along and applied to direction vectors when a shape test needs it.
type Rotation struct {
	Angle Real
}

func vecZero() Vec { return Vec{} }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Mul(s Real) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Dot(o Vec) Real { return v.X*o.X + v.Y*o.Y }

// Cross2 is the scalar (z-component) cross product of two 2D vectors.
func (v Vec) Cross2(o Vec) Real { return v.X*o.Y - v.Y*o.X }

func (v Vec) LenSq() Real { return v.Dot(v) }

func (v Vec) Len() Real { return Real(math.Sqrt(float64(v.LenSq()))) }

func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < 1e-12 {
		return Vec{}
	}
	return v.Mul(1 / l)
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec) Perp() Vec { return Vec{-v.Y, v.X} }

func (v Vec) Abs() Vec {
	return Vec{Real(math.Abs(float64(v.X))), Real(math.Abs(float64(v.Y)))}
}

// AnyComponentAbove reports whether any component's magnitude exceeds
// eps — the component-wise "non-null" test §4.6 step 5d uses to decide
// whether an accumulated offset is worth applying.
func (v Vec) AnyComponentAbove(eps Real) bool {
	a := v.Abs()
	return a.X > eps || a.Y > eps
}

func (v Vec) minOf(o Vec) Vec {
	return Vec{minReal(v.X, o.X), minReal(v.Y, o.Y)}
}

func (v Vec) maxOf(o Vec) Vec {
	return Vec{maxReal(v.X, o.X), maxReal(v.Y, o.Y)}
}

// vecToArr adapts a Vec to the bvh package's dimension-agnostic
// [3]float64 box coordinate, leaving Z at zero.
func vecToArr(v Vec) [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), 0}
}

func absReal(v Real) Real {
	return Real(math.Abs(float64(v)))
}

func minReal(a, b Real) Real {
	if a < b {
		return a
	}
	return b
}

func maxReal(a, b Real) Real {
	if a > b {
		return a
	}
	return b
}

// Isometry is a position plus orientation in the build's dimension.
type Isometry struct {
	Position Vec
	Rotation Rotation
}

// NewIsometry builds an isometry from a position and a rotation angle.
func NewIsometry(pos Vec, angle Real) Isometry {
	return Isometry{Position: pos, Rotation: Rotation{Angle: angle}}
}

// Translated returns the isometry moved by a world-space vector, with
// orientation unchanged — this is the only composition the engine ever
// performs on next_isometry (spec §4.6: `next_isometry · translate(...)`).
func (iso Isometry) Translated(v Vec) Isometry {
	return Isometry{Position: iso.Position.Add(v), Rotation: iso.Rotation}
}

// rotate applies the isometry's orientation to a direction vector.
func (r Rotation) rotate(v Vec) Vec {
	if r.Angle == 0 {
		return v
	}
	s, c := math.Sincos(float64(r.Angle))
	sr, cr := Real(s), Real(c)
	return Vec{v.X*cr - v.Y*sr, v.X*sr + v.Y*cr}
}

// unrotate applies the inverse of the isometry's orientation.
func (r Rotation) unrotate(v Vec) Vec {
	return Rotation{Angle: -r.Angle}.rotate(v)
}

// toWorld maps a point in the isometry's local frame to world space.
func (iso Isometry) toWorld(local Vec) Vec {
	return iso.Position.Add(iso.Rotation.rotate(local))
}

// toLocal maps a world-space point into the isometry's local frame.
func (iso Isometry) toLocal(world Vec) Vec {
	return iso.Rotation.unrotate(world.Sub(iso.Position))
}
