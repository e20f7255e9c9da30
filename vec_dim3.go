//go:build dim3 && !real64

package kine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec is a 3D vector. This file is the 3D build (-tags dim3) at the
// default real width; see vec_dim3_64.go for the 3D+real64 combination,
// which mathgl's hardcoded float32/float64 package split can't serve
// directly without a second adapter (see DESIGN.md).
type Vec struct {
	X, Y, Z Real
}

// Rotation is a 3D orientation, carried along unmodified by collision
// response (spec §3) and never solved for by the engine itself. It is
// backed by mathgl's quaternion, the same type the teacher uses for
// rigid-body orientation (physics.go's QuatToMat3).
type Rotation struct {
	q mgl32.Quat
}

func vecZero() Vec { return Vec{} }

func (v Vec) toMgl() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }
func fromMgl(m mgl32.Vec3) Vec  { return Vec{m[0], m[1], m[2]} }

func (v Vec) Add(o Vec) Vec  { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec) Sub(o Vec) Vec  { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec) Mul(s Real) Vec { return Vec{v.X * s, v.Y * s, v.Z * s} }
func (v Vec) Dot(o Vec) Real { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross3 is the 3D vector cross product.
func (v Vec) Cross3(o Vec) Vec { return fromMgl(v.toMgl().Cross(o.toMgl())) }

func (v Vec) LenSq() Real { return v.Dot(v) }
func (v Vec) Len() Real   { return Real(math.Sqrt(float64(v.LenSq()))) }

func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < 1e-12 {
		return Vec{}
	}
	return v.Mul(1 / l)
}

func (v Vec) Abs() Vec {
	return Vec{absReal(v.X), absReal(v.Y), absReal(v.Z)}
}

func (v Vec) minOf(o Vec) Vec {
	return Vec{minReal(v.X, o.X), minReal(v.Y, o.Y), minReal(v.Z, o.Z)}
}

func (v Vec) maxOf(o Vec) Vec {
	return Vec{maxReal(v.X, o.X), maxReal(v.Y, o.Y), maxReal(v.Z, o.Z)}
}

// AnyComponentAbove reports whether any component's magnitude exceeds
// eps — the component-wise "non-null" test §4.6 step 5d uses to decide
// whether an accumulated offset is worth applying.
func (v Vec) AnyComponentAbove(eps Real) bool {
	a := v.Abs()
	return a.X > eps || a.Y > eps || a.Z > eps
}

// vecToArr adapts a Vec to the bvh package's dimension-agnostic
// [3]float64 box coordinate.
func vecToArr(v Vec) [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}

func absReal(r Real) Real {
	if r < 0 {
		return -r
	}
	return r
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

// NewIsometry builds an isometry from a position and an axis-angle
// rotation (angle in radians around axis).
func NewIsometry(pos Vec, angle Real, axis Vec) Isometry {
	return Isometry{Position: pos, Rotation: Rotation{q: mgl32.QuatRotate(angle, axis.toMgl())}}
}

// Translated returns the isometry moved by a world-space vector, with
// orientation unchanged (spec §4.6: `next_isometry · translate(...)`).
func (iso Isometry) Translated(v Vec) Isometry {
	return Isometry{Position: iso.Position.Add(v), Rotation: iso.Rotation}
}

func (r Rotation) rotate(v Vec) Vec {
	return fromMgl(r.q.Rotate(v.toMgl()))
}

func (r Rotation) unrotate(v Vec) Vec {
	return fromMgl(r.q.Conjugate().Rotate(v.toMgl()))
}

func (iso Isometry) toWorld(local Vec) Vec {
	return iso.Position.Add(iso.Rotation.rotate(local))
}

func (iso Isometry) toLocal(world Vec) Vec {
	return iso.Rotation.unrotate(world.Sub(iso.Position))
}
