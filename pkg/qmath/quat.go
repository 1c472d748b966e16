// Package qmath provides the quaternion algebra used to correct bone rotations.
//
// Two Euler conversions exist side by side. FromEuler is a portable 3-2-1
// derivation. HostEuler reproduces the host engine's own convention (rotate
// about Z, then X, then Y) so that authored offsets look the same as rotations
// the host applies natively.
package qmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// Quat is a rotation quaternion in (x, y, z, w) order.
// Unit norm is expected but not enforced.
type Quat struct {
	X, Y, Z, W float64
}

// Identity returns the identity rotation.
func Identity() Quat {
	return Quat{W: 1}
}

func (q Quat) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func fromNumber(n quat.Number) Quat {
	return Quat{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// Mgl converts q to an mgl64 quaternion.
func (q Quat) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// FromMgl converts an mgl64 quaternion.
func FromMgl(m mgl64.Quat) Quat {
	return Quat{X: m.V[0], Y: m.V[1], Z: m.V[2], W: m.W}
}

// Product returns the Hamilton product q*p.
func Product(q, p Quat) Quat {
	return fromNumber(quat.Mul(q.number(), p.number()))
}

// Sum adds q and p component-wise. The result is not a rotation in general.
func Sum(q, p Quat) Quat {
	return fromNumber(quat.Add(q.number(), p.number()))
}

// Inverse returns conj(q)/|q|^2. The zero quaternion yields non-finite
// components.
func Inverse(q Quat) Quat {
	return fromNumber(quat.Inv(q.number()))
}

// Norm returns the Euclidean norm of the 4-tuple.
func Norm(q Quat) float64 {
	return quat.Abs(q.number())
}

// Normalize scales q to unit norm. The zero quaternion maps to Identity.
func Normalize(q Quat) Quat {
	n := Norm(q)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Identity()
	}
	return fromNumber(quat.Scale(1/n, q.number()))
}

// FromAxisAngle builds a rotation of angle radians about axis.
// The axis is assumed to be unit length.
func FromAxisAngle(axis mgl64.Vec3, angle float64) Quat {
	return FromMgl(mgl64.QuatRotate(angle, axis))
}

// FromEuler converts degrees to a quaternion with the 3-2-1 sequence,
// equivalent to Rz(z) * Ry(y) * Rx(x).
func FromEuler(x, y, z float64) Quat {
	sx, cx := math.Sincos(mgl64.DegToRad(x) / 2)
	sy, cy := math.Sincos(mgl64.DegToRad(y) / 2)
	sz, cz := math.Sincos(mgl64.DegToRad(z) / 2)

	return Quat{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// HostEuler converts degrees using the host engine convention:
// Z first, then X, then Y, i.e. Ry(y) * Rx(x) * Rz(z).
func HostEuler(x, y, z float64) Quat {
	qy := mgl64.QuatRotate(mgl64.DegToRad(y), mgl64.Vec3{0, 1, 0})
	qx := mgl64.QuatRotate(mgl64.DegToRad(x), mgl64.Vec3{1, 0, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(z), mgl64.Vec3{0, 0, 1})
	return FromMgl(qy.Mul(qx).Mul(qz))
}

// RotateByEulerExplicit returns q * FromEuler(x, y, z).
func RotateByEulerExplicit(q Quat, x, y, z float64) Quat {
	return Product(q, FromEuler(x, y, z))
}

// RotateByEulerHost returns HostEuler(x, y, z) * q. This is the variant used
// on the per-bone path.
func RotateByEulerHost(q Quat, x, y, z float64) Quat {
	return Product(HostEuler(x, y, z), q)
}
