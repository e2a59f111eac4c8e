package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// RotationQuaternion builds the unit quaternion encoding a rotation about
// the axis by angle radians: cos(θ/2) + sin(θ/2)·(unit axis direction).
// The result is renormalized to guard against floating-point drift.
func RotationQuaternion(axis Axis, angle float64) quat.Number {
	u := axis.UnitDirection()
	s := math.Sin(angle / 2)
	q := quat.Number{
		Real: math.Cos(angle / 2),
		Imag: u.X * s,
		Jmag: u.Y * s,
		Kmag: u.Z * s,
	}
	return quat.Scale(1/quat.Abs(q), q)
}

// QuaternionRotate rotates p about the axis by angle radians via quaternion
// conjugation: the translated point, embedded as a pure quaternion, is
// multiplied by the rotation quaternion on the left and its conjugate on
// the right. The scalar part of the product vanishes and is discarded.
func QuaternionRotate(p Point3, axis Axis, angle float64) Point3 {
	q := RotationQuaternion(axis, angle)

	t := p.Sub(axis.Start)
	pq := quat.Number{Imag: t.X, Jmag: t.Y, Kmag: t.Z}

	// q has unit norm, so its conjugate is its inverse.
	r := quat.Mul(q, pq)
	r = quat.Mul(r, quat.Conj(q))

	return Point3{r.Imag, r.Jmag, r.Kmag}.Add(axis.Start)
}
