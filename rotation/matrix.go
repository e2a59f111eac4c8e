package rotation

import "math"

// Mat3 is a row-major 3x3 rotation matrix.
type Mat3 [3][3]float64

// IdentityMat3 returns the identity matrix.
func IdentityMat3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationX returns the rotation matrix about the X-axis by angle radians.
func RotationX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns the rotation matrix about the Y-axis by angle radians.
func RotationY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns the rotation matrix about the Z-axis by angle radians.
func RotationZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Mul returns m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// MulVec returns m applied to p as a column vector.
func (m Mat3) MulVec(p Point3) Point3 {
	return Point3{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}

// Transpose returns the transpose of m. For a rotation matrix this is its
// inverse, so the alignment chain below never needs a numeric inversion.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// MatrixRotate rotates p about the axis by angle radians using a chain of
// affine transformations: translate the axis start to the origin, align the
// axis with Z by a rotation about Y then one about X, rotate about Z, and
// reverse the alignment and translation.
func MatrixRotate(p Point3, axis Axis, angle float64) Point3 {
	out, _ := matrixRotate(p, axis, angle, false)
	return out
}

// MatrixRotateSteps is MatrixRotate plus the labeled intermediate point of
// every stage of the derivation. The final step's point always equals the
// returned point.
func MatrixRotateSteps(p Point3, axis Axis, angle float64) (Point3, []Step) {
	return matrixRotate(p, axis, angle, true)
}

func matrixRotate(p Point3, axis Axis, angle float64, record bool) (Point3, []Step) {
	var steps []Step
	if record {
		steps = make([]Step, 0, 8)
		steps = append(steps, Step{StepOriginalPoint, p})
	}

	cur := p.Sub(axis.Start)
	if record {
		steps = append(steps, Step{StepTranslatedToOrigin, cur})
	}

	u := axis.UnitDirection()
	zAxis := Point3{0, 0, 1}

	// First alignment: rotate about Y to bring the axis into the YZ-plane.
	// Skipped when the XZ-plane projection vanishes (axis parallel to Y),
	// where the angle below degenerates.
	ry := IdentityMat3()
	proj := Point3{u.X, 0, u.Z}
	if proj.Norm() > ProjectionEpsilon {
		pn := proj.Unit()
		alpha := math.Atan2(pn.Cross(zAxis).Y, pn.Dot(zAxis))
		ry = RotationY(alpha)
		cur = ry.MulVec(cur)
		if record {
			steps = append(steps, Step{StepRotatedToYZPlane, cur})
		}
	}

	// Second alignment: rotate about X to land the axis on Z.
	n := ry.MulVec(u)
	beta := math.Atan2(n.Cross(zAxis).X, n.Dot(zAxis))
	rx := RotationX(beta)
	cur = rx.MulVec(cur)
	if record {
		steps = append(steps, Step{StepAlignedWithZAxis, cur})
	}

	// The rotation itself.
	cur = RotationZ(angle).MulVec(cur)
	if record {
		steps = append(steps, Step{StepRotatedAroundZAxis, cur})
	}

	// Unwind the alignment. Rotation inverses are transposes.
	cur = rx.Transpose().MulVec(cur)
	if record {
		steps = append(steps, Step{StepReversedXAlignment, cur})
	}

	cur = ry.Transpose().MulVec(cur)
	if record {
		steps = append(steps, Step{StepReversedYAlignment, cur})
	}

	cur = cur.Add(axis.Start)
	if record {
		steps = append(steps, Step{StepFinalRotatedPoint, cur})
	}

	return cur, steps
}
