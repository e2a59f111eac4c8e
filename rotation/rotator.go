// =======================
// rotation/rotator.go
// =======================

package rotation

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// Rotator binds a validated axis to a rotation method. It is the boundary
// in front of the pure rotation functions: construction rejects the
// degenerate inputs the functions themselves silently absorb.
type Rotator struct {
	axis   Axis
	method Method
}

// NewRotator returns a Rotator for the given axis and method. The axis
// endpoints must differ and the method must be known.
func NewRotator(axis Axis, method Method) (*Rotator, error) {
	if axis.IsDegenerate() {
		return nil, fmt.Errorf("axis start and end points must be different")
	}
	if method != MethodMatrix && method != MethodQuaternion {
		return nil, fmt.Errorf("unsupported method: %q. Supported: %s, %s",
			method, MethodMatrix, MethodQuaternion)
	}
	return &Rotator{axis: axis, method: method}, nil
}

// Rotate rotates p by angle radians about the configured axis using the
// configured method.
func (r *Rotator) Rotate(p Point3, angle float64) Point3 {
	if r.method == MethodQuaternion {
		return QuaternionRotate(p, r.axis, angle)
	}
	return MatrixRotate(p, r.axis, angle)
}

// Steps rotates p by angle radians and returns the labeled intermediate
// points. The derivation shown is always the matrix chain; the quaternion
// method has no intermediate stages to display.
func (r *Rotator) Steps(p Point3, angle float64) (Point3, []Step) {
	return MatrixRotateSteps(p, r.axis, angle)
}

// Quaternion returns the rotation quaternion for angle radians about the
// configured axis.
func (r *Rotator) Quaternion(angle float64) quat.Number {
	return RotationQuaternion(r.axis, angle)
}
