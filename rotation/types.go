// =======================
// rotation/types.go
// =======================

package rotation

const (
	// ProjectionEpsilon is the smallest XZ-plane projection norm for which
	// the Y-axis alignment rotation is still applied. Below it the axis
	// already lies in the YZ-plane and the rotation is skipped to avoid a
	// degenerate atan2 near the Y-axis.
	ProjectionEpsilon = 1e-10

	MinFrames = 2
	MaxFrames = 10000 // Prevent runaway sweeps
)

// Method selects which rotation algorithm a Rotator runs.
type Method string

const (
	MethodMatrix     Method = "matrix"
	MethodQuaternion Method = "quaternion"
)

// Labels of the matrix method's derivation stages, in order of appearance.
const (
	StepOriginalPoint      = "Original Point"
	StepTranslatedToOrigin = "Translated to Origin"
	StepRotatedToYZPlane   = "Rotated to YZ-plane"
	StepAlignedWithZAxis   = "Aligned with Z-axis"
	StepRotatedAroundZAxis = "Rotated around Z-axis"
	StepReversedXAlignment = "Reversed X-axis Alignment"
	StepReversedYAlignment = "Reversed Y-axis Alignment"
	StepFinalRotatedPoint  = "Final Rotated Point"
)

// Axis is a rotation axis through two points. Rotation direction follows
// the right-hand rule with the thumb pointing from Start toward End.
type Axis struct {
	Start Point3 `json:"start"`
	End   Point3 `json:"end"`
}

// Direction returns End - Start.
func (a Axis) Direction() Point3 {
	return a.End.Sub(a.Start)
}

// IsDegenerate reports whether Start and End coincide.
func (a Axis) IsDegenerate() bool {
	return a.Start == a.End
}

// UnitDirection returns the unit direction of the axis. A degenerate axis
// falls back to the Z-axis so callers in tight loops never have to handle
// a failure here; boundaries reject degenerate axes before computing.
func (a Axis) UnitDirection() Point3 {
	d := a.Direction()
	if n := d.Norm(); n > 0 {
		return d.Scale(1 / n)
	}
	return Point3{0, 0, 1}
}

// Step is one named intermediate point of the matrix method's derivation.
type Step struct {
	Label string `json:"label"`
	Point Point3 `json:"point"`
}

// Result bundles one rotation computation for display or JSON output.
type Result struct {
	Point      Point3    `json:"point"`
	Axis       Axis      `json:"axis"`
	AngleRad   float64   `json:"angle_rad"`
	Method     Method    `json:"method"`
	Rotated    Point3    `json:"rotated"`
	Quaternion []float64 `json:"quaternion,omitempty"`
	Steps      []Step    `json:"steps,omitempty"`
}
