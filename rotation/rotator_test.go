package rotation

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewRotatorValidation(t *testing.T) {
	valid := Axis{Start: Point3{0, 0, 0}, End: Point3{0, 1, 0}}

	table := []struct {
		name    string
		axis    Axis
		method  Method
		wantErr bool
	}{
		{"matrix method", valid, MethodMatrix, false},
		{"quaternion method", valid, MethodQuaternion, false},
		{"degenerate axis", Axis{Start: Point3{1, 2, 3}, End: Point3{1, 2, 3}}, MethodMatrix, true},
		{"unknown method", valid, Method("euler"), true},
		{"empty method", valid, Method(""), true},
	}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			r, err := NewRotator(test.axis, test.method)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r == nil {
				t.Fatal("nil rotator without error")
			}
		})
	}
}

func TestRotatorDispatch(t *testing.T) {
	p := Point3{2, 1, 1}
	axis := Axis{Start: Point3{0, 0, 0}, End: Point3{1, 2, 3}}
	angle := math.Pi / 3

	mr, err := NewRotator(axis, MethodMatrix)
	if err != nil {
		t.Fatalf("matrix rotator: %v", err)
	}
	if got, want := mr.Rotate(p, angle), MatrixRotate(p, axis, angle); got != want {
		t.Errorf("matrix dispatch gave %+v, want %+v", got, want)
	}

	qr, err := NewRotator(axis, MethodQuaternion)
	if err != nil {
		t.Fatalf("quaternion rotator: %v", err)
	}
	if got, want := qr.Rotate(p, angle), QuaternionRotate(p, axis, angle); got != want {
		t.Errorf("quaternion dispatch gave %+v, want %+v", got, want)
	}
}

func TestRotatorSteps(t *testing.T) {
	p := Point3{2, 1, 1}
	axis := Axis{Start: Point3{0, 0, 0}, End: Point3{1, 2, 3}}
	angle := math.Pi / 4

	r, err := NewRotator(axis, MethodMatrix)
	if err != nil {
		t.Fatalf("rotator: %v", err)
	}

	got, steps := r.Steps(p, angle)
	if len(steps) == 0 {
		t.Fatal("no steps returned")
	}
	if last := steps[len(steps)-1].Point; last != got {
		t.Errorf("final step %+v differs from result %+v", last, got)
	}
	if got != r.Rotate(p, angle) {
		t.Errorf("Steps result differs from Rotate result")
	}
}

func TestRotatorQuaternion(t *testing.T) {
	axis := Axis{Start: Point3{0, 0, 0}, End: Point3{0, 1, 0}}
	angle := math.Pi / 4

	r, err := NewRotator(axis, MethodQuaternion)
	if err != nil {
		t.Fatalf("rotator: %v", err)
	}

	q := r.Quaternion(angle)
	want := RotationQuaternion(axis, angle)
	if !scalar.EqualWithinAbs(q.Real, want.Real, 1e-15) ||
		!scalar.EqualWithinAbs(q.Jmag, want.Jmag, 1e-15) {
		t.Errorf("Quaternion gave %+v, want %+v", q, want)
	}
}
