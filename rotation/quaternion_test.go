package rotation

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

func TestRotationQuaternionComponents(t *testing.T) {
	axis := Axis{Start: Point3{0, 0, 0}, End: Point3{0, 1, 0}}
	q := RotationQuaternion(axis, math.Pi/4)

	if !scalar.EqualWithinAbs(q.Real, math.Cos(math.Pi/8), 1e-12) {
		t.Errorf("Real = %g, want cos(π/8)", q.Real)
	}
	if !scalar.EqualWithinAbs(q.Imag, 0, 1e-12) {
		t.Errorf("Imag = %g, want 0", q.Imag)
	}
	if !scalar.EqualWithinAbs(q.Jmag, math.Sin(math.Pi/8), 1e-12) {
		t.Errorf("Jmag = %g, want sin(π/8)", q.Jmag)
	}
	if !scalar.EqualWithinAbs(q.Kmag, 0, 1e-12) {
		t.Errorf("Kmag = %g, want 0", q.Kmag)
	}
}

func TestRotationQuaternionUnitNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for i := 0; i < 500; i++ {
		axis := randAxis(rng, 10)
		angle := (rng.Float64() - 0.5) * 8 * math.Pi

		if n := quat.Abs(RotationQuaternion(axis, angle)); !scalar.EqualWithinAbs(n, 1, 1e-12) {
			t.Fatalf("case %d: |q| = %g, want 1", i, n)
		}
	}
}

func TestNegatedAngleIsConjugate(t *testing.T) {
	axis := Axis{Start: Point3{1, -1, 0}, End: Point3{2, 3, 4}}
	angle := 0.83

	q := RotationQuaternion(axis, angle)
	r := RotationQuaternion(axis, -angle)
	c := quat.Conj(q)

	if !scalar.EqualWithinAbs(r.Real, c.Real, 1e-12) ||
		!scalar.EqualWithinAbs(r.Imag, c.Imag, 1e-12) ||
		!scalar.EqualWithinAbs(r.Jmag, c.Jmag, 1e-12) ||
		!scalar.EqualWithinAbs(r.Kmag, c.Kmag, 1e-12) {
		t.Errorf("q(-θ) = %+v, want conj(q(θ)) = %+v", r, c)
	}
}

func TestQuaternionRotateScenarios(t *testing.T) {
	table := []struct {
		name  string
		p     Point3
		axis  Axis
		angle float64
		want  Point3
	}{
		{
			name:  "quarter turn about Z",
			p:     Point3{1, 0, 0},
			axis:  Axis{Start: Point3{0, 0, 0}, End: Point3{0, 0, 1}},
			angle: math.Pi / 2,
			want:  Point3{0, 1, 0},
		},
		{
			name:  "half turn about Y",
			p:     Point3{2, 1, 1},
			axis:  Axis{Start: Point3{0, 0, 0}, End: Point3{0, 1, 0}},
			angle: math.Pi,
			want:  Point3{-2, 1, -1},
		},
		{
			name:  "third turn about cube diagonal",
			p:     Point3{0, 1, 1},
			axis:  Axis{Start: Point3{0, 0, 0}, End: Point3{1, 1, 1}},
			angle: 2 * math.Pi / 3,
			want:  Point3{1, 0, 1},
		},
		{
			name:  "quarter turn about offset vertical axis",
			p:     Point3{2, 1, 0},
			axis:  Axis{Start: Point3{1, 1, 0}, End: Point3{1, 1, 1}},
			angle: math.Pi / 2,
			want:  Point3{1, 2, 0},
		},
	}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			got := QuaternionRotate(test.p, test.axis, test.angle)
			if !pointsAlmostEqual(got, test.want, methodTolerance) {
				t.Errorf("%+v about %+v by %.4g -> %+v, want %+v",
					test.p, test.axis, test.angle, got, test.want)
			}
		})
	}
}

func BenchmarkQuaternionRotate(b *testing.B) {
	b.ReportAllocs()

	p := Point3{2, 1, 1}
	axis := Axis{Start: Point3{0, 0, 0}, End: Point3{1, 2, 3}}

	for i := 0; i < b.N; i++ {
		benchSink = QuaternionRotate(p, axis, math.Pi/4)
	}
}

func BenchmarkRotationQuaternion(b *testing.B) {
	b.ReportAllocs()

	axis := Axis{Start: Point3{0, 0, 0}, End: Point3{1, 2, 3}}

	var sink quat.Number
	for i := 0; i < b.N; i++ {
		sink = RotationQuaternion(axis, math.Pi/4)
	}
	_ = sink
}
