package rotation

import (
	"math"
	"testing"
)

func TestBenchmarkMethods(t *testing.T) {
	p := Point3{2, 1, 1}
	axis := Axis{Start: Point3{0, 0, 0}, End: Point3{0, 1, 0}}

	results, err := BenchmarkMethods(p, axis, math.Pi/4, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	seen := map[Method]bool{}
	for _, r := range results {
		seen[r.Method] = true
		if r.Iterations != 100 {
			t.Errorf("%s: iterations = %d, want 100", r.Method, r.Iterations)
		}
		if r.MaxDiff > methodTolerance {
			t.Errorf("%s: methods diverge by %g", r.Method, r.MaxDiff)
		}
		if r.OpsPerSec <= 0 {
			t.Errorf("%s: ops/sec = %g, want > 0", r.Method, r.OpsPerSec)
		}
	}
	if !seen[MethodMatrix] || !seen[MethodQuaternion] {
		t.Errorf("missing a method in results: %v", seen)
	}
}

func TestBenchmarkMethodsValidation(t *testing.T) {
	p := Point3{2, 1, 1}
	axis := Axis{Start: Point3{0, 0, 0}, End: Point3{0, 1, 0}}

	if _, err := BenchmarkMethods(p, axis, 1, 0); err == nil {
		t.Error("iterations=0: expected an error, got none")
	}

	degenerate := Axis{Start: Point3{1, 1, 1}, End: Point3{1, 1, 1}}
	if _, err := BenchmarkMethods(p, degenerate, 1, 10); err == nil {
		t.Error("degenerate axis: expected an error, got none")
	}
}
