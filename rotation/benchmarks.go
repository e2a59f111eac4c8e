// =======================
// rotation/benchmarks.go
// =======================

package rotation

import (
	"fmt"
	"math"
	"time"
)

// BenchmarkInfo holds performance metrics for one rotation method.
type BenchmarkInfo struct {
	Method     Method        `json:"method"`
	Iterations int           `json:"iterations"`
	TimePerOp  time.Duration `json:"time_per_op"`
	OpsPerSec  float64       `json:"ops_per_second"`
	MaxDiff    float64       `json:"max_difference"`
}

var benchSink Point3

// BenchmarkMethods times both rotation methods on the same input and
// reports how far their results diverge.
func BenchmarkMethods(p Point3, axis Axis, angle float64, iterations int) ([]BenchmarkInfo, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive: %d", iterations)
	}
	if axis.IsDegenerate() {
		return nil, fmt.Errorf("axis start and end points must be different")
	}

	diff := MatrixRotate(p, axis, angle).Sub(QuaternionRotate(p, axis, angle))
	maxDiff := math.Max(math.Abs(diff.X), math.Max(math.Abs(diff.Y), math.Abs(diff.Z)))

	methods := []Method{MethodMatrix, MethodQuaternion}
	results := make([]BenchmarkInfo, 0, len(methods))

	for _, m := range methods {
		r, err := NewRotator(axis, m)
		if err != nil {
			return nil, fmt.Errorf("rotator for %s failed: %w", m, err)
		}

		start := time.Now()
		for i := 0; i < iterations; i++ {
			benchSink = r.Rotate(p, angle)
		}
		elapsed := time.Since(start)

		results = append(results, BenchmarkInfo{
			Method:     m,
			Iterations: iterations,
			TimePerOp:  elapsed / time.Duration(iterations),
			OpsPerSec:  float64(iterations) / elapsed.Seconds(),
			MaxDiff:    maxDiff,
		})
	}

	return results, nil
}

// PrintBenchmarkResults displays benchmark results in a formatted table
func PrintBenchmarkResults(results []BenchmarkInfo) {
	fmt.Println("Rotation Method Benchmark Results")
	fmt.Println("=================================")
	fmt.Printf("%-12s | %-12s | %-14s | %-12s\n",
		"Method", "Time/Op", "Ops/sec", "Max Diff")
	fmt.Println("-------------|--------------|----------------|-------------")

	for _, result := range results {
		fmt.Printf("%-12s | %-12s | %-14.0f | %-12.3g\n",
			result.Method,
			result.TimePerOp.String(),
			result.OpsPerSec,
			result.MaxDiff)
	}
}
