package main

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/num/quat"

	"rotviz/rotation"
)

// parseTriple parses an "x,y,z" coordinate string into a Point3. Whitespace
// around each component is ignored.
func parseTriple(s string) (rotation.Point3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rotation.Point3{}, fmt.Errorf("invalid coordinates %q: want \"x,y,z\"", s)
	}

	var coords [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return rotation.Point3{}, fmt.Errorf("invalid coordinates %q: %w", s, err)
		}
		coords[i] = v
	}

	return rotation.Point3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// formatPoint renders p at display precision: "[2.0000, 1.0000, 1.0000]".
func formatPoint(p rotation.Point3) string {
	return fmt.Sprintf("[%.4f, %.4f, %.4f]", p.X, p.Y, p.Z)
}

// formatQuaternion renders q in [w, x, y, z] component order.
func formatQuaternion(q quat.Number) string {
	return fmt.Sprintf("[%.4f, %.4f, %.4f, %.4f]", q.Real, q.Imag, q.Jmag, q.Kmag)
}
