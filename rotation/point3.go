// =======================
// rotation/point3.go
// =======================

package rotation

import "math"

// Point3 holds a 3D coordinate.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the dot product of p and q.
func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product of p and q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p.
func (p Point3) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Unit returns p scaled to length 1. The zero vector is returned unchanged.
func (p Point3) Unit() Point3 {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

// Rotate rotates around X, Y, Z axes using proper rotation matrices.
func (p Point3) Rotate(ax, ay, az float64) Point3 {
	cosX, sinX := math.Cos(ax), math.Sin(ax)
	cosY, sinY := math.Cos(ay), math.Sin(ay)
	cosZ, sinZ := math.Cos(az), math.Sin(az)

	// X-axis rotation
	y1 := p.Y*cosX - p.Z*sinX
	z1 := p.Y*sinX + p.Z*cosX
	p.Y, p.Z = y1, z1

	// Y-axis rotation
	x1 := p.X*cosY + p.Z*sinY
	z2 := -p.X*sinY + p.Z*cosY
	p.X, p.Z = x1, z2

	// Z-axis rotation
	x2 := p.X*cosZ - p.Y*sinZ
	y2 := p.X*sinZ + p.Y*cosZ
	p.X, p.Y = x2, y2

	return p
}
