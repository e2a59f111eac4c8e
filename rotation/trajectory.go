package rotation

import "fmt"

// Trajectory precomputes the sweep an animation plays back: frames evenly
// spaced angles from 0 to angle inclusive, one rotated point each. Frame i
// corresponds to the angle angle*i/(frames-1), so the first frame is the
// unrotated point and the last equals Rotate(p, angle).
func (r *Rotator) Trajectory(p Point3, angle float64, frames int) ([]Point3, error) {
	if frames < MinFrames || frames > MaxFrames {
		return nil, fmt.Errorf("frames out of safe range: %d (want %d-%d)",
			frames, MinFrames, MaxFrames)
	}

	points := make([]Point3, frames)
	step := angle / float64(frames-1)
	for i := range points {
		a := float64(i) * step
		if i == frames-1 {
			a = angle // land exactly on the requested angle
		}
		points[i] = r.Rotate(p, a)
	}
	return points, nil
}
