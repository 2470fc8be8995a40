// Package camera implements the pinhole model used to turn a clicked
// pixel into a viewing ray, and the one-shot acquisition of the camera
// intrinsics from a ROS calibration topic.
package camera

import (
	"github.com/pkg/errors"
)

// ErrDegenerateCalibration reports a calibration whose focal lengths are
// not usable for back-projection.
var ErrDegenerateCalibration = errors.New("camera: degenerate calibration, focal length must be positive")

// Intrinsics holds the pinhole parameters of a calibrated camera.
// Immutable once built; calibration is assumed static for the process
// lifetime.
type Intrinsics struct {
	Fx, Fy float64 // focal lengths, pixels
	Cx, Cy float64 // principal point, pixels
}

// IntrinsicsFromK builds Intrinsics from the flattened row-major 3x3
// intrinsic matrix published in sensor_msgs/CameraInfo. Fails fast on a
// zero or negative focal length rather than projecting through it later.
func IntrinsicsFromK(k [9]float64) (Intrinsics, error) {
	in := Intrinsics{Fx: k[0], Fy: k[4], Cx: k[2], Cy: k[5]}
	if in.Fx <= 0 || in.Fy <= 0 {
		return Intrinsics{}, ErrDegenerateCalibration
	}
	return in, nil
}

// Ray is a point on the viewing ray through a pixel, expressed in the
// camera optical frame (z along the viewing direction).
type Ray struct {
	X, Y, Z float64
}

// rayDepth is the arbitrary depth the ray is cut at. Only the direction
// matters downstream: the pointing axis is sent alongside the target, so
// the head motion is the same for any positive depth.
const rayDepth = 1.0

// Project back-projects pixel (u, v) to normalized camera coordinates at
// depth rayDepth. Pure function; pixels outside the image bounds still
// yield a valid ray.
func (in Intrinsics) Project(u, v int) Ray {
	x := (float64(u) - in.Cx) / in.Fx
	y := (float64(v) - in.Cy) / in.Fy
	return Ray{X: x * rayDepth, Y: y * rayDepth, Z: rayDepth}
}
