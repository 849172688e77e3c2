// Package lighting provides sun placement utilities.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/skydome/pkg/math"
)

// SunDirection converts pitch/yaw control angles (radians) to a unit vector
// pointing towards the sun. Pitch 0 puts the sun on the horizon at +Z; yaw
// rotates it around the vertical axis.
func SunDirection(pitch, yaw float32) math.Vec3 {
	return math.Vec3{
		X: math32.Cos(pitch) * math32.Sin(yaw),
		Y: math32.Sin(pitch),
		Z: math32.Cos(pitch) * math32.Cos(yaw),
	}
}
