// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/skydome/pkg/math"
)

const pitchLimit = math32.Pi/2 - 0.001

// FirstPersonCamera is a free-flying FPS-style camera: yaw/pitch look angles
// with a walkable position.
type FirstPersonCamera struct {
	// Rotation around the vertical axis (radians)
	Horizontal float32
	// Rotation around the horizontal axis (radians), clamped short of the
	// poles
	Vertical float32
	// Eye position in world space
	Position math.Vec3

	// Projection parameters
	FOV  float32 // vertical field of view, radians
	Near float32
	Far  float32

	// Sensitivity
	LookSpeed float32
	MoveSpeed float32

	// Derived axes, updated on every look change
	forward math.Vec3
	right   math.Vec3
	up      math.Vec3

	aspect float32
}

// New creates a camera for a window with the given dimensions.
func New(width, height int) *FirstPersonCamera {
	c := &FirstPersonCamera{
		Horizontal: math32.Pi / 2,
		FOV:        70 * math32.Pi / 180,
		Near:       0.1,
		Far:        1000,
		LookSpeed:  0.0015,
		MoveSpeed:  0.1,
		aspect:     float32(width) / float32(height),
	}
	c.updateAxes()
	return c
}

// Resize updates the aspect ratio after a window resize.
func (c *FirstPersonCamera) Resize(width, height int) {
	c.aspect = float32(width) / float32(height)
}

// Look rotates the camera by a mouse delta scaled by LookSpeed.
func (c *FirstPersonCamera) Look(deltaX, deltaY, delta float32) {
	c.Vertical -= deltaY * delta * c.LookSpeed
	if c.Vertical > pitchLimit {
		c.Vertical = pitchLimit
	}
	if c.Vertical < -pitchLimit {
		c.Vertical = -pitchLimit
	}

	c.Horizontal -= deltaX * delta * c.LookSpeed
	if c.Horizontal < 0 {
		c.Horizontal += 2 * math32.Pi
	} else if c.Horizontal > 2*math32.Pi {
		c.Horizontal -= 2 * math32.Pi
	}

	c.updateAxes()
}

// Walk moves the camera along its own axes: x strafes, y moves vertically,
// z moves along the horizontal projection of the view direction.
func (c *FirstPersonCamera) Walk(x, y, z, delta float32) {
	scale := delta * c.MoveSpeed

	if math32.Abs(x) > 0 {
		flat := math.Vec3{X: c.right.X, Z: c.right.Z}.Normalize()
		c.Position = c.Position.Add(flat.Scale(x * scale))
	}
	if math32.Abs(y) > 0 {
		c.Position.Y += y * scale
	}
	if math32.Abs(z) > 0 {
		flat := math.Vec3{X: c.forward.X, Z: c.forward.Z}.Normalize()
		c.Position = c.Position.Add(flat.Scale(z * scale))
	}
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *FirstPersonCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.aspect, c.Near, c.Far)
}

// ViewMatrix returns the full view matrix (rotation and translation).
func (c *FirstPersonCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.forward), c.up)
}

// OrientationMatrix returns a rotation-only view matrix. The sky dome is
// drawn with this so it never translates with the viewer.
func (c *FirstPersonCamera) OrientationMatrix() math.Mat4 {
	return math.LookAt(math.Vec3{}, c.forward, c.up)
}

// updateAxes recomputes the basis vectors from the look angles.
func (c *FirstPersonCamera) updateAxes() {
	c.forward = math.Vec3{
		X: math32.Cos(c.Vertical) * math32.Sin(c.Horizontal),
		Y: math32.Sin(c.Vertical),
		Z: math32.Cos(c.Vertical) * math32.Cos(c.Horizontal),
	}

	// The right vector stays in the xz plane; the camera never rolls.
	c.right = math.Vec3{
		X: math32.Sin(c.Horizontal - math32.Pi/2),
		Z: math32.Cos(c.Horizontal - math32.Pi/2),
	}

	c.up = c.right.Cross(c.forward)
}
