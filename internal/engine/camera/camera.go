// Package camera provides the fly camera used by the viewer.
package camera

import (
	"github.com/Faultbox/polyprism/internal/control"
	"github.com/Faultbox/polyprism/pkg/math"
)

// DefaultSpeed is the camera speed in world units per second.
const DefaultSpeed = 2.5

// FlyCamera moves freely while always facing a fixed target.
// It stores no orientation: the view direction is derived from
// Position and Target on every update.
type FlyCamera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	// Speed in world units per second
	Speed float32
}

// NewFlyCamera creates a camera at position looking at target.
func NewFlyCamera(position, target, up math.Vec3) *FlyCamera {
	return &FlyCamera{
		Position: position,
		Target:   target,
		Up:       up,
		Speed:    DefaultSpeed,
	}
}

// Forward returns the unit vector from the camera towards the target.
func (c *FlyCamera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right returns the camera's right vector.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}

// Update moves the camera for one frame of length dt seconds.
// Held directions add up, so diagonals are faster than straight moves.
func (c *FlyCamera) Update(dt float32, held control.ActionSet) {
	speed := c.Speed * dt
	forward := c.Forward()
	right := c.Right()
	vertical := right.Cross(forward)

	var delta math.Vec3
	if held.Has(control.CameraForward) {
		delta = delta.Add(forward.Scale(speed))
	}
	if held.Has(control.CameraBackward) {
		delta = delta.Sub(forward.Scale(speed))
	}
	if held.Has(control.CameraLeft) {
		delta = delta.Sub(right.Scale(speed))
	}
	if held.Has(control.CameraRight) {
		delta = delta.Add(right.Scale(speed))
	}
	if held.Has(control.CameraUp) {
		delta = delta.Add(vertical.Scale(speed))
	}
	if held.Has(control.CameraDown) {
		delta = delta.Sub(vertical.Scale(speed))
	}

	c.Position = c.Position.Add(delta)
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}
