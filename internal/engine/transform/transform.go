// Package transform accumulates the object's model matrix from held input.
package transform

import (
	"github.com/Faultbox/polyprism/internal/control"
	"github.com/Faultbox/polyprism/pkg/math"
)

// Defaults for Controller.
const (
	DefaultSpeed         = 5.0
	DefaultStep          = 0.1
	DefaultRotateDegrees = 0.5
)

var zAxis = math.Vec3{X: 0, Y: 0, Z: 1}

// Controller owns the model matrix. Every move is applied in the object's
// local frame by post-multiplying, so earlier rotations steer later moves.
// There is no reset and no bound.
type Controller struct {
	Model math.Mat4

	Speed         float32
	Step          float32
	RotateDegrees float32
}

// NewController returns a controller with an identity model matrix.
func NewController() *Controller {
	return &Controller{
		Model:         math.Identity(),
		Speed:         DefaultSpeed,
		Step:          DefaultStep,
		RotateDegrees: DefaultRotateDegrees,
	}
}

// Apply updates the model matrix for one frame of length dt seconds.
func (c *Controller) Apply(dt float32, held control.ActionSet) {
	d := c.Speed * dt * c.Step

	moves := [...]struct {
		action control.Action
		dir    math.Vec3
	}{
		{control.ObjectForward, math.Vec3{X: 0, Y: 0, Z: d}},
		{control.ObjectBackward, math.Vec3{X: 0, Y: 0, Z: -d}},
		{control.ObjectLeft, math.Vec3{X: -d, Y: 0, Z: 0}},
		{control.ObjectRight, math.Vec3{X: d, Y: 0, Z: 0}},
		{control.ObjectUp, math.Vec3{X: 0, Y: d, Z: 0}},
		{control.ObjectDown, math.Vec3{X: 0, Y: -d, Z: 0}},
	}
	for _, m := range moves {
		if held.Has(m.action) {
			c.Model = c.Model.Translated(m.dir)
		}
	}

	if held.Has(control.ObjectRotate) {
		c.Model = c.Model.Rotated(math.Radians(c.RotateDegrees), zAxis)
	}
}

// RotationZ returns the accumulated rotation about z in degrees,
// wrapped to (-180, 180].
func (c *Controller) RotationZ() float32 {
	return math.Degrees(c.Model.AngleZ())
}
