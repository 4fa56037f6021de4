package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/polyprism/internal/control"
	"github.com/Faultbox/polyprism/pkg/math"
)

func newTestCamera() *FlyCamera {
	return NewFlyCamera(math.Vec3{X: 0, Y: 0, Z: 3}, math.Vec3{X: 0, Y: 0, Z: 0.5}, math.Vec3{X: 0, Y: 1, Z: 0})
}

func TestForwardDisplacement(t *testing.T) {
	positions := []math.Vec3{
		{X: 0, Y: 0, Z: 3},
		{X: 1, Y: 2, Z: 3},
		{X: -4, Y: 0.5, Z: -1},
	}
	for _, pos := range positions {
		c := newTestCamera()
		c.Position = pos
		const dt = 0.016

		want := pos.Add(c.Target.Sub(pos).Normalize().Scale(2.5 * dt))
		c.Update(dt, control.NewActionSet(control.CameraForward))

		assert.True(t, c.Position.ApproxEqual(want, 1e-6), "from %v: got %v, want %v", pos, c.Position, want)
	}
}

func TestOppositeKeysCancel(t *testing.T) {
	c := newTestCamera()
	start := c.Position
	c.Update(0.1, control.NewActionSet(
		control.CameraForward, control.CameraBackward,
		control.CameraLeft, control.CameraRight,
		control.CameraUp, control.CameraDown,
	))
	assert.True(t, c.Position.ApproxEqual(start, 1e-6), "got %v", c.Position)
}

func TestStrafeAndLift(t *testing.T) {
	const dt = 0.5
	step := float32(DefaultSpeed * dt)

	tests := []struct {
		name   string
		action control.Action
		want   math.Vec3
	}{
		// Looking down -z with +y up: right is +x, vertical is +y
		{"left", control.CameraLeft, math.Vec3{X: -step, Y: 0, Z: 3}},
		{"right", control.CameraRight, math.Vec3{X: step, Y: 0, Z: 3}},
		{"up", control.CameraUp, math.Vec3{X: 0, Y: step, Z: 3}},
		{"down", control.CameraDown, math.Vec3{X: 0, Y: -step, Z: 3}},
		{"backward", control.CameraBackward, math.Vec3{X: 0, Y: 0, Z: 3 + step}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera()
			c.Update(dt, control.NewActionSet(tt.action))
			assert.True(t, c.Position.ApproxEqual(tt.want, 1e-5), "got %v, want %v", c.Position, tt.want)
		})
	}
}

func TestDiagonalNotNormalized(t *testing.T) {
	c := newTestCamera()
	start := c.Position
	const dt = 1
	c.Update(dt, control.NewActionSet(control.CameraForward, control.CameraRight))

	moved := c.Position.Distance(start)
	assert.InDelta(t, 2.5*1.41421356, moved, 1e-4)
}

func TestNoKeysNoMove(t *testing.T) {
	c := newTestCamera()
	start := c.Position
	c.Update(1, 0)
	assert.Equal(t, start, c.Position)
}

func TestViewMatrixFacesTarget(t *testing.T) {
	c := newTestCamera()
	c.Update(0.3, control.NewActionSet(control.CameraRight, control.CameraUp))

	v := c.ViewMatrix()
	p := v.TransformVec3(c.Target)
	dist := c.Target.Distance(c.Position)

	// Target sits straight ahead on the -z view axis
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.InDelta(t, -dist, p.Z, 1e-5)
}

func TestRightIsPerpendicular(t *testing.T) {
	c := newTestCamera()
	r := c.Right()
	assert.True(t, r.ApproxEqual(math.Vec3{X: 1}, 1e-6), "got %v", r)
	assert.InDelta(t, 0, r.Dot(c.Forward()), 1e-6)
	assert.InDelta(t, 0, r.Dot(c.Up), 1e-6)
}
