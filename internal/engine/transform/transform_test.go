package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/polyprism/internal/control"
	"github.com/Faultbox/polyprism/pkg/math"
)

func TestTranslateKeys(t *testing.T) {
	const dt = 0.2
	d := float32(DefaultSpeed * dt * DefaultStep)

	tests := []struct {
		action control.Action
		want   math.Vec3
	}{
		{control.ObjectForward, math.Vec3{X: 0, Y: 0, Z: d}},
		{control.ObjectBackward, math.Vec3{X: 0, Y: 0, Z: -d}},
		{control.ObjectLeft, math.Vec3{X: -d, Y: 0, Z: 0}},
		{control.ObjectRight, math.Vec3{X: d, Y: 0, Z: 0}},
		{control.ObjectUp, math.Vec3{X: 0, Y: d, Z: 0}},
		{control.ObjectDown, math.Vec3{X: 0, Y: -d, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			c := NewController()
			c.Apply(dt, control.NewActionSet(tt.action))
			got := c.Model.Translation()
			assert.True(t, got.ApproxEqual(tt.want, 1e-6), "got %v, want %v", got, tt.want)
		})
	}
}

func TestTranslateAccumulates(t *testing.T) {
	c := NewController()
	for range 10 {
		c.Apply(0.1, control.NewActionSet(control.ObjectRight, control.ObjectUp))
	}
	got := c.Model.Translation()
	assert.True(t, got.ApproxEqual(math.Vec3{X: 0.5, Y: 0.5, Z: 0}, 1e-5), "got %v", got)
}

func TestRotateAccumulates(t *testing.T) {
	for _, k := range []int{1, 10, 90, 200} {
		c := NewController()
		for range k {
			c.Apply(0.016, control.NewActionSet(control.ObjectRotate))
		}

		want := float32(k) * 0.5
		if want > 180 {
			want -= 360
		}
		assert.InDelta(t, want, c.RotationZ(), 1e-2, "k=%d", k)
	}
}

func TestRotationSteersLaterMoves(t *testing.T) {
	c := NewController()
	// 180 frames at 0.5 degrees is a quarter turn
	for range 180 {
		c.Apply(0.016, control.NewActionSet(control.ObjectRotate))
	}
	// Local +x now points along world +y
	c.Apply(1, control.NewActionSet(control.ObjectRight))

	got := c.Model.Translation()
	assert.True(t, got.ApproxEqual(math.Vec3{X: 0, Y: 0.5, Z: 0}, 1e-3), "got %v", got)
}

func TestIgnoresCameraActions(t *testing.T) {
	c := NewController()
	c.Apply(1, control.NewActionSet(control.CameraForward, control.CameraUp, control.ToggleShape))
	assert.Equal(t, math.Identity(), c.Model)
}
