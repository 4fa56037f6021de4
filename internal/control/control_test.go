package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionNamesRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction("  Toggle_Shape ")
	require.NoError(t, err)
	assert.Equal(t, ToggleShape, got)

	_, err = ParseAction("jump")
	assert.Error(t, err)
}

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	b := DefaultBindings()
	assert.Len(t, b, len(Actions()))
	for _, a := range Actions() {
		assert.NotEmpty(t, b[a.String()], a.String())
	}
}

func TestActionSet(t *testing.T) {
	s := NewActionSet(CameraForward, ToggleShape)
	assert.True(t, s.Has(CameraForward))
	assert.True(t, s.Has(ToggleShape))
	assert.False(t, s.Has(Quit))
	assert.Equal(t, "camera_forward|toggle_shape", s.String())

	s = s.With(Quit).With(Quit)
	assert.True(t, s.Has(Quit))
	assert.Equal(t, "quit|camera_forward|toggle_shape", s.String())
	assert.Empty(t, ActionSet(0).String())
}

func TestLatch(t *testing.T) {
	var l Latch

	// frames: down, down, down, up, down, up
	frames := []bool{true, true, true, false, true, false}
	want := []bool{true, false, false, false, true, false}

	for i, down := range frames {
		assert.Equal(t, want[i], l.Update(down), "frame %d", i)
	}
}
