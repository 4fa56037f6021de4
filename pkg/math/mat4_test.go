package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func TestIdentity(t *testing.T) {
	m := Identity()
	for i := 0; i < 16; i++ {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		assert.Equal(t, want, m[i], "element %d", i)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	assert.Equal(t, m, m.Mul(Identity()))
	assert.Equal(t, m, Identity().Mul(m))
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	// Translation lives in the fourth column
	assert.Equal(t, Vec3{5, 10, 15}, m.Translation())
	assert.Equal(t, [3]float32{11, 22, 33}, Translate(10, 20, 30).TransformPoint([3]float32{1, 2, 3}))
}

func TestRotateAxisZ(t *testing.T) {
	angle := Radians(30)
	c, s := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
	want := Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	got := RotateAxis(Vec3{0, 0, 2}, angle)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "element %d", i)
	}

	// Counter-clockwise: (1,0,0) -> (0,1,0)
	p := RotateAxis(Vec3{0, 0, 1}, Radians(90)).TransformVec3(Vec3{1, 0, 0})
	assert.True(t, p.ApproxEqual(Vec3{0, 1, 0}, eps), "got %v", p)
}

func TestTranslatedIsLocal(t *testing.T) {
	// Rotate 90 degrees, then move along local +x: ends up on world +y.
	m := Identity().Rotated(Radians(90), Vec3{0, 0, 1}).Translated(Vec3{1, 0, 0})
	got := m.Translation()
	assert.True(t, got.ApproxEqual(Vec3{0, 1, 0}, eps), "got %v", got)
}

func TestAngleZ(t *testing.T) {
	m := Identity()
	for i := 0; i < 10; i++ {
		m = m.Rotated(Radians(0.5), Vec3{0, 0, 1})
	}
	assert.InDelta(t, 5, Degrees(m.AngleZ()), 1e-3)
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(45), 1, 0.1, 100)

	require.NotZero(t, m[0])
	assert.Equal(t, m[0], m[5], "square aspect scales x and y equally")
	assert.Equal(t, float32(-1), m[11])
	assert.Zero(t, m[15])
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 3}
	center := Vec3{0, 0, 0.5}
	m := LookAt(eye, center, Vec3{0, 1, 0})

	// The target lands on the negative view axis, the eye on the origin
	p := m.TransformVec3(center)
	assert.True(t, p.ApproxEqual(Vec3{0, 0, -2.5}, eps), "target in view space = %v", p)
	e := m.TransformVec3(eye)
	assert.True(t, e.ApproxEqual(Vec3{}, eps), "eye in view space = %v", e)
}
