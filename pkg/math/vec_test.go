package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vec3{0, 0, -1}, y.Cross(x))
}

func TestVec3Length(t *testing.T) {
	assert.Equal(t, float32(7), Vec3{2, 3, 6}.Length())
	assert.Equal(t, float32(7), Vec3{1, 1, 1}.Distance(Vec3{3, 4, 7}))
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{0, 3, 4}.Normalize()
	assert.True(t, n.ApproxEqual(Vec3{0, 0.6, 0.8}, 1e-6), "got %v", n)

	// Zero vector stays zero instead of producing NaN
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestV3(t *testing.T) {
	assert.Equal(t, Vec3{1, -2, 0.5}, V3([3]float32{1, -2, 0.5}))
}
