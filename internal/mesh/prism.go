// Package mesh generates the procedural prism/pyramid geometry.
//
// Vertices are interleaved as [x, y, z, r, g, b]. Indices [0, n) form the
// base ring at z=0 and [n, 2n) the top ring at z=1. Each top vertex shares the
// color of the base vertex below it.
package mesh

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/polyprism/pkg/math"
)

const (
	// FloatsPerVertex is the stride of the vertex buffer in floats.
	FloatsPerVertex = 6
	// MinSides is the smallest polygon we can build.
	MinSides = 3
	// MaxSides bounds buffer sizes.
	MaxSides = 1 << 20

	baseZ = 0
	topZ  = 1
)

var (
	ErrTooFewSides  = errors.New("polygon needs at least 3 sides")
	ErrTooManySides = errors.New("polygon has too many sides")
)

// Prism holds the CPU-side buffers for an n-sided prism.
type Prism struct {
	Sides    int
	Vertices []float32
	Indices  []uint32

	// circle caches the base ring x/y so the top ring can be restored
	// after a pyramid morph without recomputing trig.
	circle []float32
	shape  Shape
}

// NewRand returns a color source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds the vertex and index buffers for an n-sided prism.
// Colors are drawn from rng; nil uses a clock-seeded source.
func Generate(n int, rng *rand.Rand) (*Prism, error) {
	if n < MinSides {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSides, n)
	}
	if n > MaxSides {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManySides, n, MaxSides)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	p := &Prism{
		Sides:    n,
		Vertices: make([]float32, 2*n*FloatsPerVertex),
		Indices:  make([]uint32, 6*n),
		circle:   make([]float32, 2*n),
		shape:    ShapePrism,
	}

	for i := range n {
		angle := 2 * math32.Pi * float32(i) / float32(n)
		x := math32.Cos(angle) / 2
		y := math32.Sin(angle) / 2
		p.circle[2*i] = x
		p.circle[2*i+1] = y

		r, g, b := rng.Float32(), rng.Float32(), rng.Float32()

		base := p.Vertices[FloatsPerVertex*i : FloatsPerVertex*(i+1)]
		copy(base, []float32{x, y, baseZ, r, g, b})

		top := p.Vertices[FloatsPerVertex*(n+i) : FloatsPerVertex*(n+i+1)]
		copy(top, []float32{x, y, topZ, r, g, b})
	}

	for i := range n {
		next := (i + 1) % n
		tri := p.Indices[6*i : 6*i+6]
		tri[0] = uint32(i)
		tri[1] = uint32(next)
		tri[2] = uint32(n + i)
		tri[3] = uint32(n + i)
		tri[4] = uint32(next)
		tri[5] = uint32(n + next)
	}

	return p, nil
}

// Morph moves the top ring for the given shape: onto the apex for a pyramid,
// back onto the circle for a prism. Colors and the base ring never change.
// Returns true if the shape differs from the previous call.
func (p *Prism) Morph(shape Shape) bool {
	n := p.Sides
	for i := range n {
		off := FloatsPerVertex * (n + i)
		if shape == ShapePyramid {
			p.Vertices[off] = 0
			p.Vertices[off+1] = 0
		} else {
			p.Vertices[off] = p.circle[2*i]
			p.Vertices[off+1] = p.circle[2*i+1]
		}
	}

	changed := shape != p.shape
	p.shape = shape
	return changed
}

// VertexCount returns the number of vertices (2n).
func (p *Prism) VertexCount() int {
	return len(p.Vertices) / FloatsPerVertex
}

// IndexCount returns the number of side-wall indices (6n).
func (p *Prism) IndexCount() int {
	return len(p.Indices)
}

// Position returns the position of vertex i.
func (p *Prism) Position(i int) math.Vec3 {
	v := p.Vertices[FloatsPerVertex*i:]
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Color returns the color of vertex i.
func (p *Prism) Color(i int) [3]float32 {
	v := p.Vertices[FloatsPerVertex*i:]
	return [3]float32{v[3], v[4], v[5]}
}
