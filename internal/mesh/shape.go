package mesh

// Shape selects where the top ring sits.
type Shape int

const (
	// ShapePrism keeps the top ring directly above the base ring.
	ShapePrism Shape = iota
	// ShapePyramid collapses the top ring onto the apex (0, 0, 1).
	ShapePyramid
)

// Toggle returns the other shape.
func (s Shape) Toggle() Shape {
	if s == ShapePrism {
		return ShapePyramid
	}
	return ShapePrism
}

func (s Shape) String() string {
	switch s {
	case ShapePrism:
		return "prism"
	case ShapePyramid:
		return "pyramid"
	default:
		return "unknown"
	}
}
