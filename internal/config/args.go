package config

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrBadUsage means the positional argument count is wrong.
	ErrBadUsage = errors.New("expected exactly one argument")
	// ErrInvalidVertexCount means the vertex count is not an integer >= 3.
	ErrInvalidVertexCount = errors.New("number of vertices must be at least 3")
)

// MinVertexCount is the smallest accepted vertex_count.
const MinVertexCount = 3

// ParseVertexCount validates the positional arguments and returns the
// requested polygon size.
func ParseVertexCount(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w, got %d", ErrBadUsage, len(args))
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidVertexCount, args[0])
	}
	if n < MinVertexCount {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, n)
	}
	return n, nil
}
