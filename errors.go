package geom3

import "errors"

var (
	// ErrEmptyShape is returned by operations that need at least one vertex.
	ErrEmptyShape = errors.New("geom3: shape has no vertices")
	// ErrIndexOutOfRange is returned when an index group refers to a vertex
	// that doesn't exist.
	ErrIndexOutOfRange = errors.New("geom3: vertex index out of range")
	// ErrGroupOutOfRange is returned when selecting an index group that doesn't
	// exist.
	ErrGroupOutOfRange = errors.New("geom3: index group out of range")
	// ErrTooFewSides is returned by shape constructors asked for fewer than
	// three sides.
	ErrTooFewSides = errors.New("geom3: need at least 3 sides")
)
