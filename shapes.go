package geom3

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Index groups created by [RegularPolygon] and [Disc].
const (
	// OutlineGroup holds the rim vertices in order, to be drawn as a line loop.
	OutlineGroup = 0
	// FillGroup holds a triangle list covering the interior.
	FillGroup = 1
)

// RegularPolygon returns a regular polygon with the given number of sides,
// lying in the plane z = center.Z. The first vertex is at angle 0, that is at
// center + (radius, 0, 0), and the rest follow anti-clockwise in a y-up space.
//
// The shape has two index groups: [OutlineGroup] and [FillGroup], the latter
// being a fan of triangles anchored at the first vertex.
func RegularPolygon(center Point, radius float32, sides int) (Shape, error) {
	if sides < 3 {
		return Shape{}, fmt.Errorf("%w: got %d", ErrTooFewSides, sides)
	}

	var s Shape
	for i := range sides {
		s.AddVertex(pointOnCircle(center, radius, i, sides))
	}

	outline := make([]uint32, sides)
	for i := range outline {
		outline[i] = uint32(i)
	}
	fill := make([]uint32, 0, 3*(sides-2))
	for i := 1; i < sides-1; i++ {
		fill = append(fill, 0, uint32(i), uint32(i+1))
	}

	if err := s.AddIndexGroup(outline...); err != nil {
		return Shape{}, err
	}
	if err := s.AddIndexGroup(fill...); err != nil {
		return Shape{}, err
	}
	if err := s.UpdateCenter(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// Disc returns a disc cut into the given number of wedge-shaped slices, lying
// in the plane z = center.Z. Vertex 0 is the hub at center; vertices 1 through
// slices lie on the rim, starting at angle 0 and proceeding anti-clockwise in a
// y-up space.
//
// [OutlineGroup] holds the rim vertices and [FillGroup] holds one triangle per
// slice, each made of the hub and two neighboring rim vertices.
func Disc(center Point, radius float32, slices int) (Shape, error) {
	if slices < 3 {
		return Shape{}, fmt.Errorf("%w: got %d", ErrTooFewSides, slices)
	}

	var s Shape
	s.AddVertex(center)
	for i := range slices {
		s.AddVertex(pointOnCircle(center, radius, i, slices))
	}

	outline := make([]uint32, slices)
	for i := range outline {
		outline[i] = uint32(i + 1)
	}
	fill := make([]uint32, 0, 3*slices)
	for i := 1; i <= slices; i++ {
		next := i + 1
		if next > slices {
			next = 1
		}
		fill = append(fill, 0, uint32(i), uint32(next))
	}

	if err := s.AddIndexGroup(outline...); err != nil {
		return Shape{}, err
	}
	if err := s.AddIndexGroup(fill...); err != nil {
		return Shape{}, err
	}
	if err := s.UpdateCenter(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// pointOnCircle returns the i-th of n evenly spaced points on the circle.
func pointOnCircle(center Point, radius float32, i, n int) Point {
	th := float32(2 * math.Pi * float64(i) / float64(n))
	sin, cos := math32.Sincos(th)
	return Point{
		X: center.X + radius*cos,
		Y: center.Y + radius*sin,
		Z: center.Z,
	}
}
