package geom3

import (
	"fmt"
	"iter"
	"slices"
)

// Shape is a polygonal object: an ordered list of vertices, the centroid of
// those vertices, and any number of index groups into the vertex list.
//
// Vertex order is significant; index groups refer to vertices by position. Each
// index group usually corresponds to one draw call, for example a line loop for
// the outline and a triangle list for the filled interior.
//
// The center is cached. [Shape.Transform] and the methods built on it keep it
// up to date, but [Shape.AddVertex] doesn't; call [Shape.UpdateCenter] after
// adding vertices.
//
// The zero value is an empty shape centered on the origin. A Shape must not be
// mutated concurrently.
type Shape struct {
	vertices []Point
	center   Point
	groups   [][]uint32
}

// Len returns the number of vertices.
func (s *Shape) Len() int {
	return len(s.vertices)
}

// NumGroups returns the number of index groups.
func (s *Shape) NumGroups() int {
	return len(s.groups)
}

// Vertex returns the i-th vertex.
func (s *Shape) Vertex(i int) Point {
	return s.vertices[i]
}

// Center returns the cached centroid.
func (s *Shape) Center() Point {
	return s.center
}

// Points returns an iterator over the shape's vertices, in order.
func (s *Shape) Points() iter.Seq[Point] {
	return slices.Values(s.vertices)
}

// AddVertex appends a vertex. It does not update the center.
func (s *Shape) AddVertex(pt Point) {
	s.vertices = append(s.vertices, pt)
}

// AddIndexGroup appends a new index group. Every index must refer to an
// existing vertex; otherwise ErrIndexOutOfRange is returned and the shape is
// left unchanged.
func (s *Shape) AddIndexGroup(indices ...uint32) error {
	for _, idx := range indices {
		if int(idx) >= len(s.vertices) {
			return fmt.Errorf("%w: index %d, shape has %d vertices", ErrIndexOutOfRange, idx, len(s.vertices))
		}
	}
	s.groups = append(s.groups, slices.Clone(indices))
	return nil
}

// Clone returns a deep copy of the shape.
func (s *Shape) Clone() Shape {
	groups := make([][]uint32, len(s.groups))
	for i, g := range s.groups {
		groups[i] = slices.Clone(g)
	}
	return Shape{
		vertices: slices.Clone(s.vertices),
		center:   s.center,
		groups:   groups,
	}
}

// Transform applies m to every vertex and to the center.
func (s *Shape) Transform(m Mat4) {
	for i, v := range s.vertices {
		s.vertices[i] = m.Apply(v)
	}
	s.center = m.Apply(s.center)
}

// Transformed returns a copy of the shape with m applied. s is not modified.
func (s *Shape) Transformed(m Mat4) Shape {
	out := s.Clone()
	out.Transform(m)
	return out
}

// TransformAboutCenter applies m relative to the shape's center: the shape is
// moved so that its center is at the origin, transformed by m, and moved back.
// Afterwards the center is reset to its value from before the call, which
// removes the rounding error accumulated by the round trip.
//
// m should leave the origin in place, as rotations and scales do. Transforms
// that move the origin displace the shape from its pivot while its recorded
// center stays behind.
func (s *Shape) TransformAboutCenter(m Mat4) {
	pivot := s.center
	s.Transform(Translate(Vec3(pivot).Negate()))
	s.Transform(m)
	s.Transform(Translate(Vec3(pivot)))
	s.center = pivot
}

// RotateAboutCenter rotates the shape about its center. rot must be a pure
// rotation about the origin, such as one returned by [RotateX], [RotateY], or
// [RotateZ]. The center is exactly the same after the call.
func (s *Shape) RotateAboutCenter(rot Mat4) {
	s.TransformAboutCenter(rot)
}

// ScaleAboutCenter scales the shape about its center, changing each vertex's
// distance from the center by the factors of scale, which must be a pure scale
// such as one returned by [Scale]. The center is exactly the same after the
// call.
func (s *Shape) ScaleAboutCenter(scale Mat4) {
	s.TransformAboutCenter(scale)
}

// UpdateCenter recomputes the center as the arithmetic mean of all vertices.
// It returns ErrEmptyShape if there are no vertices, leaving the center as is.
func (s *Shape) UpdateCenter() error {
	if len(s.vertices) == 0 {
		return ErrEmptyShape
	}
	var sum Vec3
	for _, v := range s.vertices {
		sum = sum.Add(Vec3(v))
	}
	s.center = Point(sum.Div(float32(len(s.vertices))))
	return nil
}

// BoundingBox returns the smallest axis-aligned box containing all vertices.
// The bounding box of an empty shape is the zero box.
func (s *Shape) BoundingBox() Box3 {
	if len(s.vertices) == 0 {
		return Box3{}
	}
	b := Box3{Min: s.vertices[0], Max: s.vertices[0]}
	for _, v := range s.vertices[1:] {
		b = b.UnionPoint(v)
	}
	return b
}

// Vertices returns the vertices as a flat slice of coordinates,
// [x0, y0, z0, x1, y1, z1, ...], suitable for copying into a vertex buffer.
func (s *Shape) Vertices() []float32 {
	return s.AppendVertices(make([]float32, 0, 3*len(s.vertices)))
}

// AppendVertices is like [Shape.Vertices] but appends to dst, allowing
// callers to reuse a buffer from frame to frame.
func (s *Shape) AppendVertices(dst []float32) []float32 {
	dst = slices.Grow(dst, 3*len(s.vertices))
	for _, v := range s.vertices {
		dst = append(dst, v.X, v.Y, v.Z)
	}
	return dst
}

// Indices returns a copy of the index group at position group. It returns
// ErrGroupOutOfRange if there is no such group.
func (s *Shape) Indices(group int) ([]uint32, error) {
	if group < 0 || group >= len(s.groups) {
		return nil, fmt.Errorf("%w: group %d, shape has %d groups", ErrGroupOutOfRange, group, len(s.groups))
	}
	return slices.Clone(s.groups[group]), nil
}
