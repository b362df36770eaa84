package scene

import "fmt"

// Vertex is a vertex position in window coordinates, with the origin at the
// top left and y pointing down.
type Vertex struct {
	X, Y float32
}

// Frame is everything needed to draw the scene once.
type Frame struct {
	Mode     Mode
	Vertices []Vertex
	// Indices into Vertices. For Outline and Points, a closed line loop; for
	// Fill, a triangle list.
	Indices []uint32
}

// Frame exports the shape for a window of the given size. Normalized device
// coordinates, -1 to 1 on both axes with y pointing up, are mapped onto the
// whole window. With a projection configured, its aspect ratio follows the
// window size.
func (s *Scene) Frame(width, height int) (Frame, error) {
	if width <= 0 || height <= 0 {
		return Frame{}, fmt.Errorf("invalid window size %dx%d", width, height)
	}
	src := &s.Shape
	if s.projection != nil {
		s.updateView(width, height)
		projected := s.Shape.Transformed(s.view)
		src = &projected
	}

	group := s.outlineGroup
	if s.Mode == Fill {
		group = s.fillGroup
	}
	indices, err := src.Indices(group)
	if err != nil {
		return Frame{}, fmt.Errorf("%s mode: %w", s.Mode, err)
	}

	s.buf = src.AppendVertices(s.buf[:0])
	w := float32(width)
	h := float32(height)
	verts := make([]Vertex, 0, len(s.buf)/3)
	for i := 0; i+2 < len(s.buf); i += 3 {
		x, y := s.buf[i], s.buf[i+1]
		verts = append(verts, Vertex{
			X: (x + 1) / 2 * w,
			Y: (1 - y) / 2 * h,
		})
	}

	return Frame{
		Mode:     s.Mode,
		Vertices: verts,
		Indices:  indices,
	}, nil
}
