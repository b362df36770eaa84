package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/geom3"
)

func customConfig() Config {
	cfg := DefaultConfig()
	cfg.Shape = ShapeConfig{
		Kind:      KindCustom,
		Vertices:  [][3]float32{{-1, 1, 0}, {1, -1, 0}, {0, 0, 0}, {1, 0, 0}},
		Groups:    [][]uint32{{0, 1, 3}, {0, 1, 2}},
		FillGroup: 1,
	}
	return cfg
}

func TestFrameMapsNDCToWindow(t *testing.T) {
	s := newTestScene(t, customConfig())

	f, err := s.Frame(200, 100)
	require.NoError(t, err)
	assert.Equal(t, Outline, f.Mode)
	assert.Equal(t, []Vertex{{0, 0}, {200, 100}, {100, 50}, {200, 50}}, f.Vertices)
	assert.Equal(t, []uint32{0, 1, 3}, f.Indices)

	require.NoError(t, s.Do(ModeFill))
	f, err = s.Frame(200, 100)
	require.NoError(t, err)
	assert.Equal(t, Fill, f.Mode)
	assert.Equal(t, []uint32{0, 1, 2}, f.Indices)
}

func TestFrameMissingGroup(t *testing.T) {
	cfg := customConfig()
	cfg.Shape.Groups = cfg.Shape.Groups[:1]
	s := newTestScene(t, cfg)

	_, err := s.Frame(100, 100)
	require.NoError(t, err)

	require.NoError(t, s.Do(ModeFill))
	_, err = s.Frame(100, 100)
	assert.ErrorIs(t, err, geom3.ErrGroupOutOfRange)
}

func TestFramePerspective(t *testing.T) {
	cfg := customConfig()
	cfg.Window.Width = 100
	cfg.Window.Height = 100
	cfg.Projection = &ProjectionConfig{FOV: 90, Near: 1, Far: 10, Distance: 2}
	s := newTestScene(t, cfg)

	f, err := s.Frame(100, 100)
	require.NoError(t, err)

	// (1, 0, 0) is pushed to (1, 0, -2) and lands halfway to the right edge.
	v := f.Vertices[3]
	assert.InDelta(t, 75, v.X, 1e-3)
	assert.InDelta(t, 50, v.Y, 1e-3)

	// Projection doesn't touch the shape itself.
	assert.Equal(t, geom3.Pt(1, 0, 0), s.Shape.Vertex(3))
}

func TestFramePerspectiveFollowsWindowSize(t *testing.T) {
	cfg := customConfig()
	cfg.Window.Width = 100
	cfg.Window.Height = 100
	cfg.Projection = &ProjectionConfig{FOV: 90, Near: 1, Far: 10, Distance: 2}
	s := newTestScene(t, cfg)

	// Twice as wide: x in NDC halves, so (1, 0, -2) lands at 0.25.
	f, err := s.Frame(200, 100)
	require.NoError(t, err)
	assert.InDelta(t, 125, f.Vertices[3].X, 1e-3)
	assert.InDelta(t, 50, f.Vertices[3].Y, 1e-3)

	// A circle stays round: the projected offsets along x and y cover the
	// same number of pixels.
	cfg.Shape.Vertices[3] = [3]float32{0, 1, 0}
	s = newTestScene(t, cfg)
	f, err = s.Frame(200, 100)
	require.NoError(t, err)
	dy := f.Vertices[2].Y - f.Vertices[3].Y
	assert.InDelta(t, 25, dy, 1e-3)

	// Back to square.
	f, err = s.Frame(100, 100)
	require.NoError(t, err)
	assert.InDelta(t, 25, f.Vertices[2].Y-f.Vertices[3].Y, 1e-3)
}

func TestFrameInvalidSize(t *testing.T) {
	s := newTestScene(t, customConfig())
	_, err := s.Frame(0, 100)
	assert.Error(t, err)
}
