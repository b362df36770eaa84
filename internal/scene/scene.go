package scene

import (
	"fmt"
	"log/slog"

	"honnef.co/go/geom3"
)

// Scene is a single shape together with the transforms bound to actions and
// the current render mode.
type Scene struct {
	Shape geom3.Shape
	Mode  Mode

	outlineGroup int
	fillGroup    int

	moveRight geom3.Mat4
	moveLeft  geom3.Mat4
	moveUp    geom3.Mat4
	moveDown  geom3.Mat4
	rotateCCW geom3.Mat4
	rotateCW  geom3.Mat4
	scaleUp   geom3.Mat4
	scaleDown geom3.Mat4

	// projection is nil for an orthographic view. view is its matrix for a
	// viewW by viewH window and is rebuilt when the window size changes.
	projection   *ProjectionConfig
	view         geom3.Mat4
	viewW, viewH int

	// buf is reused for vertex export from frame to frame.
	buf []float32
}

// New creates a scene from a configuration.
func New(cfg Config) (*Scene, error) {
	shape, err := cfg.Shape.BuildShape()
	if err != nil {
		return nil, fmt.Errorf("building shape: %w", err)
	}

	step := cfg.Step
	th := geom3.DegToRad(step.RotateDeg)
	s := &Scene{
		Shape:        shape,
		Mode:         Outline,
		outlineGroup: cfg.Shape.OutlineGroup,
		fillGroup:    cfg.Shape.FillGroup,
		moveRight:    geom3.Translate(geom3.Vec(step.Move, 0, 0)),
		moveLeft:     geom3.Translate(geom3.Vec(-step.Move, 0, 0)),
		moveUp:       geom3.Translate(geom3.Vec(0, step.Move, 0)),
		moveDown:     geom3.Translate(geom3.Vec(0, -step.Move, 0)),
		rotateCCW:    geom3.RotateZ(th),
		rotateCW:     geom3.RotateZ(-th),
		scaleUp:      geom3.Scale(step.Scale, step.Scale, step.Scale),
		scaleDown:    geom3.Scale(1/step.Scale, 1/step.Scale, 1/step.Scale),
	}
	if p := cfg.Projection; p != nil {
		proj := *p
		s.projection = &proj
		s.updateView(cfg.Window.Width, cfg.Window.Height)
	}

	slog.Debug("scene created",
		"vertices", shape.Len(),
		"groups", shape.NumGroups(),
		"center", shape.Center().String(),
		"perspective", s.projection != nil)
	return s, nil
}

// updateView rebuilds the perspective matrix for a width by height window.
func (s *Scene) updateView(width, height int) {
	if width == s.viewW && height == s.viewH {
		return
	}
	p := s.projection
	aspect := float32(width) / float32(height)
	s.view = geom3.Perspective(p.FOV, aspect, p.Near, p.Far).
		Mul(geom3.Translate(geom3.Vec(0, 0, -p.Distance)))
	s.viewW, s.viewH = width, height
}

// Do performs a single action. Quit is ignored; it is up to the caller to stop
// the program.
func (s *Scene) Do(a Action) error {
	switch a {
	case MoveRight:
		s.Shape.Transform(s.moveRight)
	case MoveLeft:
		s.Shape.Transform(s.moveLeft)
	case MoveUp:
		s.Shape.Transform(s.moveUp)
	case MoveDown:
		s.Shape.Transform(s.moveDown)
	case RotateCCW:
		s.Shape.RotateAboutCenter(s.rotateCCW)
	case RotateCW:
		s.Shape.RotateAboutCenter(s.rotateCW)
	case ScaleUp:
		s.Shape.ScaleAboutCenter(s.scaleUp)
	case ScaleDown:
		s.Shape.ScaleAboutCenter(s.scaleDown)
	case ModeFill:
		s.Mode = Fill
	case ModeOutline:
		s.Mode = Outline
	case ModePoints:
		s.Mode = Points
	case Quit:
	default:
		return fmt.Errorf("unknown action %q", a)
	}
	slog.Debug("action", "action", string(a), "center", s.Shape.Center().String(), "mode", s.Mode.String())
	return nil
}

// DoAll performs actions in order, stopping at the first error.
func (s *Scene) DoAll(actions []Action) error {
	for _, a := range actions {
		if err := s.Do(a); err != nil {
			return err
		}
	}
	return nil
}
