// Package scene holds the state shown by the shapeview command: a single
// shape, the actions that can be applied to it, and the configuration that
// binds keys to those actions.
//
// The package is independent of any windowing library. Keys are referred to by
// name and frames are produced in window coordinates; the command maps both to
// the library it uses.
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/geom3"
)

// Shape kinds understood by ShapeConfig.
const (
	KindDisc    = "disc"
	KindPolygon = "polygon"
	KindCustom  = "custom"
)

// Config configures the viewer.
type Config struct {
	Window     WindowConfig      `yaml:"window"`
	Shape      ShapeConfig       `yaml:"shape"`
	Step       StepConfig        `yaml:"step"`
	Projection *ProjectionConfig `yaml:"projection"`
	// Bindings maps key names to the actions performed, in order, when the key
	// is pressed.
	Bindings map[string][]Action `yaml:"bindings"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ShapeConfig describes the shape to display. Disc and polygon shapes are
// generated from Center, Radius, and Sides. Custom shapes list their vertices
// and index groups explicitly.
type ShapeConfig struct {
	Kind   string     `yaml:"kind"`
	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
	Sides  int        `yaml:"sides"`

	Vertices [][3]float32 `yaml:"vertices"`
	Groups   [][]uint32   `yaml:"groups"`

	OutlineGroup int `yaml:"outline_group"`
	FillGroup    int `yaml:"fill_group"`
}

// StepConfig sets the amount each action moves, rotates, or scales by.
type StepConfig struct {
	Move      float32 `yaml:"move"`
	RotateDeg float32 `yaml:"rotate_deg"`
	Scale     float32 `yaml:"scale"`
}

// ProjectionConfig enables a perspective view. The shape is pushed Distance
// units down the negative z axis and projected with the given vertical field of
// view, in degrees.
type ProjectionConfig struct {
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// DefaultConfig returns the built-in configuration: a sliced disc in
// normalized device coordinates and the classic key layout.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 732,
			Title:  "shapeview",
		},
		Shape: ShapeConfig{
			Kind:         KindDisc,
			Radius:       0.5,
			Sides:        8,
			OutlineGroup: geom3.OutlineGroup,
			FillGroup:    geom3.FillGroup,
		},
		Step: StepConfig{
			Move:      0.1,
			RotateDeg: 15,
			Scale:     1.1,
		},
		Bindings: DefaultBindings(),
	}
}

// DefaultBindings returns the classic key layout: WASD moves, Z and X rotate,
// E and Q scale, I/K/L/O combine all three, 1 to 3 switch the render mode,
// and Escape quits.
func DefaultBindings() map[string][]Action {
	return map[string][]Action{
		"D":      {MoveRight},
		"A":      {MoveLeft},
		"W":      {MoveUp},
		"S":      {MoveDown},
		"Z":      {RotateCCW},
		"X":      {RotateCW},
		"E":      {ScaleUp},
		"Q":      {ScaleDown},
		"O":      {MoveRight, ScaleDown, RotateCCW},
		"L":      {MoveDown, ScaleUp, RotateCCW},
		"K":      {MoveLeft, ScaleDown, RotateCCW},
		"I":      {MoveUp, ScaleUp, RotateCCW},
		"Digit1": {ModeFill},
		"Digit2": {ModeOutline},
		"Digit3": {ModePoints},
		"Escape": {Quit},
	}
}

// LoadConfig reads a YAML configuration file. Settings missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML configuration on top of [DefaultConfig] and
// validates the result. A bindings section replaces the default bindings
// entirely.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Bindings = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Bindings == nil {
		cfg.Bindings = DefaultBindings()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the viewer can't work with.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height))
	}
	switch cfg.Shape.Kind {
	case KindDisc, KindPolygon:
		if cfg.Shape.Radius <= 0 {
			errs = append(errs, fmt.Errorf("shape radius must be positive, got %g", cfg.Shape.Radius))
		}
		// Generated shapes always carry exactly two groups.
		errs = appendGroupErrs(errs, cfg.Shape, 2)
	case KindCustom:
		if len(cfg.Shape.Vertices) == 0 {
			errs = append(errs, errors.New("custom shape has no vertices"))
		}
		if len(cfg.Shape.Groups) == 0 {
			errs = append(errs, errors.New("custom shape has no index groups"))
		} else {
			errs = appendGroupErrs(errs, cfg.Shape, len(cfg.Shape.Groups))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown shape kind %q", cfg.Shape.Kind))
	}
	if cfg.Step.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale step must be positive, got %g", cfg.Step.Scale))
	}
	if p := cfg.Projection; p != nil {
		if p.FOV <= 0 || p.FOV >= 180 {
			errs = append(errs, fmt.Errorf("projection fov must be in (0, 180), got %g", p.FOV))
		}
		if p.Near <= 0 || p.Far <= p.Near {
			errs = append(errs, fmt.Errorf("projection needs 0 < near < far, got near %g, far %g", p.Near, p.Far))
		}
	}
	for key, actions := range cfg.Bindings {
		for _, a := range actions {
			if !a.Valid() {
				errs = append(errs, fmt.Errorf("key %s: unknown action %q", key, a))
			}
		}
	}
	return errors.Join(errs...)
}

func appendGroupErrs(errs []error, sc ShapeConfig, n int) []error {
	if sc.OutlineGroup < 0 || sc.OutlineGroup >= n {
		errs = append(errs, fmt.Errorf("outline_group %d out of range, shape has %d groups", sc.OutlineGroup, n))
	}
	if sc.FillGroup < 0 || sc.FillGroup >= n {
		errs = append(errs, fmt.Errorf("fill_group %d out of range, shape has %d groups", sc.FillGroup, n))
	}
	return errs
}

// BuildShape constructs the shape described by the configuration.
func (sc ShapeConfig) BuildShape() (geom3.Shape, error) {
	center := geom3.Pt(sc.Center[0], sc.Center[1], sc.Center[2])
	switch sc.Kind {
	case KindDisc:
		return geom3.Disc(center, sc.Radius, sc.Sides)
	case KindPolygon:
		return geom3.RegularPolygon(center, sc.Radius, sc.Sides)
	case KindCustom:
		var s geom3.Shape
		for _, v := range sc.Vertices {
			s.AddVertex(geom3.Pt(v[0], v[1], v[2]))
		}
		for i, g := range sc.Groups {
			if err := s.AddIndexGroup(g...); err != nil {
				return geom3.Shape{}, fmt.Errorf("index group %d: %w", i, err)
			}
		}
		if err := s.UpdateCenter(); err != nil {
			return geom3.Shape{}, err
		}
		return s, nil
	default:
		return geom3.Shape{}, fmt.Errorf("unknown shape kind %q", sc.Kind)
	}
}
