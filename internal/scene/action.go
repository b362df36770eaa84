package scene

// Action is a named operation on a [Scene].
type Action string

const (
	MoveRight Action = "move-right"
	MoveLeft  Action = "move-left"
	MoveUp    Action = "move-up"
	MoveDown  Action = "move-down"
	RotateCCW Action = "rotate-ccw"
	RotateCW  Action = "rotate-cw"
	ScaleUp   Action = "scale-up"
	ScaleDown Action = "scale-down"

	ModeFill    Action = "mode-fill"
	ModeOutline Action = "mode-outline"
	ModePoints  Action = "mode-points"

	// Quit is handled by the window, not the scene.
	Quit Action = "quit"
)

var actions = map[Action]struct{}{
	MoveRight:   {},
	MoveLeft:    {},
	MoveUp:      {},
	MoveDown:    {},
	RotateCCW:   {},
	RotateCW:    {},
	ScaleUp:     {},
	ScaleDown:   {},
	ModeFill:    {},
	ModeOutline: {},
	ModePoints:  {},
	Quit:        {},
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	_, ok := actions[a]
	return ok
}

// Mode selects how the shape is drawn.
type Mode int

const (
	// Outline draws the outline group as a closed line loop.
	Outline Mode = iota
	// Fill draws the fill group as a triangle list.
	Fill
	// Points draws the outline and marks each vertex of the outline group.
	Points
)

func (m Mode) String() string {
	switch m {
	case Outline:
		return "outline"
	case Fill:
		return "fill"
	case Points:
		return "points"
	default:
		return "Mode(?)"
	}
}
