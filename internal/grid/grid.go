package grid

import "fmt"

// RotationCount is the number of discrete facing states. State 0 faces
// east on screen, each increment rotates counter-clockwise.
const RotationCount = 4

// ColorCount is the size of the shared color palette. Colors are plain
// indices in [0, ColorCount).
const ColorCount = 10

// Position is a cell coordinate. X grows to the right, Y grows downward.
type Position struct {
	X int
	Y int
}

// Removed marks objects that were taken off the board. A removed object
// keeps its identity but matches no cell and is skipped when encoding.
var Removed = Position{X: -1, Y: -1}

// Add returns the cell offset by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction returns the screen-space delta for one forward move in the
// given rotation state.
func Direction(state int) Position {
	switch ((state % RotationCount) + RotationCount) % RotationCount {
	case 0:
		return Position{X: 1}
	case 1:
		return Position{Y: -1}
	case 2:
		return Position{X: -1}
	default:
		return Position{Y: 1}
	}
}

// Action is one of the four discrete inputs accepted per step.
type Action int

const (
	ActionForward Action = iota
	ActionTurnRight
	ActionTurnLeft
	ActionInteract

	ActionCount = 4
)

// ParseAction validates a raw action index.
func ParseAction(raw int) (Action, error) {
	if raw < 0 || raw >= ActionCount {
		return 0, fmt.Errorf("action %d outside discrete range [0,%d)", raw, ActionCount)
	}
	return Action(raw), nil
}

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionTurnRight:
		return "turn-right"
	case ActionTurnLeft:
		return "turn-left"
	case ActionInteract:
		return "interact"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// TypeID identifies an object kind inside encoded cells. The zero value
// marks an empty cell.
type TypeID int

const (
	TypeNone TypeID = iota
	TypeAgent
	TypeWall
	TypeTarget
	TypeDoor
	TypeKey
	TypeEnemy
	TypeRandomBlock
	TypeSmallReward
	TypeBall
)

func (t TypeID) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeAgent:
		return "agent"
	case TypeWall:
		return "wall"
	case TypeTarget:
		return "target"
	case TypeDoor:
		return "door"
	case TypeKey:
		return "key"
	case TypeEnemy:
		return "enemy"
	case TypeRandomBlock:
		return "random-block"
	case TypeSmallReward:
		return "small-reward"
	case TypeBall:
		return "ball"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Cell is the encoded triple for one grid square.
type Cell struct {
	Type  TypeID
	Color int
	State int
}

// State is a row-major board encoding. Cell (x, y) lives at index
// x + y*Width. Observations returned by views reuse the same layout
// with their own dimensions.
type State struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewState returns a zeroed encoding of the given dimensions.
func NewState(width, height int) State {
	return State{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// Contains reports whether the position maps to a cell of this encoding.
func (s State) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Index returns the flat cell index for a position.
func (s State) Index(p Position) int {
	return p.X + p.Y*s.Width
}

// At returns the cell at a position.
func (s State) At(p Position) Cell {
	return s.Cells[s.Index(p)]
}

// Set overwrites the cell at a position.
func (s State) Set(p Position, c Cell) {
	s.Cells[s.Index(p)] = c
}

// Clone returns a state sharing nothing with the receiver.
func (s State) Clone() State {
	dup := s
	dup.Cells = make([]Cell, len(s.Cells))
	copy(dup.Cells, s.Cells)
	return dup
}
