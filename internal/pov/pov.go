package pov

import (
	"gridscape/internal/grid"
	"gridscape/internal/object"
)

// POV shapes what an agent senses and which raw actions it may submit.
// Implementations keep the cells observed by the last transform, so a
// renderer can highlight what the agent saw. Cells reports the fixed
// observation size for a board of the given dimensions.
type POV interface {
	Name() string
	TransformAction(raw int) (grid.Action, error)
	TransformObs(state grid.State, agent *object.Object) grid.State
	Cells(boardWidth, boardHeight int) int
	Visible() []grid.Position
}

type baseView struct {
	visible []grid.Position
}

func (v *baseView) Visible() []grid.Position {
	return v.visible
}

func (v *baseView) TransformAction(raw int) (grid.Action, error) {
	return grid.ParseAction(raw)
}

// isVisible walks the straight-ish line from the agent toward a cell and
// reports whether sight reaches it. Walls and locked doors block sight;
// the start and end cells themselves never do.
func isVisible(st grid.State, from, to grid.Position) bool {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)
	x, y := from.X+dx, from.Y+dy

	for x != to.X || y != to.Y {
		c := st.At(grid.Position{X: x, Y: y})
		if c.Type == grid.TypeWall ||
			(c.Type == grid.TypeDoor && c.State == object.DoorLocked) {
			return false
		}
		if x != to.X {
			x += dx
		}
		if y != to.Y {
			y += dy
		}
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
