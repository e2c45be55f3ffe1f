package object

import "gridscape/internal/grid"

// NewTarget places a walkable goal cell.
func NewTarget(pos grid.Position, color int) Object {
	return newObject(grid.TypeTarget, pos, color, 0)
}
