package object

import "gridscape/internal/grid"

// NewWall places an immovable blocking cell.
func NewWall(pos grid.Position) Object {
	return newObject(grid.TypeWall, pos, 0, 0)
}
