package object

import "gridscape/internal/grid"

// NewRandomBlock places a block that redraws its color from the shared
// palette every step. It carries no reward and cannot be walked over.
func NewRandomBlock(pos grid.Position) Object {
	return newObject(grid.TypeRandomBlock, pos, 0, 0)
}
