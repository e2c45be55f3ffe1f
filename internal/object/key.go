package object

import "gridscape/internal/grid"

// NewKey places a collectible key. Interacting with it paints the agent
// in the key's color and removes the key from the board.
func NewKey(pos grid.Position, color int) Object {
	return newObject(grid.TypeKey, pos, color, 0)
}

func (o *Object) interactKey(agent *Object) {
	agent.Color = o.Color
	o.Pos = grid.Removed
}
