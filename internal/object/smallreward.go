package object

import "gridscape/internal/grid"

// NewSmallReward places a one-shot reward pickup. It pays out the moment
// the agent faces it, regardless of the action taken that step, then
// leaves the board.
func NewSmallReward(pos grid.Position, reward float64) Object {
	o := newObject(grid.TypeSmallReward, pos, 9, 0)
	o.reward = reward
	return o
}

func (o *Object) stepSmallReward(ctx StepContext) float64 {
	if ctx.Front == nil || ctx.Front.ID != o.ID {
		return 0
	}
	o.Pos = grid.Removed
	return o.reward
}
