package object

import "gridscape/internal/grid"

// AgentStartColor is the fixed starting color of the agent. The current
// color encodes the key it holds, so it cannot be chosen at construction.
const AgentStartColor = 1

// NewAgent places the controllable agent facing the given rotation state.
func NewAgent(pos grid.Position, state int) Object {
	return newObject(grid.TypeAgent, pos, AgentStartColor, state)
}

// Front returns the cell the agent is facing.
func (o *Object) Front() grid.Position {
	return o.Pos.Add(grid.Direction(o.State))
}

func (o *Object) stepAgent(ctx StepContext) {
	switch ctx.Action {
	case grid.ActionForward:
		if ctx.Walkable {
			o.Pos = o.Pos.Add(grid.Direction(o.State))
		}
	case grid.ActionTurnRight:
		o.State = (o.State + 3) % grid.RotationCount
	case grid.ActionTurnLeft:
		o.State = (o.State + 1) % grid.RotationCount
	case grid.ActionInteract:
		if ctx.Front != nil {
			ctx.Front.Interact(o)
		}
	}
}
