package object

import "gridscape/internal/grid"

// NewBall places a pushable ball. Interaction shoves the ball to the
// mirror of the agent's cell through the ball, as long as the landing
// cell stays inside the given zone (both bounds inclusive).
func NewBall(pos, zoneLow, zoneHigh grid.Position, color int) Object {
	o := newObject(grid.TypeBall, pos, color, 0)
	o.zoneLow = zoneLow
	o.zoneHigh = zoneHigh
	return o
}

func (o *Object) interactBall(agent *Object) {
	next := grid.Position{
		X: 2*o.Pos.X - agent.Pos.X,
		Y: 2*o.Pos.Y - agent.Pos.Y,
	}
	if next.X < o.zoneLow.X || next.X > o.zoneHigh.X ||
		next.Y < o.zoneLow.Y || next.Y > o.zoneHigh.Y {
		return
	}
	o.Pos = next
}
