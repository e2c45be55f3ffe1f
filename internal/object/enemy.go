package object

import "gridscape/internal/grid"

// NewEnemy places a patrolling hazard. The enemy walks along the axis of
// its rotation state and turns around whenever it returns to its start
// cell or reaches the end of its patrol range.
func NewEnemy(pos grid.Position, state, reach int) Object {
	o := newObject(grid.TypeEnemy, pos, 9, state)
	o.reach = reach
	return o
}

func (o *Object) stepEnemy() {
	if o.reach > 0 {
		o.Pos = o.Pos.Add(grid.Direction(o.State))
	}
	coord, start := o.Pos.Y, o.startPos.Y
	if o.State%2 == 0 {
		coord, start = o.Pos.X, o.startPos.X
	}
	if coord == start+o.reach || coord == start-o.reach || coord == start {
		o.State = (o.State + 2) % grid.RotationCount
	}
}
