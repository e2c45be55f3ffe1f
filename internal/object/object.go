package object

import (
	"math/rand"

	"gridscape/internal/grid"
)

// Object is a single entity on the board. It carries plain values only,
// so a shallow copy is a full clone. ID is the handle assigned when the
// object is placed in a world; it stays stable across clones and resets.
type Object struct {
	ID    int
	Type  grid.TypeID
	Pos   grid.Position
	Color int
	State int

	startPos   grid.Position
	startColor int
	startState int

	reach    int
	reward   float64
	zoneLow  grid.Position
	zoneHigh grid.Position
}

// StepContext carries the pre-resolved facts every object sees during one
// step. Front and Walkable describe the cell the agent faces, computed
// once before any object moves.
type StepContext struct {
	Action   grid.Action
	Front    *Object
	Walkable bool
	RNG      *rand.Rand
}

func newObject(t grid.TypeID, pos grid.Position, color, state int) Object {
	return Object{
		Type:       t,
		Pos:        pos,
		Color:      color,
		State:      state,
		startPos:   pos,
		startColor: color,
		startState: state,
	}
}

// Step advances the object by one tick and returns its reward payout.
func (o *Object) Step(ctx StepContext) float64 {
	switch o.Type {
	case grid.TypeAgent:
		o.stepAgent(ctx)
	case grid.TypeEnemy:
		o.stepEnemy()
	case grid.TypeRandomBlock:
		o.Color = ctx.RNG.Intn(grid.ColorCount)
	case grid.TypeSmallReward:
		return o.stepSmallReward(ctx)
	}
	return 0
}

// Simulate returns a copy advanced by one tick, leaving the receiver
// untouched.
func (o Object) Simulate(ctx StepContext) (Object, float64) {
	reward := o.Step(ctx)
	return o, reward
}

// Interact applies the agent's interaction to this object.
func (o *Object) Interact(agent *Object) {
	switch o.Type {
	case grid.TypeDoor:
		o.interactDoor(agent)
	case grid.TypeKey:
		o.interactKey(agent)
	case grid.TypeBall:
		o.interactBall(agent)
	}
}

// Walkable reports whether the agent may move onto this object's cell.
func (o *Object) Walkable() bool {
	switch o.Type {
	case grid.TypeTarget, grid.TypeEnemy, grid.TypeSmallReward:
		return true
	case grid.TypeDoor:
		return o.State == DoorOpen
	default:
		return false
	}
}

// Harmful reports whether sharing a cell with this object ends the episode.
func (o *Object) Harmful() bool {
	return o.Type == grid.TypeEnemy
}

// Cell returns the encoded triple for this object.
func (o *Object) Cell() grid.Cell {
	return grid.Cell{Type: o.Type, Color: o.Color, State: o.State}
}

// Removed reports whether the object has been taken off the board.
func (o *Object) Removed() bool {
	return o.Pos == grid.Removed
}

// Reset restores position, color and state to their construction values.
func (o *Object) Reset() {
	o.Pos = o.startPos
	o.Color = o.startColor
	o.State = o.startState
}
