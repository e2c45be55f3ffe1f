package object

import "gridscape/internal/grid"

// Door states. Closed doors toggle on interaction, locked doors require
// the agent to hold a key of the door's color.
const (
	DoorOpen   = 0
	DoorClosed = 1
	DoorLocked = 2
)

// NewDoor places a door. Only open doors are walkable, and only locked
// doors block sight.
func NewDoor(pos grid.Position, color, state int) Object {
	return newObject(grid.TypeDoor, pos, color, state)
}

func (o *Object) interactDoor(agent *Object) {
	if o.State == DoorLocked {
		if agent.Color != o.Color {
			return
		}
		o.State = DoorOpen
		agent.Color = agent.startColor
		return
	}
	o.State = (o.State + 1) % 2
}
