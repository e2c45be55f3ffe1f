package scenario

import (
	"gridscape/internal/engine"
	"gridscape/internal/grid"
	"gridscape/internal/object"
	"gridscape/internal/world"
)

func init() {
	mustRegister(Spec{
		Name:     "sparse",
		Summary:  "Key and door chain across five rooms with two patrolling enemies; a single reward on the goal cell.",
		Width:    15,
		Height:   11,
		MinSteps: 45,
		MaxSteps: 100,
		Tasks:    1,
		Build:    buildSparse,
	})
}

func buildSparse(opts Options) (*engine.Engine, error) {
	w := world.New(15, 11)
	w.LoadWalls(sparseWalls())
	w.SetAgent(object.NewAgent(grid.Position{X: 1, Y: 1}, 0))
	w.SetTarget(object.NewTarget(grid.Position{X: 7, Y: 4}, 2))

	// Each locked door matches a key placed one room earlier on the
	// route, so the rooms have to be cleared in order.
	w.Add(object.NewKey(grid.Position{X: 5, Y: 2}, 3))
	w.Add(object.NewDoor(grid.Position{X: 9, Y: 2}, 3, object.DoorLocked))
	w.Add(object.NewKey(grid.Position{X: 13, Y: 1}, 4))
	w.Add(object.NewDoor(grid.Position{X: 12, Y: 4}, 4, object.DoorLocked))
	w.Add(object.NewKey(grid.Position{X: 11, Y: 8}, 5))
	w.Add(object.NewDoor(grid.Position{X: 8, Y: 6}, 5, object.DoorLocked))
	w.Add(object.NewEnemy(grid.Position{X: 10, Y: 9}, 1, 4))
	w.Add(object.NewKey(grid.Position{X: 5, Y: 6}, 6))
	w.Add(object.NewDoor(grid.Position{X: 4, Y: 8}, 6, object.DoorLocked))
	w.Add(object.NewRandomBlock(grid.Position{X: 6, Y: 6}))
	w.Add(object.NewEnemy(grid.Position{X: 1, Y: 5}, 0, 2))

	view, err := parsePOV(opts)
	if err != nil {
		return nil, err
	}
	return engine.New(engine.Config{
		Settings: engine.Settings{MinSteps: 45, MaxSteps: 100},
		World:    w,
		POV:      view,
		Task:     func() bool { return w.Agent.Pos == w.Target.Pos },
		Seed:     opts.Seed,
	})
}

func sparseWalls() []grid.Position {
	walls := border(15, 11)
	// north room divider, broken by the first locked door at (9,2)
	walls = cells(walls, 9, 1, 9, 3)
	// band splitting north from south, with the goal pocket at (7,4)
	// and an opening for the second locked door at (12,4)
	walls = span(walls, 1, 4, 6, 4)
	walls = span(walls, 8, 4, 11, 4)
	walls = cells(walls, 13, 4, 7, 3)
	// south dividers, with openings for the locked doors at (8,6) and (4,8)
	walls = cells(walls, 8, 5, 8, 7, 8, 8, 8, 9)
	walls = cells(walls, 4, 5, 4, 6, 4, 7, 4, 9)
	return walls
}
