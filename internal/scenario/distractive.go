package scenario

import (
	"gridscape/internal/engine"
	"gridscape/internal/grid"
	"gridscape/internal/object"
	"gridscape/internal/world"
)

func init() {
	mustRegister(Spec{
		Name:     "distractive",
		Summary:  "Small pickups down one corridor, the full reward down the other; collecting the pickups costs the optimal path.",
		Width:    23,
		Height:   7,
		MinSteps: 39,
		MaxSteps: 50,
		Tasks:    1,
		Build:    buildDistractive,
	})
}

func buildDistractive(opts Options) (*engine.Engine, error) {
	w := world.New(23, 7)
	w.LoadWalls(distractiveWalls())
	w.SetAgent(object.NewAgent(grid.Position{X: 11, Y: 1}, 3))
	w.SetTarget(object.NewTarget(grid.Position{X: 21, Y: 5}, 2))

	w.Add(object.NewSmallReward(grid.Position{X: 8, Y: 5}, 0.1))
	w.Add(object.NewSmallReward(grid.Position{X: 6, Y: 1}, 0.1))
	w.Add(object.NewSmallReward(grid.Position{X: 4, Y: 5}, 0.1))
	w.Add(object.NewSmallReward(grid.Position{X: 2, Y: 1}, 0.1))
	w.Add(object.NewSmallReward(grid.Position{X: 1, Y: 5}, 0.1))

	view, err := parsePOV(opts)
	if err != nil {
		return nil, err
	}
	return engine.New(engine.Config{
		Settings: engine.Settings{MinSteps: 39, MaxSteps: 50},
		World:    w,
		POV:      view,
		Task:     func() bool { return w.Agent.Pos == w.Target.Pos },
		Seed:     opts.Seed,
	})
}

func distractiveWalls() []grid.Position {
	walls := border(23, 7)
	// west corridor: short switchbacks holding the pickups
	walls = span(walls, 3, 1, 3, 4)
	walls = span(walls, 5, 2, 5, 5)
	walls = span(walls, 7, 1, 7, 4)
	walls = span(walls, 9, 2, 9, 5)
	walls = span(walls, 10, 2, 10, 5)
	// east corridor: the long serpent guarding the goal
	walls = span(walls, 12, 1, 12, 4)
	walls = span(walls, 14, 2, 14, 5)
	walls = span(walls, 16, 1, 16, 4)
	walls = span(walls, 18, 2, 18, 5)
	walls = span(walls, 20, 1, 20, 4)
	walls = span(walls, 21, 1, 21, 4)
	return walls
}
