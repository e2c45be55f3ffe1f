package scenario

import (
	"math/rand"

	"gridscape/internal/engine"
	"gridscape/internal/grid"
	"gridscape/internal/object"
	"gridscape/internal/world"
)

func init() {
	mustRegister(Spec{
		Name:     "multitask",
		Summary:  "Two tasks on one board: unlock the west room and reach its goal, or push the ball onto the east goal.",
		Width:    19,
		Height:   7,
		MinSteps: 15,
		MaxSteps: 50,
		Tasks:    2,
		Build:    buildMultitask,
	})
}

func buildMultitask(opts Options) (*engine.Engine, error) {
	task := opts.Task
	if task == 0 {
		task = 1
	}

	w := world.New(19, 7)
	w.LoadWalls(multitaskWalls())
	w.SetAgent(object.NewAgent(grid.Position{X: 9, Y: 3}, 1))
	w.SetTarget(object.NewTarget(grid.Position{X: 3, Y: 3}, 2))
	w.Add(object.NewDoor(grid.Position{X: 6, Y: 3}, 3, object.DoorLocked))
	w.Add(object.NewKey(grid.Position{X: 7, Y: 1}, 3))
	ballTarget := w.Add(object.NewTarget(grid.Position{X: 15, Y: 3}, 5))
	ball := w.Add(object.NewBall(grid.Position{X: 12, Y: 3},
		grid.Position{X: 13, Y: 1}, grid.Position{X: 17, Y: 5}, 5))

	check := func() bool { return w.Agent.Pos == w.Target.Pos }
	minSteps := func() int { return westGoalMinSteps(w.Target.Pos) }
	if task == 2 {
		check = func() bool { return ball.Pos == ballTarget.Pos }
		minSteps = func() int { return ballGoalMinSteps(ballTarget.Pos) }
	}

	onReset := func(rng *rand.Rand) int {
		if opts.Random {
			w.Target.Pos = grid.Position{X: 1 + rng.Intn(5), Y: 1 + rng.Intn(5)}
			ballTarget.Pos = grid.Position{X: 14 + rng.Intn(4), Y: 1 + rng.Intn(5)}
		}
		return minSteps()
	}

	view, err := parsePOV(opts)
	if err != nil {
		return nil, err
	}
	return engine.New(engine.Config{
		Settings: engine.Settings{MinSteps: minSteps(), MaxSteps: 50},
		World:    w,
		POV:      view,
		Task:     check,
		OnReset:  onReset,
		Seed:     opts.Seed,
	})
}

// westGoalMinSteps is the optimal action count from the start to a
// goal cell in the west room, key pickup and door unlock included.
func westGoalMinSteps(goal grid.Position) int {
	steps := 18 - goal.X + abs(3-goal.Y)
	if goal.Y != 3 {
		steps++
	}
	return steps
}

// ballGoalMinSteps is the optimal action count for pushing the ball
// from its rack at (12,3) onto a goal cell in the east room.
func ballGoalMinSteps(goal grid.Position) int {
	steps := 2*goal.X - 22
	if goal.Y != 3 {
		steps += 2*abs(goal.Y-3) + 5
	}
	return steps
}

func multitaskWalls() []grid.Position {
	walls := border(19, 7)
	// west room divider, broken by the locked door at (6,3)
	walls = cells(walls, 6, 1, 6, 2, 6, 4, 6, 5)
	// east room divider, broken by the ball rack at (12,3)
	walls = cells(walls, 12, 1, 12, 2, 12, 4, 12, 5)
	return walls
}
