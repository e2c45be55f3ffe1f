package engine

import (
	"errors"
	"math/rand"

	"gridscape/internal/grid"
	"gridscape/internal/object"
	"gridscape/internal/pov"
	"gridscape/internal/world"
)

// DefaultMaxSteps bounds episodes whose settings leave MaxSteps unset.
const DefaultMaxSteps = 50

// InfoSteps is the info key holding the number of steps taken in the
// running episode.
const InfoSteps = "steps"

// Settings holds the episode bookkeeping of a scenario. MinSteps is the
// optimal action count for the task and scales the completion bonus:
// finishing in exactly MinSteps steps earns the full RewardScale.
type Settings struct {
	MinSteps    int
	MaxSteps    int
	RewardScale float64
}

// Config assembles an engine. World and Task are required; POV defaults
// to the global view. OnReset, when set, runs after every reset and may
// reshape the world; a positive return value replaces MinSteps, which
// lets tasks with movable goals keep the completion bonus honest.
type Config struct {
	Settings Settings
	World    *world.World
	POV      pov.POV
	Task     func() bool
	OnReset  func(rng *rand.Rand) int
	Seed     int64
}

// Info carries auxiliary diagnostics returned by Reset and Step.
type Info map[string]any

// ObsSpace describes the fixed shape of the observations an engine
// emits: Cells entries of Channels integer values each, every value in
// [0, High].
type ObsSpace struct {
	Cells    int
	Channels int
	High     int
}

// StepResult is the outcome of advancing the episode by one action.
type StepResult struct {
	Obs        grid.State
	Reward     float64
	Terminated bool
	Truncated  bool
	Info       Info
}

// Engine drives one episode at a time over a world. It is single
// threaded by contract: callers serialize Step, Reset and Simulate.
type Engine struct {
	settings Settings
	world    *world.World
	pov      pov.POV
	task     func() bool
	onReset  func(rng *rand.Rand) int

	src   splitSource
	rng   *rand.Rand
	steps int
}

// New validates the config and builds an engine positioned at the start
// state. Callers usually Reset before the first Step; constructing
// already yields a playable board.
func New(cfg Config) (*Engine, error) {
	if cfg.World == nil {
		return nil, errors.New("engine: world is required")
	}
	if cfg.World.Agent == nil || cfg.World.Target == nil {
		return nil, errors.New("engine: world needs an agent and a target")
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return nil, errors.New("engine: board dimensions must be positive")
	}
	if cfg.Task == nil {
		return nil, errors.New("engine: task predicate is required")
	}

	settings := cfg.Settings
	if settings.MaxSteps <= 0 {
		settings.MaxSteps = DefaultMaxSteps
	}
	if settings.RewardScale == 0 {
		settings.RewardScale = 1
	}

	view := cfg.POV
	if view == nil {
		view = pov.NewGlobalView()
	}

	e := &Engine{
		settings: settings,
		world:    cfg.World,
		pov:      view,
		task:     cfg.Task,
		onReset:  cfg.OnReset,
	}
	e.src.Seed(cfg.Seed)
	e.rng = rand.New(&e.src)
	return e, nil
}

// Reset restores every non-wall object to its starting values and
// returns the first observation of the new episode.
func (e *Engine) Reset() (grid.State, Info) {
	e.world.Reset()
	if e.onReset != nil {
		if min := e.onReset(e.rng); min > 0 {
			e.settings.MinSteps = min
		}
	}
	e.steps = 0
	return e.observe(), e.info()
}

// ResetSeed reseeds the random stream, then resets. Episodes sharing a
// seed and an action sequence are identical.
func (e *Engine) ResetSeed(seed int64) (grid.State, Info) {
	e.src.Seed(seed)
	return e.Reset()
}

// Step resolves one action. The facts about the cell the agent faces
// are computed once, then every non-wall object ticks in order: target,
// the other objects in placement order, and the agent last. Completing
// the task pays MinSteps/steps*RewardScale on top of object payouts.
//
// Steps past a terminal state are not rejected; callers observe the
// flags and reset, as the transport above this engine does.
func (e *Engine) Step(action int) (StepResult, error) {
	act, err := e.pov.TransformAction(action)
	if err != nil {
		return StepResult{}, err
	}

	reward := resolve(e.world, act, e.rng)
	e.steps++

	done := e.task()
	if done {
		reward += float64(e.settings.MinSteps) / float64(e.steps) * e.settings.RewardScale
	}

	return StepResult{
		Obs:        e.observe(),
		Reward:     reward,
		Terminated: done || e.world.Harmful(e.world.Agent.Pos),
		Truncated:  e.steps >= e.settings.MaxSteps,
		Info:       e.info(),
	}, nil
}

// Simulate returns the board encoding that taking an action would
// produce, without advancing the live episode. The whole world is
// cloned, including the random stream, so a following Step with the
// same action lands on exactly the simulated state.
func (e *Engine) Simulate(action int) (grid.State, error) {
	act, err := e.pov.TransformAction(action)
	if err != nil {
		return grid.State{}, err
	}

	clone := e.world.Clone()
	src := e.src
	resolve(clone, act, rand.New(&src))
	return clone.Encode(), nil
}

// resolve runs the shared step resolution against a world.
func resolve(w *world.World, act grid.Action, rng *rand.Rand) float64 {
	front := w.Agent.Front()
	ctx := object.StepContext{
		Action:   act,
		Front:    w.FindAt(front),
		Walkable: w.Walkable(front),
		RNG:      rng,
	}

	reward := 0.0
	for _, o := range w.NonWall() {
		reward += o.Step(ctx)
	}
	return reward
}

// ObservationSpace reports the shape observations take under the
// configured view. The shape is fixed for the life of the engine.
func (e *Engine) ObservationSpace() ObsSpace {
	return ObsSpace{
		Cells:    e.pov.Cells(e.world.Width, e.world.Height),
		Channels: 3,
		High:     10,
	}
}

// ActionSpace reports the number of discrete actions an agent may
// submit.
func (e *Engine) ActionSpace() int {
	return grid.ActionCount
}

// State returns the full board encoding regardless of the configured
// view.
func (e *Engine) State() grid.State {
	return e.world.Encode()
}

// World exposes the live world for rendering and inspection.
func (e *Engine) World() *world.World {
	return e.world
}

// POV returns the configured view.
func (e *Engine) POV() pov.POV {
	return e.pov
}

// StepCount returns the number of steps taken in the running episode.
func (e *Engine) StepCount() int {
	return e.steps
}

// Settings returns the effective episode settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

func (e *Engine) observe() grid.State {
	return e.pov.TransformObs(e.world.Encode(), e.world.Agent)
}

func (e *Engine) info() Info {
	return Info{InfoSteps: e.steps}
}
