package world

import (
	"fmt"

	"gridscape/internal/grid"
	"gridscape/internal/object"
)

// World is the registry of every object placed on a fixed-size board.
// Placement assigns each object a handle starting at 1; handle 0 means
// the object was never placed.
//
// Non-wall iteration order is target, then the other objects in
// placement order, then the agent. The agent steps last so that the
// facts resolved at the start of a step stay valid for every object.
type World struct {
	Width  int
	Height int

	Agent  *object.Object
	Target *object.Object
	Other  []*object.Object
	Walls  []*object.Object

	nextID int
}

// New returns an empty world of the given dimensions.
func New(width, height int) *World {
	return &World{Width: width, Height: height}
}

func (w *World) place(o object.Object) *object.Object {
	w.nextID++
	o.ID = w.nextID
	placed := o
	return &placed
}

// SetAgent places the controllable agent.
func (w *World) SetAgent(o object.Object) *object.Object {
	w.Agent = w.place(o)
	return w.Agent
}

// SetTarget places the primary goal cell.
func (w *World) SetTarget(o object.Object) *object.Object {
	w.Target = w.place(o)
	return w.Target
}

// Add places any other non-wall object and returns its live handle.
func (w *World) Add(o object.Object) *object.Object {
	placed := w.place(o)
	w.Other = append(w.Other, placed)
	return placed
}

// LoadWalls places one wall per position.
func (w *World) LoadWalls(positions []grid.Position) {
	for _, pos := range positions {
		w.Walls = append(w.Walls, w.place(object.NewWall(pos)))
	}
}

// NonWall returns target, other objects and agent, in step order.
func (w *World) NonWall() []*object.Object {
	all := make([]*object.Object, 0, len(w.Other)+2)
	if w.Target != nil {
		all = append(all, w.Target)
	}
	all = append(all, w.Other...)
	if w.Agent != nil {
		all = append(all, w.Agent)
	}
	return all
}

// All returns every placed object, walls last.
func (w *World) All() []*object.Object {
	return append(w.NonWall(), w.Walls...)
}

// FindAt returns the non-wall object occupying a cell, or nil.
func (w *World) FindAt(pos grid.Position) *object.Object {
	for _, o := range w.NonWall() {
		if o.Pos == pos {
			return o
		}
	}
	return nil
}

// Walkable reports whether the agent may move onto a cell. The border
// columns and rows are never walkable, nor is any cell holding a
// blocking object.
func (w *World) Walkable(pos grid.Position) bool {
	if pos.X <= 0 || pos.X >= w.Width || pos.Y <= 0 || pos.Y >= w.Height {
		return false
	}
	for _, o := range w.All() {
		if o.Pos == pos && !o.Walkable() {
			return false
		}
	}
	return true
}

// Harmful reports whether a harmful object occupies a cell. Only objects
// outside the agent and target slots are considered.
func (w *World) Harmful(pos grid.Position) bool {
	for _, o := range w.Other {
		if o.Pos == pos && o.Harmful() {
			return true
		}
	}
	return false
}

// Reset restores every non-wall object to its construction values.
func (w *World) Reset() {
	for _, o := range w.Other {
		o.Reset()
	}
	if w.Agent != nil {
		w.Agent.Reset()
	}
	if w.Target != nil {
		w.Target.Reset()
	}
}

// Encode renders the board into a fresh state. Objects are written walls
// first and agent last, so the agent stays visible on shared cells.
// Removed objects are skipped. An object outside the board is a fatal
// consistency error.
func (w *World) Encode() grid.State {
	st := grid.NewState(w.Width, w.Height)
	write := func(o *object.Object) {
		if o.Removed() {
			return
		}
		if !st.Contains(o.Pos) {
			panic(fmt.Sprintf("world: %s at (%d,%d) outside %dx%d board",
				o.Type, o.Pos.X, o.Pos.Y, w.Width, w.Height))
		}
		st.Set(o.Pos, o.Cell())
	}
	for _, o := range w.Walls {
		write(o)
	}
	for _, o := range w.Other {
		write(o)
	}
	if w.Target != nil {
		write(w.Target)
	}
	if w.Agent != nil {
		write(w.Agent)
	}
	return st
}

// Clone returns a deep copy. Handles carry over, so objects in the copy
// can be matched to their originals by ID.
func (w *World) Clone() *World {
	dup := &World{Width: w.Width, Height: w.Height, nextID: w.nextID}
	if w.Agent != nil {
		agent := *w.Agent
		dup.Agent = &agent
	}
	if w.Target != nil {
		target := *w.Target
		dup.Target = &target
	}
	for _, o := range w.Other {
		other := *o
		dup.Other = append(dup.Other, &other)
	}
	for _, o := range w.Walls {
		wall := *o
		dup.Walls = append(dup.Walls, &wall)
	}
	return dup
}
