package world

import (
	"strings"
	"testing"

	"gridscape/internal/grid"
	"gridscape/internal/object"
)

func testWorld() *World {
	w := New(6, 5)
	w.LoadWalls([]grid.Position{
		{X: 0, Y: 0}, {X: 3, Y: 2},
	})
	w.SetAgent(object.NewAgent(grid.Position{X: 1, Y: 1}, 0))
	w.SetTarget(object.NewTarget(grid.Position{X: 4, Y: 3}, 2))
	w.Add(object.NewKey(grid.Position{X: 2, Y: 1}, 3))
	w.Add(object.NewDoor(grid.Position{X: 2, Y: 3}, 3, object.DoorLocked))
	return w
}

func TestPlacementAssignsSequentialHandles(t *testing.T) {
	w := testWorld()

	seen := map[int]bool{}
	for _, o := range w.All() {
		if o.ID == 0 {
			t.Fatalf("placed object %s has no handle", o.Type)
		}
		if seen[o.ID] {
			t.Fatalf("duplicate handle %d", o.ID)
		}
		seen[o.ID] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 placed objects, got %d", len(seen))
	}
}

func TestFindAtSkipsWalls(t *testing.T) {
	w := testWorld()

	if o := w.FindAt(grid.Position{X: 3, Y: 2}); o != nil {
		t.Fatalf("walls must not be findable, got %s", o.Type)
	}
	o := w.FindAt(grid.Position{X: 2, Y: 1})
	if o == nil || o.Type != grid.TypeKey {
		t.Fatalf("expected key at (2,1), got %+v", o)
	}
	if w.FindAt(grid.Position{X: 5, Y: 4}) != nil {
		t.Fatal("empty cell should yield nil")
	}
}

func TestWalkableRules(t *testing.T) {
	w := testWorld()

	blocked := []grid.Position{
		{X: 0, Y: 2},  // border column
		{X: 2, Y: 0},  // border row
		{X: -1, Y: 2}, // outside
		{X: 3, Y: 2},  // wall
		{X: 2, Y: 1},  // key
		{X: 2, Y: 3},  // locked door
	}
	for _, pos := range blocked {
		if w.Walkable(pos) {
			t.Fatalf("position %+v should be blocked", pos)
		}
	}

	open := []grid.Position{
		{X: 1, Y: 2},
		{X: 4, Y: 3}, // target cell
	}
	for _, pos := range open {
		if !w.Walkable(pos) {
			t.Fatalf("position %+v should be walkable", pos)
		}
	}

	door := w.FindAt(grid.Position{X: 2, Y: 3})
	door.State = object.DoorOpen
	if !w.Walkable(grid.Position{X: 2, Y: 3}) {
		t.Fatal("open door should be walkable")
	}
}

func TestHarmfulChecksOtherObjectsOnly(t *testing.T) {
	w := testWorld()
	w.Add(object.NewEnemy(grid.Position{X: 4, Y: 1}, 0, 0))

	if !w.Harmful(grid.Position{X: 4, Y: 1}) {
		t.Fatal("enemy cell should be harmful")
	}
	if w.Harmful(grid.Position{X: 1, Y: 1}) {
		t.Fatal("agent cell should not be harmful")
	}
}

func TestEncodeLayersAndSkipsRemoved(t *testing.T) {
	w := testWorld()

	key := w.FindAt(grid.Position{X: 2, Y: 1})
	key.Interact(w.Agent)

	st := w.Encode()
	if got := st.At(grid.Position{X: 2, Y: 1}); got.Type != grid.TypeNone {
		t.Fatalf("removed key still encoded: %+v", got)
	}
	if got := st.At(grid.Position{X: 1, Y: 1}); got.Type != grid.TypeAgent || got.Color != 3 {
		t.Fatalf("unexpected agent cell: %+v", got)
	}
	if got := st.At(grid.Position{X: 3, Y: 2}); got.Type != grid.TypeWall {
		t.Fatalf("unexpected wall cell: %+v", got)
	}

	// Later placements write over earlier ones; the agent is always on top.
	w.Add(object.NewSmallReward(grid.Position{X: 1, Y: 1}, 0.1))
	st = w.Encode()
	if got := st.At(grid.Position{X: 1, Y: 1}); got.Type != grid.TypeAgent {
		t.Fatalf("agent should encode over shared cells: %+v", got)
	}
}

func TestEncodePanicsOnOutOfBoundsObject(t *testing.T) {
	w := testWorld()
	w.Agent.Pos = grid.Position{X: 17, Y: 1}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for out of bounds object")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "agent") || !strings.Contains(msg, "(17,1)") {
			t.Fatalf("panic should name the object and position: %v", r)
		}
	}()
	w.Encode()
}

func TestResetRestoresNonWallObjects(t *testing.T) {
	w := testWorld()

	key := w.FindAt(grid.Position{X: 2, Y: 1})
	key.Interact(w.Agent)
	w.Agent.Pos = grid.Position{X: 4, Y: 2}

	w.Reset()

	if key.Removed() {
		t.Fatal("reset should restore the key")
	}
	if (w.Agent.Pos != grid.Position{X: 1, Y: 1}) || w.Agent.Color != object.AgentStartColor {
		t.Fatalf("reset should restore the agent: %+v", w.Agent)
	}
}

func TestCloneSharesNothingButKeepsHandles(t *testing.T) {
	w := testWorld()
	dup := w.Clone()

	if dup.Agent.ID != w.Agent.ID || dup.Target.ID != w.Target.ID {
		t.Fatal("clone should keep handles")
	}

	dup.Agent.Pos = grid.Position{X: 3, Y: 3}
	dup.Other[0].Pos = grid.Removed

	if (w.Agent.Pos != grid.Position{X: 1, Y: 1}) {
		t.Fatalf("clone agent write leaked: %+v", w.Agent.Pos)
	}
	if w.Other[0].Removed() {
		t.Fatal("clone object write leaked")
	}
}
