package object

import (
	"math/rand"
	"testing"

	"gridscape/internal/grid"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestAgentTurnCycles(t *testing.T) {
	agent := NewAgent(grid.Position{X: 2, Y: 2}, 0)

	for i := 0; i < grid.RotationCount; i++ {
		agent.Step(StepContext{Action: grid.ActionTurnRight, RNG: testRNG()})
	}
	if agent.State != 0 {
		t.Fatalf("four right turns should restore rotation, got %d", agent.State)
	}

	agent.Step(StepContext{Action: grid.ActionTurnRight, RNG: testRNG()})
	agent.Step(StepContext{Action: grid.ActionTurnLeft, RNG: testRNG()})
	if agent.State != 0 {
		t.Fatalf("right then left turn should cancel, got %d", agent.State)
	}
	if (agent.Pos != grid.Position{X: 2, Y: 2}) {
		t.Fatalf("turning must not move the agent: %+v", agent.Pos)
	}
}

func TestAgentForwardRespectsWalkable(t *testing.T) {
	agent := NewAgent(grid.Position{X: 1, Y: 1}, 0)

	agent.Step(StepContext{Action: grid.ActionForward, Walkable: false, RNG: testRNG()})
	if (agent.Pos != grid.Position{X: 1, Y: 1}) {
		t.Fatalf("blocked forward moved the agent: %+v", agent.Pos)
	}

	agent.Step(StepContext{Action: grid.ActionForward, Walkable: true, RNG: testRNG()})
	if (agent.Pos != grid.Position{X: 2, Y: 1}) {
		t.Fatalf("forward in state 0 should move right: %+v", agent.Pos)
	}
}

func TestAgentInteractWithEmptyFront(t *testing.T) {
	agent := NewAgent(grid.Position{X: 1, Y: 1}, 0)
	agent.Step(StepContext{Action: grid.ActionInteract, RNG: testRNG()})
	if agent.Color != AgentStartColor || agent.State != 0 {
		t.Fatalf("interact with empty front must be a no-op: %+v", agent)
	}
}

func TestDoorToggleAndUnlock(t *testing.T) {
	agent := NewAgent(grid.Position{X: 1, Y: 1}, 0)
	door := NewDoor(grid.Position{X: 2, Y: 1}, 3, DoorClosed)

	door.Interact(&agent)
	if door.State != DoorOpen || !door.Walkable() {
		t.Fatalf("closed door should open on interact, state %d", door.State)
	}
	door.Interact(&agent)
	if door.State != DoorClosed || door.Walkable() {
		t.Fatalf("open door should close on interact, state %d", door.State)
	}

	locked := NewDoor(grid.Position{X: 3, Y: 1}, 3, DoorLocked)
	locked.Interact(&agent)
	if locked.State != DoorLocked {
		t.Fatalf("locked door opened without matching key, state %d", locked.State)
	}

	key := NewKey(grid.Position{X: 1, Y: 2}, 3)
	key.Interact(&agent)
	if agent.Color != 3 {
		t.Fatalf("key should paint the agent, color %d", agent.Color)
	}
	if !key.Removed() {
		t.Fatalf("collected key should leave the board, pos %+v", key.Pos)
	}

	locked.Interact(&agent)
	if locked.State != DoorOpen {
		t.Fatalf("matching key should unlock the door, state %d", locked.State)
	}
	if agent.Color != AgentStartColor {
		t.Fatalf("unlocking should consume the key color, agent color %d", agent.Color)
	}
}

func TestEnemyPatrolReverses(t *testing.T) {
	enemy := NewEnemy(grid.Position{X: 1, Y: 5}, 0, 2)

	wantX := []int{2, 3, 2, 1, 2, 3, 2, 1}
	for i, want := range wantX {
		enemy.Step(StepContext{Action: grid.ActionForward, RNG: testRNG()})
		if enemy.Pos.X != want || enemy.Pos.Y != 5 {
			t.Fatalf("tick %d: enemy at %+v, want x=%d", i+1, enemy.Pos, want)
		}
	}
	if !enemy.Harmful() || !enemy.Walkable() {
		t.Fatal("enemy must be walkable and harmful")
	}
}

func TestEnemyWithZeroReachFlipsInPlace(t *testing.T) {
	enemy := NewEnemy(grid.Position{X: 4, Y: 4}, 1, 0)

	enemy.Step(StepContext{RNG: testRNG()})
	if (enemy.Pos != grid.Position{X: 4, Y: 4}) || enemy.State != 3 {
		t.Fatalf("reach 0 should hold position and flip state: %+v state %d", enemy.Pos, enemy.State)
	}
	enemy.Step(StepContext{RNG: testRNG()})
	if enemy.State != 1 {
		t.Fatalf("second tick should flip back, state %d", enemy.State)
	}
}

func TestSmallRewardPaysOnceWhenFaced(t *testing.T) {
	pickup := NewSmallReward(grid.Position{X: 5, Y: 5}, 0.1)
	pickup.ID = 7

	if got := pickup.Step(StepContext{RNG: testRNG()}); got != 0 {
		t.Fatalf("unfaced pickup paid %v", got)
	}

	other := NewSmallReward(grid.Position{X: 6, Y: 5}, 0.1)
	other.ID = 8
	if got := pickup.Step(StepContext{Front: &other, RNG: testRNG()}); got != 0 {
		t.Fatalf("pickup paid for a different front object: %v", got)
	}

	if got := pickup.Step(StepContext{Front: &pickup, RNG: testRNG()}); got != 0.1 {
		t.Fatalf("faced pickup paid %v, want 0.1", got)
	}
	if !pickup.Removed() {
		t.Fatalf("paid pickup should leave the board, pos %+v", pickup.Pos)
	}
}

func TestBallReflectionStaysInZone(t *testing.T) {
	agent := NewAgent(grid.Position{X: 11, Y: 3}, 0)
	ball := NewBall(
		grid.Position{X: 12, Y: 3},
		grid.Position{X: 13, Y: 1},
		grid.Position{X: 17, Y: 5},
		5,
	)

	ball.Interact(&agent)
	if (ball.Pos != grid.Position{X: 13, Y: 3}) {
		t.Fatalf("push should mirror the agent through the ball: %+v", ball.Pos)
	}

	// A push that would land past the zone's high bound stays put.
	ball.Pos = grid.Position{X: 17, Y: 3}
	agent.Pos = grid.Position{X: 16, Y: 3}
	ball.Interact(&agent)
	if (ball.Pos != grid.Position{X: 17, Y: 3}) {
		t.Fatalf("push out of zone should be refused: %+v", ball.Pos)
	}
}

func TestRandomBlockRecolorsFromPalette(t *testing.T) {
	block := NewRandomBlock(grid.Position{X: 3, Y: 3})
	rng := testRNG()
	for i := 0; i < 50; i++ {
		block.Step(StepContext{RNG: rng})
		if block.Color < 0 || block.Color >= grid.ColorCount {
			t.Fatalf("color %d outside palette", block.Color)
		}
	}
}

func TestResetRestoresConstructionValues(t *testing.T) {
	agent := NewAgent(grid.Position{X: 1, Y: 1}, 0)
	key := NewKey(grid.Position{X: 2, Y: 1}, 4)

	key.Interact(&agent)
	agent.Pos = grid.Position{X: 9, Y: 9}
	agent.State = 2

	agent.Reset()
	key.Reset()

	if (agent.Pos != grid.Position{X: 1, Y: 1}) || agent.Color != AgentStartColor || agent.State != 0 {
		t.Fatalf("agent reset incomplete: %+v", agent)
	}
	if (key.Pos != grid.Position{X: 2, Y: 1}) || key.Removed() {
		t.Fatalf("key reset incomplete: %+v", key.Pos)
	}
}

func TestSimulateLeavesReceiverUntouched(t *testing.T) {
	enemy := NewEnemy(grid.Position{X: 1, Y: 5}, 0, 2)

	sim, _ := enemy.Simulate(StepContext{RNG: testRNG()})
	if (sim.Pos != grid.Position{X: 2, Y: 5}) {
		t.Fatalf("simulated enemy did not move: %+v", sim.Pos)
	}
	if (enemy.Pos != grid.Position{X: 1, Y: 5}) {
		t.Fatalf("simulate mutated the live enemy: %+v", enemy.Pos)
	}
	if sim.ID != enemy.ID {
		t.Fatalf("simulate must keep the handle, got %d want %d", sim.ID, enemy.ID)
	}
}
