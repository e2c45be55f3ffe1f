package pov

import (
	"fmt"

	"gridscape/internal/grid"
	"gridscape/internal/object"
)

// LocalView observes the square of cells within a fixed radius around
// the agent. Every offset owns a fixed slot in the observation; cells
// outside the board or out of sight stay zero.
type LocalView struct {
	baseView
	radius int
	xray   bool
}

func NewLocalView(radius int, xray bool) *LocalView {
	return &LocalView{radius: radius, xray: xray}
}

func (v *LocalView) Name() string {
	if v.xray {
		return fmt.Sprintf("local_xray_%d", v.radius)
	}
	return fmt.Sprintf("local_%d", v.radius)
}

func (v *LocalView) Cells(_, _ int) int {
	span := 2*v.radius + 1
	return span * span
}

func (v *LocalView) TransformObs(state grid.State, agent *object.Object) grid.State {
	v.visible = nil
	span := 2*v.radius + 1
	obs := grid.NewState(span, span)

	for x := -v.radius; x <= v.radius; x++ {
		for y := -v.radius; y <= v.radius; y++ {
			cell := grid.Position{X: agent.Pos.X + x, Y: agent.Pos.Y + y}
			if !state.Contains(cell) {
				continue
			}
			if !v.xray && !isVisible(state, agent.Pos, cell) {
				continue
			}
			v.visible = append(v.visible, cell)
			obs.Set(grid.Position{X: v.radius + x, Y: v.radius + y}, state.At(cell))
		}
	}
	return obs
}
