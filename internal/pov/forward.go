package pov

import (
	"fmt"

	"gridscape/internal/grid"
	"gridscape/internal/object"
)

// ForwardView observes the corridor of cells ahead of the agent: length
// rows beyond the agent's own row, each width cells across. Row 0 is the
// agent's own row, so the agent sees itself at the row's center slot.
// Width must be odd so the corridor centers on the agent.
type ForwardView struct {
	baseView
	length int
	width  int
	xray   bool
}

func NewForwardView(length, width int, xray bool) *ForwardView {
	return &ForwardView{length: length, width: width, xray: xray}
}

func (v *ForwardView) Name() string {
	if v.xray {
		return fmt.Sprintf("forward_xray_%d_%d", v.length, v.width)
	}
	return fmt.Sprintf("forward_%d_%d", v.length, v.width)
}

func (v *ForwardView) Cells(_, _ int) int {
	return (v.length + 1) * v.width
}

func (v *ForwardView) TransformObs(state grid.State, agent *object.Object) grid.State {
	v.visible = nil
	half := v.width / 2
	obs := grid.NewState(v.width, v.length+1)

	for l := 0; l <= v.length; l++ {
		for i := 0; i < v.width; i++ {
			cell := agent.Pos.Add(forwardOffset(agent.State, l, i-half))
			if !state.Contains(cell) {
				continue
			}
			if !v.xray && !isVisible(state, agent.Pos, cell) {
				continue
			}
			v.visible = append(v.visible, cell)
			obs.Set(grid.Position{X: i, Y: l}, state.At(cell))
		}
	}
	return obs
}

// forwardOffset maps corridor coordinates (l ahead, w across) to a
// screen delta for the given rotation state.
func forwardOffset(state, l, w int) grid.Position {
	switch ((state % grid.RotationCount) + grid.RotationCount) % grid.RotationCount {
	case 0:
		return grid.Position{X: l, Y: w}
	case 1:
		return grid.Position{X: -w, Y: -l}
	case 2:
		return grid.Position{X: -l, Y: -w}
	default:
		return grid.Position{X: w, Y: l}
	}
}
