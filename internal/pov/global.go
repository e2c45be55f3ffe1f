package pov

import (
	"gridscape/internal/grid"
	"gridscape/internal/object"
)

// GlobalView passes the full board encoding through unchanged.
type GlobalView struct {
	baseView
}

func NewGlobalView() *GlobalView {
	return &GlobalView{}
}

func (v *GlobalView) Name() string {
	return "global"
}

func (v *GlobalView) Cells(boardWidth, boardHeight int) int {
	return boardWidth * boardHeight
}

func (v *GlobalView) TransformObs(state grid.State, _ *object.Object) grid.State {
	return state
}
