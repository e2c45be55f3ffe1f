package export

import (
	"strings"

	"gridscape/internal/grid"
	"gridscape/internal/object"
)

// Render draws an encoded state one rune per cell, rows top to bottom.
// It accepts full boards and view observations alike.
func Render(s grid.State) string {
	var b strings.Builder
	b.Grow((s.Width + 1) * s.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			b.WriteByte(glyph(s.At(grid.Position{X: x, Y: y})))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(c grid.Cell) byte {
	switch c.Type {
	case grid.TypeNone:
		return '.'
	case grid.TypeAgent:
		switch ((c.State % grid.RotationCount) + grid.RotationCount) % grid.RotationCount {
		case 0:
			return '>'
		case 1:
			return '^'
		case 2:
			return '<'
		default:
			return 'v'
		}
	case grid.TypeWall:
		return '#'
	case grid.TypeTarget:
		return 'T'
	case grid.TypeDoor:
		switch c.State {
		case object.DoorOpen:
			return '/'
		case object.DoorLocked:
			return 'D'
		default:
			return 'd'
		}
	case grid.TypeKey:
		return 'k'
	case grid.TypeEnemy:
		return 'E'
	case grid.TypeRandomBlock:
		return '?'
	case grid.TypeSmallReward:
		return '*'
	case grid.TypeBall:
		return 'o'
	default:
		return '!'
	}
}
