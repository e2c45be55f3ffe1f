package scenario

import (
	"gridscape/internal/grid"
	"gridscape/internal/pov"
)

// border returns the closed wall ring around a width x height board.
func border(width, height int) []grid.Position {
	walls := make([]grid.Position, 0, 2*width+2*height-4)
	for x := 0; x < width; x++ {
		walls = append(walls, grid.Position{X: x, Y: 0}, grid.Position{X: x, Y: height - 1})
	}
	for y := 1; y < height-1; y++ {
		walls = append(walls, grid.Position{X: 0, Y: y}, grid.Position{X: width - 1, Y: y})
	}
	return walls
}

// span appends the axis-aligned wall run from (x0,y0) to (x1,y1) inclusive.
func span(walls []grid.Position, x0, y0, x1, y1 int) []grid.Position {
	dx, dy := step(x1-x0), step(y1-y0)
	x, y := x0, y0
	for {
		walls = append(walls, grid.Position{X: x, Y: y})
		if x == x1 && y == y1 {
			return walls
		}
		x += dx
		y += dy
	}
}

// cells appends standalone wall positions given as x,y pairs.
func cells(walls []grid.Position, xy ...int) []grid.Position {
	for i := 0; i+1 < len(xy); i += 2 {
		walls = append(walls, grid.Position{X: xy[i], Y: xy[i+1]})
	}
	return walls
}

func step(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// parsePOV resolves the view spec from options, global by default.
func parsePOV(opts Options) (pov.POV, error) {
	spec := opts.POV
	if spec == "" {
		spec = "global"
	}
	return pov.Parse(spec)
}
