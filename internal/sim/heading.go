// Package sim implements the snake simulation: a fixed grid, one snake,
// one food cell, advanced one discrete step per Tick. It is UI-agnostic
// and deterministic under a fixed seed.
package sim

// GridSize is the board dimension; cells live in [0, GridSize) on both axes.
const GridSize = 20

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Heading is the axis-aligned direction the head moves on the next tick.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Delta returns the per-tick (dx, dy) offset. Up decreases Y (screen
// coordinates).
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversing heading.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return h
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}
