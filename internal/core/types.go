package core

import "fmt"

// Size describes the playable dimensions of a grid, excluding the wall ring.
type Size struct {
	W int
	H int
}

// Cell is an integer grid coordinate. X grows to the right and Y grows
// downward.
type Cell struct {
	X int
	Y int
}

// String returns the coordinate as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Inside reports whether c lies in the playable area 1..W × 1..H.
func (s Size) Inside(c Cell) bool {
	return c.X >= 1 && c.X <= s.W && c.Y >= 1 && c.Y <= s.H
}

// Direction enumerates the four movement directions.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Directions lists every direction, handy for table tests and searches.
var Directions = [...]Direction{Right, Left, Up, Down}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the unit offset for one step in d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
