package geometry

import "math"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Round converts a surface coordinate to the nearest integer cell.
func Round(v float64) int {
	return int(math.Round(v))
}

// Cell is an integer grid coordinate, used when quantizing geometry onto a
// character matrix.
type Cell struct {
	X, Y int
}

// RasterizeSegment returns the grid cells crossed by the segment a-b using
// Bresenham's algorithm. Both endpoints are included.
func RasterizeSegment(a, b Point) []Cell {
	x0, y0 := Round(a.X), Round(a.Y)
	x1, y1 := Round(b.X), Round(b.Y)

	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	cells := make([]Cell, 0, dx-dy+1)
	err := dx + dy
	for {
		cells = append(cells, Cell{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
