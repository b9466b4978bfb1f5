package raster

import (
	"rectq/common"
)

// LineIterator enumerates the lattice points of the integer approximation (Bresenham) of a straight segment, excluding
// both endpoints. It can only be consumed once and may be abandoned at any time.
//
//	line, err := raster.NewLine(from, to)
//	for line.Next() {
//		p := line.Point()
//	}
type LineIterator struct {
	end    common.Point
	dx, dy int
	sx, sy int
	err    int
	x, y   int
	done   bool
}

// NewLine creates an iterator for the segment between the two points. It returns an InvalidInputError when both
// points are equal.
func NewLine(from common.Point, to common.Point) (*LineIterator, error) {
	if from == to {
		return nil, invalidInput(from)
	}

	dx := abs(to.X() - from.X())
	dy := abs(to.Y() - from.Y())

	sx := -1
	if from.X() < to.X() {
		sx = 1
	}
	sy := -1
	if from.Y() < to.Y() {
		sy = 1
	}

	return &LineIterator{
		end: to,
		dx:  dx,
		dy:  dy,
		sx:  sx,
		sy:  sy,
		err: dx - dy,
		x:   from.X(),
		y:   from.Y(),
	}, nil
}

// Next advances to the next point of the line. It returns false once the end point is reached, the end point itself
// is never emitted.
func (l *LineIterator) Next() bool {
	if l.done {
		return false
	}

	e2 := 2 * l.err
	if e2 > -l.dy {
		l.err -= l.dy
		l.x += l.sx
	}
	if e2 < l.dx {
		l.err += l.dx
		l.y += l.sy
	}

	if l.x == l.end.X() && l.y == l.end.Y() {
		l.done = true
		return false
	}
	return true
}

// Point returns the current point. It's only valid after Next returned true.
func (l *LineIterator) Point() common.Point {
	return common.Point{l.x, l.y}
}

// Points collects all remaining points of the line.
func (l *LineIterator) Points() []common.Point {
	var points []common.Point
	for l.Next() {
		points = append(points, l.Point())
	}
	return points
}

// LinePoints returns all intermediate points between the two given points.
func LinePoints(from common.Point, to common.Point) ([]common.Point, error) {
	line, err := NewLine(from, to)
	if err != nil {
		return nil, err
	}
	return line.Points(), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
