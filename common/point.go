package common

import (
	"fmt"
	"github.com/paulmach/orb"
)

// Point is a lattice coordinate. Two points are equal when both components are equal.
type Point [2]int

func (p Point) X() int { return p[0] }

func (p Point) Y() int { return p[1] }

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p[0], p[1])
}

func (p Point) ToOrbPoint() orb.Point {
	return orb.Point{float64(p[0]), float64(p[1])}
}

func (p Point) isAboveOrLeftOf(other Point) bool {
	return p.X() < other.X() || p.Y() < other.Y()
}

func (p Point) isBelowOrRightOf(other Point) bool {
	return p.X() > other.X() || p.Y() > other.Y()
}

// Bound is an inclusive rectangle of lattice points. The y-axis points downwards, so the top-left corner holds the
// minimum of both coordinates.
type Bound [2]Point

// BoundOf returns the smallest bound containing all given points. The second return value is false for an empty list.
func BoundOf(points []Point) (Bound, bool) {
	if len(points) == 0 {
		return Bound{}, false
	}

	bound := Bound{points[0], points[0]}
	for _, p := range points[1:] {
		bound = bound.Expand(p)
	}
	return bound, true
}

func (b Bound) TopLeft() Point { return b[0] }

func (b Bound) BottomRight() Point { return b[1] }

// Width returns the number of lattice columns covered by this bound.
func (b Bound) Width() int { return b[1].X() - b[0].X() + 1 }

// Height returns the number of lattice rows covered by this bound.
func (b Bound) Height() int { return b[1].Y() - b[0].Y() + 1 }

func (b Bound) Expand(p Point) Bound {
	if b.Contains(p) {
		return b
	}

	minX := b.TopLeft().X()
	minY := b.TopLeft().Y()

	maxX := b.BottomRight().X()
	maxY := b.BottomRight().Y()

	if p.X() < minX {
		minX = p.X()
	}
	if p.Y() < minY {
		minY = p.Y()
	}

	if p.X() > maxX {
		maxX = p.X()
	}
	if p.Y() > maxY {
		maxY = p.Y()
	}

	return Bound{
		Point{minX, minY},
		Point{maxX, maxY},
	}
}

func (b Bound) Contains(p Point) bool {
	return !p.isBelowOrRightOf(b.BottomRight()) && !p.isAboveOrLeftOf(b.TopLeft())
}

func (b Bound) ToOrbBound() orb.Bound {
	return orb.Bound{
		Min: b.TopLeft().ToOrbPoint(),
		Max: b.BottomRight().ToOrbPoint(),
	}
}

// ToPolygon returns the outline of the cells covered by this bound, i.e. the lower-right edge is moved by one unit so
// that a single-point bound becomes a unit square.
func (b Bound) ToPolygon() orb.Polygon {
	topLeft := b.TopLeft().ToOrbPoint()
	bottomRight := Point{b.BottomRight().X() + 1, b.BottomRight().Y() + 1}.ToOrbPoint()
	return orb.Polygon{
		orb.Ring{
			topLeft,
			orb.Point{bottomRight.X(), topLeft.Y()},
			bottomRight,
			orb.Point{topLeft.X(), bottomRight.Y()},
			topLeft,
		},
	}
}

func (b Bound) String() string {
	return fmt.Sprintf("[%s,%s]", b.TopLeft(), b.BottomRight())
}
