package common

import (
	"github.com/paulmach/orb"
	"rectq/util"
	"testing"
)

func TestPoint_isAboveOrLeftOf(t *testing.T) {
	p := Point{10, 10}
	/*
		( 9, 9)   (10, 9)   (11, 9)

		( 9,10)   (10,10)   (11,10)

		( 9,11)   (10,11)   (11,11)
	*/

	// First Column
	util.AssertTrue(t, p.isAboveOrLeftOf(Point{9, 11}))
	util.AssertFalse(t, p.isAboveOrLeftOf(Point{9, 10}))
	util.AssertFalse(t, p.isAboveOrLeftOf(Point{9, 9}))

	// Second column
	util.AssertTrue(t, p.isAboveOrLeftOf(Point{10, 11}))
	util.AssertFalse(t, p.isAboveOrLeftOf(Point{10, 10}))
	util.AssertFalse(t, p.isAboveOrLeftOf(Point{10, 9}))

	// Third column
	util.AssertTrue(t, p.isAboveOrLeftOf(Point{11, 11}))
	util.AssertTrue(t, p.isAboveOrLeftOf(Point{11, 10}))
	util.AssertTrue(t, p.isAboveOrLeftOf(Point{11, 9}))
}

func TestPoint_isBelowOrRightOf(t *testing.T) {
	p := Point{10, 10}

	util.AssertTrue(t, p.isBelowOrRightOf(Point{9, 11}))
	util.AssertTrue(t, p.isBelowOrRightOf(Point{9, 10}))
	util.AssertTrue(t, p.isBelowOrRightOf(Point{9, 9}))

	util.AssertFalse(t, p.isBelowOrRightOf(Point{10, 11}))
	util.AssertFalse(t, p.isBelowOrRightOf(Point{10, 10}))
	util.AssertTrue(t, p.isBelowOrRightOf(Point{10, 9}))

	util.AssertFalse(t, p.isBelowOrRightOf(Point{11, 11}))
	util.AssertFalse(t, p.isBelowOrRightOf(Point{11, 10}))
	util.AssertTrue(t, p.isBelowOrRightOf(Point{11, 9}))
}

func TestBound_expand(t *testing.T) {
	bound := Bound{Point{10, 10}, Point{20, 20}}

	util.AssertEqual(t, bound, bound.Expand(Point{10, 10}))
	util.AssertEqual(t, bound, bound.Expand(Point{15, 15}))
	util.AssertEqual(t, bound, bound.Expand(Point{20, 20}))

	util.AssertEqual(t, Bound{Point{9, 9}, Point{20, 20}}, bound.Expand(Point{9, 9}))
	util.AssertEqual(t, Bound{Point{10, 10}, Point{21, 21}}, bound.Expand(Point{21, 21}))
	util.AssertEqual(t, Bound{Point{9, 10}, Point{20, 21}}, bound.Expand(Point{9, 21}))
	util.AssertEqual(t, Bound{Point{10, 9}, Point{21, 20}}, bound.Expand(Point{21, 9}))
}

func TestBound_contains(t *testing.T) {
	bound := Bound{Point{10, 10}, Point{20, 20}}

	// Top-left corner
	util.AssertFalse(t, bound.Contains(Point{9, 9}))
	util.AssertFalse(t, bound.Contains(Point{9, 10}))
	util.AssertFalse(t, bound.Contains(Point{10, 9}))
	util.AssertTrue(t, bound.Contains(Point{10, 10}))
	util.AssertTrue(t, bound.Contains(Point{11, 11}))

	// Bottom-right corner
	util.AssertTrue(t, bound.Contains(Point{19, 19}))
	util.AssertTrue(t, bound.Contains(Point{20, 20}))
	util.AssertFalse(t, bound.Contains(Point{20, 21}))
	util.AssertFalse(t, bound.Contains(Point{21, 20}))
	util.AssertFalse(t, bound.Contains(Point{21, 21}))

	// Other corners
	util.AssertTrue(t, bound.Contains(Point{20, 10}))
	util.AssertTrue(t, bound.Contains(Point{10, 20}))
	util.AssertFalse(t, bound.Contains(Point{21, 10}))
	util.AssertFalse(t, bound.Contains(Point{10, 21}))
}

func TestBound_boundOf(t *testing.T) {
	// Arrange
	points := []Point{{3, 7}, {-2, 4}, {5, 1}, {0, 0}}

	// Act
	bound, ok := BoundOf(points)

	// Assert
	util.AssertTrue(t, ok)
	util.AssertEqual(t, Bound{Point{-2, 0}, Point{5, 7}}, bound)
	util.AssertEqual(t, 8, bound.Width())
	util.AssertEqual(t, 8, bound.Height())
}

func TestBound_boundOfEmptyList(t *testing.T) {
	_, ok := BoundOf(nil)
	util.AssertFalse(t, ok)
}

func TestBound_toPolygon(t *testing.T) {
	// Arrange
	bound := Bound{Point{1, 2}, Point{3, 2}}

	// Act
	polygon := bound.ToPolygon()

	// Assert
	expected := orb.Polygon{
		orb.Ring{
			orb.Point{1, 2},
			orb.Point{4, 2},
			orb.Point{4, 3},
			orb.Point{1, 3},
			orb.Point{1, 2},
		},
	}
	util.AssertEqual(t, expected, polygon)
	util.AssertEqual(t, orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{3, 2}}, bound.ToOrbBound())
}
