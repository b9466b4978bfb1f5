package region

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"rectq/common"
	"rectq/index"
	"sort"
	"time"
)

// Axis is the direction in which straight runs between aligned points are filled.
type Axis int

const (
	// Horizontal fills between points sharing the same y-coordinate.
	Horizontal Axis = iota
	// Vertical fills between points sharing the same x-coordinate.
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// shared returns the coordinate that points of one run have in common.
func (a Axis) shared(p common.Point) int {
	if a == Horizontal {
		return p.Y()
	}
	return p.X()
}

// along returns the coordinate that varies within a run.
func (a Axis) along(p common.Point) int {
	if a == Horizontal {
		return p.X()
	}
	return p.Y()
}

func (a Axis) point(shared int, along int) common.Point {
	if a == Horizontal {
		return common.Point{along, shared}
	}
	return common.Point{shared, along}
}

// BuildAllowedRegion stains a lattice index with the marked points and two generations of connector points. The
// index covers the bounding box of the marked points and is not modified afterwards.
func BuildAllowedRegion(points []common.Point) (*index.LatticeIndex, error) {
	bound, ok := common.BoundOf(points)
	if !ok {
		return nil, errors.Errorf("Unable to build allowed region: No marked points given")
	}

	sigolo.Debugf("Build allowed region for %d marked points within %s", len(points), bound)
	buildStartTime := time.Now()

	region := index.NewLatticeIndex(bound)

	for _, p := range points {
		region.Insert(p, index.TagPrimary)
	}
	sigolo.Debugf("Added %d primary points", len(points))

	// The second generation is seeded with the connectors of both first generation passes, so both have to be done
	// before the secondary passes start.
	var connectors []common.Point
	connectors = append(connectors, FillRuns(region, points, Horizontal, index.TagConnector)...)
	connectors = append(connectors, FillRuns(region, points, Vertical, index.TagConnector)...)

	FillRuns(region, connectors, Horizontal, index.TagSecondaryConnector)
	FillRuns(region, connectors, Vertical, index.TagSecondaryConnector)

	sigolo.Debugf("Built allowed region %s with depth %d in %s", region, region.Depth(), time.Since(buildStartTime))

	return region, nil
}

// FillRuns groups the given points by their shared coordinate on the given axis and inserts every lattice point
// strictly between two neighbours of a group into the region. Only neighbours in the sorted group are connected, not
// all pairs. The inserted points are returned in insertion order.
func FillRuns(region *index.LatticeIndex, points []common.Point, axis Axis, tag index.Tag) []common.Point {
	if len(points) < 2 {
		return nil
	}

	startTime := time.Now()

	sortedPoints := make([]common.Point, len(points))
	copy(sortedPoints, points)
	sort.Slice(sortedPoints, func(i, j int) bool {
		a, b := sortedPoints[i], sortedPoints[j]
		if axis.shared(a) != axis.shared(b) {
			return axis.shared(a) < axis.shared(b)
		}
		return axis.along(a) < axis.along(b)
	})
	sigolo.Tracef("Sorted %d points for %s %s pass after %s", len(sortedPoints), axis, tag, time.Since(startTime))

	var filledPoints []common.Point
	previous := sortedPoints[0]
	for _, p := range sortedPoints[1:] {
		if axis.shared(previous) == axis.shared(p) {
			for along := axis.along(previous) + 1; along < axis.along(p); along++ {
				filled := axis.point(axis.shared(p), along)
				region.Insert(filled, tag)
				filledPoints = append(filledPoints, filled)
			}
		}
		previous = p
	}

	sigolo.Debugf("Filled %d %s points in %s pass in %s", len(filledPoints), tag, axis, time.Since(startTime))

	return filledPoints
}
