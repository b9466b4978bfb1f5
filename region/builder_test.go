package region

import (
	"rectq/common"
	"rectq/index"
	"rectq/util"
	"testing"
)

func TestBuildAllowedRegion_singleRow(t *testing.T) {
	// Arrange
	points := []common.Point{{0, 0}, {5, 0}}

	// Act
	region, err := BuildAllowedRegion(points)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, common.Bound{common.Point{0, 0}, common.Point{5, 0}}, region.Bound)
	util.AssertEqual(t, 6, region.Count())

	for x := 0; x <= 5; x++ {
		entry, found := region.Search(common.Point{x, 0})
		util.AssertTrue(t, found)
		if x == 0 || x == 5 {
			util.AssertEqual(t, index.TagPrimary, entry.Tag)
		} else {
			util.AssertEqual(t, index.TagConnector, entry.Tag)
		}
	}
	util.AssertFalse(t, region.Has(common.Point{0, 5}))
}

func TestBuildAllowedRegion_square(t *testing.T) {
	// Arrange
	points := []common.Point{{0, 0}, {0, 3}, {3, 0}, {3, 3}}

	// Act
	region, err := BuildAllowedRegion(points)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 16, region.Count())

	expectedTags := [][]index.Tag{
		{index.TagPrimary, index.TagConnector, index.TagConnector, index.TagPrimary},
		{index.TagConnector, index.TagSecondaryConnector, index.TagSecondaryConnector, index.TagConnector},
		{index.TagConnector, index.TagSecondaryConnector, index.TagSecondaryConnector, index.TagConnector},
		{index.TagPrimary, index.TagConnector, index.TagConnector, index.TagPrimary},
	}
	for y, row := range expectedTags {
		for x, expectedTag := range row {
			entry, found := region.Search(common.Point{x, y})
			util.AssertTrue(t, found)
			util.AssertEqual(t, expectedTag, entry.Tag)
		}
	}
}

func TestBuildAllowedRegion_noPoints(t *testing.T) {
	// Act
	region, err := BuildAllowedRegion(nil)

	// Assert
	util.AssertNil(t, region)
	util.AssertError(t, "Unable to build allowed region: No marked points given", err)
}

func TestFillRuns_onlyNeighboursAreConnected(t *testing.T) {
	// Arrange
	region := index.NewLatticeIndex(common.Bound{common.Point{0, 0}, common.Point{6, 1}})
	points := []common.Point{{6, 0}, {0, 0}, {2, 0}, {4, 1}}

	// Act
	filledPoints := FillRuns(region, points, Horizontal, index.TagConnector)

	// Assert
	util.AssertEqual(t, []common.Point{{1, 0}, {3, 0}, {4, 0}, {5, 0}}, filledPoints)
	util.AssertEqual(t, 4, region.Count())
	util.AssertFalse(t, region.Has(common.Point{2, 0}))
	util.AssertFalse(t, region.Has(common.Point{1, 1}))
}

func TestFillRuns_vertical(t *testing.T) {
	// Arrange
	region := index.NewLatticeIndex(common.Bound{common.Point{0, 0}, common.Point{3, 5}})
	points := []common.Point{{1, 5}, {1, 1}, {3, 0}, {2, 4}}

	// Act
	filledPoints := FillRuns(region, points, Vertical, index.TagSecondaryConnector)

	// Assert
	util.AssertEqual(t, []common.Point{{1, 2}, {1, 3}, {1, 4}}, filledPoints)
	for _, p := range filledPoints {
		entry, found := region.Search(p)
		util.AssertTrue(t, found)
		util.AssertEqual(t, index.TagSecondaryConnector, entry.Tag)
	}
}

func TestFillRuns_adjacentAndDuplicatePoints(t *testing.T) {
	// Arrange
	region := index.NewLatticeIndex(common.Bound{common.Point{0, 0}, common.Point{3, 0}})
	points := []common.Point{{0, 0}, {1, 0}, {1, 0}}

	// Act
	filledPoints := FillRuns(region, points, Horizontal, index.TagConnector)

	// Assert
	util.AssertEqual(t, 0, len(filledPoints))
	util.AssertEqual(t, 0, region.Count())
}
