package io

import (
	"bytes"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"rectq/common"
	"rectq/region"
	"rectq/search"
	"rectq/util"
	"testing"
)

func TestWriteResultAsGeoJson(t *testing.T) {
	// Arrange
	points := []common.Point{{0, 0}, {5, 0}}
	allowedRegion, err := region.BuildAllowedRegion(points)
	util.AssertNil(t, err)
	rectangles := []RectangleOutput{
		{Result: search.Result{Area: 6, Found: true, Corners: [2]common.Point{{0, 0}, {5, 0}}}, Constrained: true},
		{Result: search.Result{}, Constrained: false},
	}
	buffer := &bytes.Buffer{}

	// Act
	err = WriteResultAsGeoJson(points, allowedRegion, rectangles, buffer)

	// Assert
	util.AssertNil(t, err)

	featureCollection, err := geojson.UnmarshalFeatureCollection(buffer.Bytes())
	util.AssertNil(t, err)
	// 2 marked points, 6 cells and the one found rectangle
	util.AssertEqual(t, 9, len(featureCollection.Features))
	util.AssertEqual(t, geojson.BBox{0, 0, 5, 0}, featureCollection.BBox)

	kinds := map[string]int{}
	for _, feature := range featureCollection.Features {
		kinds[feature.Properties.MustString("@kind")]++
	}
	util.AssertEqual(t, map[string]int{"marked": 2, "cell": 6, "rectangle": 1}, kinds)

	rectangle := featureCollection.Features[8]
	util.AssertEqual(t, 6.0, rectangle.Properties["area"])
	util.AssertEqual(t, true, rectangle.Properties["constrained"])
	util.AssertEqual(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{6, 1}}, rectangle.Geometry.Bound())
}

func TestWriteResultAsGeoJson_withoutRegion(t *testing.T) {
	// Arrange
	buffer := &bytes.Buffer{}

	// Act
	err := WriteResultAsGeoJson([]common.Point{{1, 2}}, nil, nil, buffer)

	// Assert
	util.AssertNil(t, err)
	featureCollection, err := geojson.UnmarshalFeatureCollection(buffer.Bytes())
	util.AssertNil(t, err)
	util.AssertEqual(t, 1, len(featureCollection.Features))
	util.AssertEqual(t, geojson.BBox{1, 2, 1, 2}, featureCollection.BBox)
	util.AssertEqual(t, orb.Point{1, 2}, featureCollection.Features[0].Geometry)
}
