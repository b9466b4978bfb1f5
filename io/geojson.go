package io

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"io"
	"os"
	"rectq/common"
	"rectq/index"
	"rectq/search"
	"time"
)

// RectangleOutput is a search result together with the kind of search that produced it.
type RectangleOutput struct {
	Result      search.Result
	Constrained bool
}

func WriteResultAsGeoJsonFile(filename string, points []common.Point, region *index.LatticeIndex, rectangles []RectangleOutput) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to create GeoJSON file %s", filename)
	}

	defer func() {
		err = file.Close()
		sigolo.FatalCheck(errors.Wrapf(err, "Unable to close file handle for GeoJSON file %s", file.Name()))
	}()

	return WriteResultAsGeoJson(points, region, rectangles, file)
}

// WriteResultAsGeoJson writes the marked points, all cells of the region (if given) and the found rectangles as one
// feature collection bounded by the marked points. Rectangles without a result are skipped.
func WriteResultAsGeoJson(points []common.Point, region *index.LatticeIndex, rectangles []RectangleOutput, writer io.Writer) error {
	sigolo.Info("Write result to GeoJSON")
	writeStartTime := time.Now()

	featureCollection := geojson.NewFeatureCollection()
	if bound, ok := common.BoundOf(points); ok {
		featureCollection.BBox = geojson.NewBBox(bound.ToOrbBound())
	}

	for i, p := range points {
		feature := geojson.NewFeature(p.ToOrbPoint())
		feature.Properties["@kind"] = "marked"
		feature.Properties["@index"] = i
		featureCollection.Append(feature)
	}

	if region != nil {
		region.Each(func(entry index.Entry) {
			feature := geojson.NewFeature(entry.Point.ToOrbPoint())
			feature.Properties["@kind"] = "cell"
			feature.Properties["@tag"] = entry.Tag.String()
			featureCollection.Append(feature)
		})
	}

	for _, rectangle := range rectangles {
		if !rectangle.Result.Found {
			continue
		}

		feature := geojson.NewFeature(rectangle.Result.Bound().ToPolygon())
		feature.Properties["@kind"] = "rectangle"
		feature.Properties["area"] = rectangle.Result.Area
		feature.Properties["constrained"] = rectangle.Constrained
		featureCollection.Append(feature)
	}

	geojsonBytes, err := featureCollection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Unable to marshal GeoJSON feature collection")
	}

	_, err = writer.Write(geojsonBytes)
	if err != nil {
		return errors.Wrap(err, "Unable to write GeoJSON")
	}

	sigolo.Infof("Finished writing %d features in %s", len(featureCollection.Features), time.Since(writeStartTime))

	return nil
}
