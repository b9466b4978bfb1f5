package io

import (
	"bufio"
	"context"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"io"
	"math"
	"os"
	"rectq/common"
	"strconv"
	"strings"
	"time"
)

// ReadPoints reads the marked points from the given file. OSM files (.osm and .pbf) contribute one point per node,
// all other files are read as text with one "x,y" pair per line.
func ReadPoints(filename string) ([]common.Point, error) {
	sigolo.Debugf("Read points from %s", filename)
	readStartTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to open input file %s", filename)
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			sigolo.Errorf("Unable to close input file %s: %+v", filename, closeErr)
		}
	}()

	var points []common.Point
	if strings.HasSuffix(filename, ".osm") {
		scanner := osmxml.New(context.Background(), file)
		points, err = ParseOsmPoints(scanner)
	} else if strings.HasSuffix(filename, ".pbf") {
		scanner := osmpbf.New(context.Background(), file, 1)
		points, err = ParseOsmPoints(scanner)
	} else {
		points, err = ParsePoints(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read points from %s", filename)
	}

	sigolo.Debugf("Read %d points in %s", len(points), time.Since(readStartTime))
	return points, nil
}

// ParsePoints parses one "x,y" pair per line. Surrounding whitespace and empty lines are ignored.
func ParsePoints(reader io.Reader) ([]common.Point, error) {
	var points []common.Point

	scanner := bufio.NewScanner(reader)
	lineCounter := 0
	for scanner.Scan() {
		lineCounter++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		splitLine := strings.Split(line, ",")
		if len(splitLine) != 2 {
			return nil, errors.Errorf("Wrong format of line %d: Expected two comma-separated integers but found '%s'", lineCounter, line)
		}

		x, err := strconv.Atoi(strings.TrimSpace(splitLine[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to parse x-coordinate in line %d", lineCounter)
		}
		y, err := strconv.Atoi(strings.TrimSpace(splitLine[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to parse y-coordinate in line %d", lineCounter)
		}

		points = append(points, common.Point{x, y})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "Error while scanning points")
	}

	return points, nil
}

// ParseOsmPoints turns every node of the scanner into a point using its longitude as x and its latitude as y. Ways
// and relations are ignored. The coordinates must be integral, which is the case for data drawn on a unit grid.
func ParseOsmPoints(scanner osm.Scanner) (points []common.Point, err error) {
	defer func() {
		closeErr := scanner.Close()
		if closeErr != nil && err == nil {
			points, err = nil, errors.Wrapf(closeErr, "Unable to close OSM scanner")
		}
	}()

	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}

		if node.Lon != math.Trunc(node.Lon) || node.Lat != math.Trunc(node.Lat) {
			return nil, errors.Errorf("Node %d has non-integral coordinate lon=%f, lat=%f", node.ID, node.Lon, node.Lat)
		}

		sigolo.Tracef("Read node %d at lon=%f, lat=%f", node.ID, node.Lon, node.Lat)
		points = append(points, common.Point{int(node.Lon), int(node.Lat)})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "Error while scanning OSM data")
	}

	return points, nil
}
