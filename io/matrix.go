package io

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"rectq/common"
	"rectq/index"
)

// RenderRegion prints the region row by row, one character per lattice point of its bound. Allowed points are shown
// by the symbol of their tag, all others as '.'. Regions with more than maxCells points are rejected.
func RenderRegion(region *index.LatticeIndex, maxCells int, writer io.Writer) error {
	bound := region.Bound
	// Compared without multiplying, the product may overflow for large bounds.
	if bound.Width() > maxCells || bound.Height() > maxCells/bound.Width() {
		return errors.Errorf("Region %s has %dx%d cells, rendering is limited to %d", bound, bound.Width(), bound.Height(), maxCells)
	}

	bufferedWriter := bufio.NewWriter(writer)
	for y := bound.TopLeft().Y(); y <= bound.BottomRight().Y(); y++ {
		for x := bound.TopLeft().X(); x <= bound.BottomRight().X(); x++ {
			symbol := '.'
			if entry, found := region.Search(common.Point{x, y}); found {
				symbol = entry.Tag.Symbol()
			}
			_, err := bufferedWriter.WriteRune(symbol)
			if err != nil {
				return errors.Wrap(err, "Unable to write region")
			}
		}
		err := bufferedWriter.WriteByte('\n')
		if err != nil {
			return errors.Wrap(err, "Unable to write region")
		}
	}

	return errors.Wrap(bufferedWriter.Flush(), "Unable to flush rendered region")
}
