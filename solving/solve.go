package solving

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"rectq/common"
	"rectq/index"
	"rectq/region"
	"rectq/search"
	"time"
)

// Solution holds both answers for one set of marked points together with the allowed region the constrained answer
// is based on.
type Solution struct {
	Points        []common.Point
	Region        *index.LatticeIndex
	Unconstrained search.Result
	Constrained   search.Result
}

// Solve builds the allowed region of the points and searches the largest rectangle with and without the constraint
// that its diagonals lie in that region.
func Solve(points []common.Point, workers int) (*Solution, error) {
	sigolo.Infof("Start solving for %d points", len(points))
	solveStartTime := time.Now()

	searcher := search.NewSearcher(workers)

	unconstrained, err := searcher.MaxArea(points)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to find largest rectangle")
	}
	sigolo.Infof("Largest rectangle has area %d (corners %s and %s)", unconstrained.Area, unconstrained.Corners[0], unconstrained.Corners[1])

	allowedRegion, err := region.BuildAllowedRegion(points)
	if err != nil {
		return nil, err
	}

	constrained, err := searcher.MaxAreaConstrained(points, allowedRegion)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to find largest rectangle within allowed region")
	}
	if constrained.Found {
		sigolo.Infof("Largest allowed rectangle has area %d (corners %s and %s)", constrained.Area, constrained.Corners[0], constrained.Corners[1])
	} else {
		sigolo.Infof("No rectangle has both diagonals within the allowed region")
	}

	sigolo.Infof("Finished solving in %s", time.Since(solveStartTime))

	return &Solution{
		Points:        points,
		Region:        allowedRegion,
		Unconstrained: unconstrained,
		Constrained:   constrained,
	}, nil
}
