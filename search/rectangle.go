package search

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"rectq/common"
	"rectq/raster"
	"reflect"
	"runtime"
	"sync"
	"time"
)

// Region is the set of allowed lattice points a constrained rectangle's diagonals must lie in.
type Region interface {
	Has(p common.Point) bool
}

type unrestricted struct{}

func (unrestricted) Has(common.Point) bool {
	return true
}

// Result describes the best rectangle found. Pair holds the indices of the two corners within the input list.
type Result struct {
	Area    int
	Found   bool
	Corners [2]common.Point
	Pair    [2]int
}

// Bound returns the rectangle spanned by the two corners.
func (r Result) Bound() common.Bound {
	return common.Bound{r.Corners[0], r.Corners[0]}.Expand(r.Corners[1])
}

// isBetterThan orders results by area. Equal areas are ordered by the pair indices so that the result does not depend
// on the distribution of the pairs among the workers.
func (r Result) isBetterThan(other Result) bool {
	if !r.Found {
		return false
	}
	if !other.Found {
		return true
	}
	if r.Area != other.Area {
		return r.Area > other.Area
	}
	return pairLess(r.Pair, other.Pair)
}

// Area returns the number of lattice cells of the axis-aligned rectangle with the given opposite corners.
func Area(p1 common.Point, p2 common.Point) int {
	return (abs(p1.X()-p2.X()) + 1) * (abs(p1.Y()-p2.Y()) + 1)
}

type Searcher struct {
	Workers int
}

// NewSearcher creates a searcher distributing the pairs among the given number of goroutines. A number <= 0 uses one
// goroutine per CPU.
func NewSearcher(workers int) *Searcher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Searcher{
		Workers: workers,
	}
}

// MaxArea returns the largest rectangle having two of the given points as opposite corners.
func MaxArea(points []common.Point) (Result, error) {
	return NewSearcher(0).MaxArea(points)
}

// MaxAreaConstrained returns the largest rectangle having two of the given points as opposite corners and both
// diagonals within the given region.
func MaxAreaConstrained(points []common.Point, region Region) (Result, error) {
	return NewSearcher(0).MaxAreaConstrained(points, region)
}

func (s *Searcher) MaxArea(points []common.Point) (Result, error) {
	sigolo.Debugf("Search largest rectangle among %d points", len(points))
	return s.search(points, unrestricted{})
}

// MaxAreaConstrained fails when the region is nil, since a missing region allows no point at all.
func (s *Searcher) MaxAreaConstrained(points []common.Point, region Region) (Result, error) {
	if isNilRegion(region) {
		return Result{}, errors.Errorf("Unable to search constrained rectangle: No region given")
	}
	sigolo.Debugf("Search largest rectangle among %d points with diagonals inside %v", len(points), region)
	return s.search(points, region)
}

type workerResult struct {
	best    Result
	err     error
	errPair [2]int
}

func (s *Searcher) search(points []common.Point, region Region) (Result, error) {
	if len(points) < 2 {
		return Result{}, emptyInput(len(points))
	}

	searchStartTime := time.Now()

	numWorkers := s.Workers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if numWorkers > len(points)-1 {
		numWorkers = len(points) - 1
	}

	// Each worker handles every numWorkers-th first corner. Since the number of pairs per first corner decreases,
	// striding keeps the workload roughly even.
	results := make([]workerResult, numWorkers)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(w int) {
			defer wg.Done()
			results[w] = searchPairs(points, region, w, numWorkers)
		}(w)
	}
	wg.Wait()

	var best Result
	var firstErr *workerResult
	for i := range results {
		r := &results[i]
		if r.err != nil {
			if firstErr == nil || pairLess(r.errPair, firstErr.errPair) {
				firstErr = r
			}
			continue
		}
		if r.best.isBetterThan(best) {
			best = r.best
		}
	}
	if firstErr != nil {
		return Result{}, firstErr.err
	}

	sigolo.Debugf("Searched %d pairs with %d workers in %s, best area is %d", len(points)*(len(points)-1)/2, numWorkers, time.Since(searchStartTime), best.Area)

	return best, nil
}

func searchPairs(points []common.Point, region Region, offset int, stride int) workerResult {
	var best Result
	for i := offset; i < len(points); i += stride {
		for j := i + 1; j < len(points); j++ {
			p1, p2 := points[i], points[j]

			if _, ok := region.(unrestricted); !ok {
				allowed, err := diagonalsAllowed(p1, p2, region)
				if err != nil {
					return workerResult{err: err, errPair: [2]int{i, j}}
				}
				if !allowed {
					continue
				}
			}

			candidate := Result{
				Area:    Area(p1, p2),
				Found:   true,
				Corners: [2]common.Point{p1, p2},
				Pair:    [2]int{i, j},
			}
			if candidate.isBetterThan(best) {
				best = candidate
			}
		}
	}
	return workerResult{best: best}
}

// diagonalsAllowed checks that every lattice point strictly between the corners on both diagonals of the rectangle is
// part of the region. Diagonals of zero length have no such points and are skipped.
func diagonalsAllowed(p1 common.Point, p2 common.Point, region Region) (bool, error) {
	diagonals := [2][2]common.Point{
		{p1, p2},
		{{p1.X(), p2.Y()}, {p2.X(), p1.Y()}},
	}

	for _, diagonal := range diagonals {
		if diagonal[0] == diagonal[1] {
			continue
		}

		line, err := raster.NewLine(diagonal[0], diagonal[1])
		if err != nil {
			return false, errors.Wrapf(err, "Unable to rasterize diagonal of rectangle %s-%s", p1, p2)
		}

		for line.Next() {
			if !region.Has(line.Point()) {
				sigolo.Tracef("Rectangle %s-%s rejected, %s is not allowed", p1, p2, line.Point())
				return false, nil
			}
		}
	}

	return true, nil
}

func isNilRegion(region Region) bool {
	if region == nil {
		return true
	}
	v := reflect.ValueOf(region)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func pairLess(a [2]int, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
