package collision

import (
	"time"

	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/grid"
)

// Result is the outcome of testing one query box against a static set.
type Result struct {
	// Collided is true if any static box intersects the query box.
	Collided bool
	// Elapsed is the wall-clock time spent scanning the set.
	Elapsed time.Duration
	// Tests is the number of pairwise intersection tests performed.
	Tests int
}

// Evaluator tests a query box against every box of a static set.
// Implementations never stop at the first hit: Result.Tests always equals len(boxes).
type Evaluator interface {
	Evaluate(query geometry.Rect, boxes grid.BoxSet) Result
}

// IntersectFunc reports whether two rectangles overlap.
type IntersectFunc func(a, b geometry.Rect) bool

// Clock returns the current time.
type Clock func() time.Time

// scan visits every box in order and reports whether any of them intersects query.
func scan(intersect IntersectFunc, query geometry.Rect, boxes grid.BoxSet) (collided bool, tests int) {
	for _, box := range boxes {
		tests++
		// no early exit, the full scan is what gets measured
		if intersect(query, box) {
			collided = true
		}
	}
	return collided, tests
}

// ScanEvaluator runs the full scan on the calling goroutine.
type ScanEvaluator struct {
	intersect IntersectFunc
	clock     Clock
}

var _ Evaluator = &ScanEvaluator{}

// NewScanEvaluatorOptions contains options for creating a new ScanEvaluator.
type NewScanEvaluatorOptions struct {
	// Intersect replaces the AABB test. Defaults to geometry.Intersects.
	Intersect IntersectFunc
	// Clock replaces time.Now for the elapsed measurement.
	Clock Clock
}

func NewScanEvaluator(opts NewScanEvaluatorOptions) *ScanEvaluator {
	e := &ScanEvaluator{
		intersect: opts.Intersect,
		clock:     opts.Clock,
	}
	if e.intersect == nil {
		e.intersect = geometry.Intersects
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	return e
}

// Evaluate tests query against every box in boxes.
func (e *ScanEvaluator) Evaluate(query geometry.Rect, boxes grid.BoxSet) Result {
	start := e.clock()
	collided, tests := scan(e.intersect, query, boxes)
	end := e.clock()

	return Result{
		Collided: collided,
		Elapsed:  end.Sub(start),
		Tests:    tests,
	}
}

// NewEvaluator returns a ParallelEvaluator for more than one worker and a ScanEvaluator otherwise.
func NewEvaluator(workers int) Evaluator {
	if workers > 1 {
		return NewParallelEvaluator(NewParallelEvaluatorOptions{Workers: workers})
	}
	return NewScanEvaluator(NewScanEvaluatorOptions{})
}
