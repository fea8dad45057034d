package collision

import (
	"time"

	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/grid"
	"golang.org/x/sync/errgroup"
)

// ParallelEvaluator splits the static set into contiguous partitions and scans
// each one on its own goroutine. The partition results are OR-ed together and
// their test counts summed, so the result matches ScanEvaluator.
type ParallelEvaluator struct {
	workers   int
	intersect IntersectFunc
	clock     Clock
}

var _ Evaluator = &ParallelEvaluator{}

// NewParallelEvaluatorOptions contains options for creating a new ParallelEvaluator.
type NewParallelEvaluatorOptions struct {
	// Workers is the number of partitions. Values below 2 scan sequentially.
	Workers int
	// Intersect replaces the AABB test. It must be safe for concurrent use.
	Intersect IntersectFunc
	// Clock replaces time.Now for the elapsed measurement.
	Clock Clock
}

func NewParallelEvaluator(opts NewParallelEvaluatorOptions) *ParallelEvaluator {
	e := &ParallelEvaluator{
		workers:   opts.Workers,
		intersect: opts.Intersect,
		clock:     opts.Clock,
	}
	if e.workers < 1 {
		e.workers = 1
	}
	if e.intersect == nil {
		e.intersect = geometry.Intersects
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	return e
}

// Workers returns the configured partition count.
func (e *ParallelEvaluator) Workers() int {
	return e.workers
}

type partitionResult struct {
	collided bool
	tests    int
}

// Evaluate tests query against every box in boxes, spread across the workers.
func (e *ParallelEvaluator) Evaluate(query geometry.Rect, boxes grid.BoxSet) Result {
	start := e.clock()

	workers := e.workers
	if workers > len(boxes) {
		workers = len(boxes)
	}
	if workers <= 1 {
		collided, tests := scan(e.intersect, query, boxes)
		return Result{Collided: collided, Elapsed: e.clock().Sub(start), Tests: tests}
	}

	results := make([]partitionResult, workers)
	chunk := (len(boxes) + workers - 1) / workers

	g := errgroup.Group{}
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(boxes) {
			hi = len(boxes)
		}
		if lo >= hi {
			continue
		}
		part := boxes[lo:hi]
		i := i
		g.Go(func() error {
			collided, tests := scan(e.intersect, query, part)
			results[i] = partitionResult{collided: collided, tests: tests}
			return nil
		})
	}
	// partitions never fail
	_ = g.Wait()

	result := Result{}
	for _, r := range results {
		result.Collided = result.Collided || r.collided
		result.Tests += r.tests
	}
	result.Elapsed = e.clock().Sub(start)

	return result
}
