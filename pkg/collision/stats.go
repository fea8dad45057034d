package collision

import (
	"fmt"
	"time"
)

// Stats accumulates evaluation results across frames.
type Stats struct {
	Frames     int
	Collisions int
	Tests      int
	Min        time.Duration
	Max        time.Duration
	Total      time.Duration
}

// Add records one evaluation result.
func (s *Stats) Add(r Result) {
	if s.Frames == 0 || r.Elapsed < s.Min {
		s.Min = r.Elapsed
	}
	if r.Elapsed > s.Max {
		s.Max = r.Elapsed
	}
	s.Frames++
	s.Tests += r.Tests
	s.Total += r.Elapsed
	if r.Collided {
		s.Collisions++
	}
}

// Mean returns the average elapsed time per frame.
func (s Stats) Mean() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

func (s Stats) String() string {
	return fmt.Sprintf("frames=%d collisions=%d tests=%d min=%s mean=%s max=%s",
		s.Frames, s.Collisions, s.Tests, s.Min, s.Mean(), s.Max)
}
