package frame

import "github.com/cbodonnell/boxbench/pkg/geometry"

// SweepSource is a headless InputSource that moves the pointer across the
// bounds in raster order, one step per frame, and quits after a fixed number of frames.
type SweepSource struct {
	bounds geometry.IntPoint
	step   geometry.IntPoint
	frames int

	polled  int
	pointer geometry.IntPoint
}

var _ InputSource = &SweepSource{}

// NewSweepSourceOptions contains options for creating a new SweepSource.
type NewSweepSourceOptions struct {
	// Bounds is the area swept by the pointer.
	Bounds geometry.IntPoint
	// Step is the pointer movement per frame. Non-positive components default to 1.
	Step geometry.IntPoint
	// Frames is the number of frames before Quit is reported.
	Frames int
}

func NewSweepSource(opts NewSweepSourceOptions) *SweepSource {
	step := opts.Step
	if step.X <= 0 {
		step.X = 1
	}
	if step.Y <= 0 {
		step.Y = 1
	}
	return &SweepSource{
		bounds: opts.Bounds,
		step:   step,
		frames: opts.Frames,
	}
}

// Poll returns the next pointer position.
func (s *SweepSource) Poll() Input {
	if s.polled >= s.frames {
		return Input{Quit: true}
	}

	input := Input{Pointer: s.pointer, PointerMoved: true}
	s.polled++

	s.pointer.X += s.step.X
	if s.pointer.X >= s.bounds.X {
		s.pointer.X = 0
		s.pointer.Y += s.step.Y
		if s.pointer.Y >= s.bounds.Y {
			s.pointer.Y = 0
		}
	}

	return input
}
