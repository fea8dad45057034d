package config

import (
	"fmt"
	"time"

	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/grid"
)

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultBoxCount     = 8000
	DefaultTPS          = 60
)

var (
	DefaultBoxSize   = geometry.IntPoint{X: 2, Y: 2}
	DefaultPadding   = geometry.IntPoint{X: 4, Y: 4}
	DefaultQuerySize = geometry.IntPoint{X: 2, Y: 2}
)

// Config holds the startup parameters of the benchmark.
type Config struct {
	// Bounds is the size of the window. Boxes never pass Bounds.X; rows may pass Bounds.Y.
	Bounds geometry.IntPoint
	// BoxCount is the number of static boxes to generate.
	BoxCount int
	// BoxSize is the size of each static box.
	BoxSize geometry.IntPoint
	// Padding is the gap between static boxes.
	Padding geometry.IntPoint
	// QuerySize is the size of the moving query box.
	QuerySize geometry.IntPoint
	// TPS is the target number of frames per second.
	TPS int
	// Workers is the number of evaluator partitions. 0 and 1 scan sequentially.
	Workers int
}

// Default returns a 640x480 window tiled with 8000 2x2 boxes at 60 TPS.
func Default() Config {
	return Config{
		Bounds:    geometry.IntPoint{X: DefaultScreenWidth, Y: DefaultScreenHeight},
		BoxCount:  DefaultBoxCount,
		BoxSize:   DefaultBoxSize,
		Padding:   DefaultPadding,
		QuerySize: DefaultQuerySize,
		TPS:       DefaultTPS,
	}
}

// Error is returned when a parameter violates its invariant.
type Error struct {
	// Param is the name of the offending parameter.
	Param string
	// Value is the rejected value.
	Value interface{}
	// Reason describes the violated invariant.
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// Validate returns an *Error for the first parameter that violates its invariant.
func (c Config) Validate() error {
	switch {
	case c.Bounds.X <= 0:
		return &Error{Param: "width", Value: c.Bounds.X, Reason: "must be positive"}
	case c.Bounds.Y <= 0:
		return &Error{Param: "height", Value: c.Bounds.Y, Reason: "must be positive"}
	case c.BoxCount < 0:
		return &Error{Param: "boxes", Value: c.BoxCount, Reason: "must not be negative"}
	case c.BoxSize.X <= 0:
		return &Error{Param: "box-w", Value: c.BoxSize.X, Reason: "must be positive"}
	case c.BoxSize.Y <= 0:
		return &Error{Param: "box-h", Value: c.BoxSize.Y, Reason: "must be positive"}
	case c.BoxSize.X > c.Bounds.X:
		return &Error{Param: "box-w", Value: c.BoxSize.X, Reason: fmt.Sprintf("must not exceed width %d", c.Bounds.X)}
	case c.Padding.X < 0:
		return &Error{Param: "pad-x", Value: c.Padding.X, Reason: "must not be negative"}
	case c.Padding.Y < 0:
		return &Error{Param: "pad-y", Value: c.Padding.Y, Reason: "must not be negative"}
	case c.QuerySize.X <= 0:
		return &Error{Param: "query-w", Value: c.QuerySize.X, Reason: "must be positive"}
	case c.QuerySize.Y <= 0:
		return &Error{Param: "query-h", Value: c.QuerySize.Y, Reason: "must be positive"}
	case c.TPS <= 0:
		return &Error{Param: "tps", Value: c.TPS, Reason: "must be positive"}
	case c.Workers < 0:
		return &Error{Param: "workers", Value: c.Workers, Reason: "must not be negative"}
	}
	return nil
}

// Layout returns the grid layout described by the configuration.
func (c Config) Layout() grid.Layout {
	return grid.Layout{
		Count:       c.BoxCount,
		BoxSize:     c.BoxSize,
		Padding:     c.Padding,
		BoundsWidth: c.Bounds.X,
	}
}

// FrameInterval returns the target duration of a frame.
func (c Config) FrameInterval() time.Duration {
	if c.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TPS)
}
