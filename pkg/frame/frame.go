package frame

import (
	"errors"
	"time"

	"github.com/cbodonnell/boxbench/pkg/collision"
	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/grid"
	"github.com/cbodonnell/boxbench/pkg/log"
	"github.com/cbodonnell/boxbench/pkg/session"
)

// ErrQuit is returned by Driver.Tick when the input source asked to quit.
var ErrQuit = errors.New("quit requested")

// Input is what the input collaborator reports for one frame.
type Input struct {
	// Quit is true if the user asked to stop.
	Quit bool
	// ToggleBoxes is true if the display toggle was pressed this frame.
	ToggleBoxes bool
	// Pointer is the latest pointer position.
	Pointer geometry.IntPoint
	// PointerMoved is false if the pointer did not move this frame,
	// in which case Pointer is ignored and the previous position persists.
	PointerMoved bool
}

// InputSource provides the input for each frame.
type InputSource interface {
	Poll() Input
}

// View is everything the renderer needs to draw one frame.
type View struct {
	Collided     bool
	DisplayBoxes bool
	Mode         session.Mode
	Query        geometry.Rect
	// Boxes is nil unless DisplayBoxes is true.
	Boxes   grid.BoxSet
	Elapsed time.Duration
	Stats   collision.Stats
}

// Driver runs the per-frame sequence: read input, evaluate the query box,
// update the session and produce a View.
type Driver struct {
	input     InputSource
	evaluator collision.Evaluator
	state     *session.State
	stats     collision.Stats
}

// NewDriverOptions contains options for creating a new Driver.
type NewDriverOptions struct {
	Input     InputSource
	Evaluator collision.Evaluator
	State     *session.State
}

func NewDriver(opts NewDriverOptions) *Driver {
	return &Driver{
		input:     opts.Input,
		evaluator: opts.Evaluator,
		state:     opts.State,
	}
}

// State returns the session state owned by the driver.
func (d *Driver) State() *session.State {
	return d.state
}

// Stats returns the accumulated evaluation statistics.
func (d *Driver) Stats() collision.Stats {
	return d.stats
}

// Tick runs one frame. It returns ErrQuit without evaluating if the input asked to quit.
func (d *Driver) Tick() (View, error) {
	input := d.input.Poll()
	if input.Quit {
		return View{}, ErrQuit
	}

	if input.PointerMoved {
		d.state.MoveQuery(input.Pointer)
	}

	query := d.state.QueryBox()
	result := d.evaluator.Evaluate(query, d.state.Boxes())
	d.state.Record(result)
	d.stats.Add(result)
	log.Trace("Query %s collided=%t tests=%d elapsed=%s", query, result.Collided, result.Tests, result.Elapsed)

	if input.ToggleBoxes {
		d.state.ToggleDisplay()
		log.Debug("Display mode set to %s", d.state.Mode())
	}

	return d.view(), nil
}

// View returns the view of the current state without running a frame.
func (d *Driver) View() View {
	return d.view()
}

func (d *Driver) view() View {
	result := d.state.LastResult()
	v := View{
		Collided:     result.Collided,
		DisplayBoxes: d.state.DisplayBoxes(),
		Mode:         d.state.Mode(),
		Query:        d.state.QueryBox(),
		Elapsed:      result.Elapsed,
		Stats:        d.stats,
	}
	if v.DisplayBoxes {
		v.Boxes = d.state.Boxes()
	}
	return v
}
