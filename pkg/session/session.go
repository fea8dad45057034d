package session

import (
	"github.com/cbodonnell/boxbench/pkg/collision"
	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/grid"
)

// Mode is the display state of the session.
type Mode int

const (
	// ModeNormal hides the static boxes.
	ModeNormal Mode = iota
	// ModeDisplayBoxes draws the static boxes.
	ModeDisplayBoxes
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeDisplayBoxes:
		return "Display Boxes"
	}
	return "Unknown"
}

// State holds everything that survives from one frame to the next.
// It is owned by a single frame driver and is not safe for concurrent use.
type State struct {
	// boxes is the static set. It is never modified after construction.
	boxes grid.BoxSet
	// querySize is the fixed size of the query box.
	querySize geometry.IntPoint
	// queryPosition is the latest known pointer position.
	queryPosition geometry.IntPoint
	// mode is the current display mode.
	mode Mode
	// lastResult is the most recent collision result.
	lastResult collision.Result
}

// NewStateOptions contains options for creating a new State.
type NewStateOptions struct {
	Boxes     grid.BoxSet
	QuerySize geometry.IntPoint
}

func NewState(opts NewStateOptions) *State {
	return &State{
		boxes:     opts.Boxes,
		querySize: opts.QuerySize,
		mode:      ModeNormal,
	}
}

// Boxes returns the static set.
func (s *State) Boxes() grid.BoxSet {
	return s.boxes
}

// Mode returns the current display mode.
func (s *State) Mode() Mode {
	return s.mode
}

// DisplayBoxes reports whether the static boxes should be drawn.
func (s *State) DisplayBoxes() bool {
	return s.mode == ModeDisplayBoxes
}

// ToggleDisplay flips between ModeNormal and ModeDisplayBoxes.
func (s *State) ToggleDisplay() {
	if s.mode == ModeDisplayBoxes {
		s.mode = ModeNormal
	} else {
		s.mode = ModeDisplayBoxes
	}
}

// QueryPosition returns the latest known pointer position.
func (s *State) QueryPosition() geometry.IntPoint {
	return s.queryPosition
}

// MoveQuery sets the query position.
func (s *State) MoveQuery(position geometry.IntPoint) {
	s.queryPosition = position
}

// QueryBox returns the query box at the current position.
func (s *State) QueryBox() geometry.Rect {
	return geometry.Rect{Origin: s.queryPosition, Size: s.querySize}
}

// Record stores the result of the latest evaluation.
func (s *State) Record(result collision.Result) {
	s.lastResult = result
}

// LastResult returns the most recently recorded result.
func (s *State) LastResult() collision.Result {
	return s.lastResult
}
