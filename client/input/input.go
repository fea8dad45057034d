package input

import (
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source reads the per-frame input from ebiten.
type Source struct {
	// pointer is the last reported pointer position.
	pointer geometry.IntPoint
	// touchIDs is a reusable buffer for touch identifiers.
	touchIDs []ebiten.TouchID
	// gamepadIDs is a reusable buffer for gamepad identifiers.
	gamepadIDs []ebiten.GamepadID
}

var _ frame.InputSource = &Source{}

func NewSource() *Source {
	return &Source{}
}

// Poll returns the input for the current tick.
func (s *Source) Poll() frame.Input {
	pointer := s.pointerPosition()
	moved := pointer != s.pointer
	s.pointer = pointer

	return frame.Input{
		Quit:         IsQuitJustPressed(),
		ToggleBoxes:  s.isToggleJustPressed(),
		Pointer:      pointer,
		PointerMoved: moved,
	}
}

// pointerPosition returns the first touch position if the screen is touched,
// and the cursor position otherwise.
func (s *Source) pointerPosition() geometry.IntPoint {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(s.touchIDs[0])
		return geometry.IntPoint{X: x, Y: y}
	}
	x, y := ebiten.CursorPosition()
	return geometry.IntPoint{X: x, Y: y}
}

// isToggleJustPressed returns a boolean value indicating whether the box display toggle was just pressed.
// This is used to handle both keyboard and gamepad inputs.
func (s *Source) isToggleJustPressed() bool {
	if IsToggleKeyJustPressed() {
		return true
	}
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	for _, g := range s.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else {
			// The button 0 might not be the A button.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
		}
	}
	return false
}

// IsToggleKeyJustPressed returns a boolean value indicating whether the B key was just pressed.
func IsToggleKeyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyB)
}

// IsQuitJustPressed returns a boolean value indicating whether the user asked to quit,
// either with the escape key or by closing the window.
func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
}
