package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/boxbench/client/fonts"
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// HelpLines are shown at the bottom of the screen and printed at startup.
var HelpLines = []string{
	"Hit B to show bounding boxes.",
	"The screen background will be red if the player bounding box (green) intersects a hitbox (red), and dark blue otherwise.",
	"Use the mouse to move the player bounding box around.",
}

// HUD draws the collision status and the help text.
type HUD struct {
	bounds geometry.IntPoint
}

var _ GameObject = &HUD{}

func NewHUD(bounds geometry.IntPoint) *HUD {
	return &HUD{
		bounds: bounds,
	}
}

func (o *HUD) Draw(screen *ebiten.Image, view frame.View) {
	status := "CLEAR"
	if view.Collided {
		status = "COLLIDED"
	}
	status = fmt.Sprintf("%s  scan %s  mode %s", status, view.Elapsed, view.Mode)
	text.Draw(screen, status, fonts.MPlusStatusFont, 8, o.bounds.Y-52, color.White)

	// HelpLines[1] is wider than the default window and is only printed at startup.
	text.Draw(screen, HelpLines[0], fonts.TTFHelpFont, 8, o.bounds.Y-28, color.White)
	text.Draw(screen, HelpLines[2], fonts.TTFHelpFont, 8, o.bounds.Y-12, color.White)
}
