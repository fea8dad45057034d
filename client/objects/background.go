package objects

import (
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/hajimehoshi/ebiten/v2"
)

// Background fills the screen with a color keyed on the collision result.
type Background struct{}

var _ GameObject = &Background{}

func NewBackground() *Background {
	return &Background{}
}

func (o *Background) Draw(screen *ebiten.Image, view frame.View) {
	if view.Collided {
		screen.Fill(CollidedColor)
	} else {
		screen.Fill(ClearColor)
	}
}
