package objects

import (
	"image/color"

	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for drawable types.
type GameObject interface {
	Draw(screen *ebiten.Image, view frame.View)
}

var (
	// CollidedColor is the background when the query box hits a static box.
	CollidedColor = color.RGBA{100, 0, 0, 255}
	// ClearColor is the background when the query box is clear.
	ClearColor = color.RGBA{0, 0, 100, 255}
	// QueryColor is the outline of the query box.
	QueryColor = color.RGBA{0, 255, 0, 255}
	// BoxColor is the outline of the static boxes.
	BoxColor = color.RGBA{255, 0, 0, 255}
)
