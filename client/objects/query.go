package objects

import (
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// QueryBox draws the outline of the moving query box.
type QueryBox struct{}

var _ GameObject = &QueryBox{}

func NewQueryBox() *QueryBox {
	return &QueryBox{}
}

func (o *QueryBox) Draw(screen *ebiten.Image, view frame.View) {
	r := view.Query
	vector.StrokeRect(screen,
		float32(r.Origin.X)+0.5, float32(r.Origin.Y)+0.5,
		float32(r.Size.X-1), float32(r.Size.Y-1),
		1, QueryColor, false)
}
