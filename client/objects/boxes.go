package objects

import (
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoxLayer draws the static boxes while the display toggle is on.
// The set never changes, so the outlines are rendered once to an offscreen
// image and that image is drawn every frame.
type BoxLayer struct {
	// bounds is the size of the offscreen image.
	bounds geometry.IntPoint
	// layer is the cached rendering of the visible boxes.
	layer *ebiten.Image
}

var _ GameObject = &BoxLayer{}

func NewBoxLayer(bounds geometry.IntPoint) *BoxLayer {
	return &BoxLayer{
		bounds: bounds,
	}
}

func (o *BoxLayer) Draw(screen *ebiten.Image, view frame.View) {
	if !view.DisplayBoxes || len(view.Boxes) == 0 {
		return
	}
	if o.layer == nil {
		visible := view.Boxes.Visible(o.bounds)
		o.layer = ebiten.NewImage(o.bounds.X, o.bounds.Y)
		for _, box := range visible {
			strokeRect(o.layer, box)
		}
		log.Debug("Rendered %d of %d static boxes to the box layer", len(visible), len(view.Boxes))
	}
	screen.DrawImage(o.layer, nil)
}

// strokeRect draws a one pixel outline covering exactly the pixels of r.
func strokeRect(dst *ebiten.Image, r geometry.Rect) {
	vector.StrokeRect(dst,
		float32(r.Origin.X)+0.5, float32(r.Origin.Y)+0.5,
		float32(r.Size.X-1), float32(r.Size.Y-1),
		1, BoxColor, false)
}
