package grid

import (
	"fmt"

	"github.com/cbodonnell/boxbench/pkg/geometry"
)

// BoxSet is the ordered, immutable set of static bounding boxes.
type BoxSet []geometry.Rect

// Extent returns the exclusive bottom-right corner of the area covered by the set.
// An empty set has a zero extent.
func (s BoxSet) Extent() geometry.IntPoint {
	extent := geometry.IntPoint{}
	for _, box := range s {
		corner := box.Max()
		if corner.X > extent.X {
			extent.X = corner.X
		}
		if corner.Y > extent.Y {
			extent.Y = corner.Y
		}
	}
	return extent
}

// Layout describes a row-major tiling of equally sized boxes.
type Layout struct {
	// Count is the exact number of boxes to generate.
	Count int
	// BoxSize is the size of each box.
	BoxSize geometry.IntPoint
	// Padding is the gap between neighbouring boxes on each axis.
	Padding geometry.IntPoint
	// BoundsWidth is the width no box may extend past.
	BoundsWidth int
}

// Validate checks that the layout can be tiled.
func (l Layout) Validate() error {
	if l.Count < 0 {
		return fmt.Errorf("box count must not be negative, got %d", l.Count)
	}
	if l.BoxSize.X <= 0 || l.BoxSize.Y <= 0 {
		return fmt.Errorf("box size must be positive, got %s", l.BoxSize)
	}
	if l.Padding.X < 0 || l.Padding.Y < 0 {
		return fmt.Errorf("padding must not be negative, got %s", l.Padding)
	}
	if l.BoundsWidth < l.BoxSize.X {
		return fmt.Errorf("bounds width %d is narrower than box width %d", l.BoundsWidth, l.BoxSize.X)
	}
	return nil
}

// Generate tiles exactly l.Count boxes left to right, top to bottom, starting at (0, 0).
// A row wraps as soon as the next box's right edge would pass the bounds width.
// Rows keep growing downwards; the height is never clipped.
func Generate(l Layout) (BoxSet, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %v", err)
	}

	boxes := make(BoxSet, 0, l.Count)
	cursor := geometry.IntPoint{}
	for i := 0; i < l.Count; i++ {
		boxes = append(boxes, geometry.Rect{Origin: cursor, Size: l.BoxSize})

		nextX := cursor.X + l.BoxSize.X + l.Padding.X
		if nextX+l.BoxSize.X > l.BoundsWidth {
			cursor = geometry.IntPoint{X: 0, Y: cursor.Y + l.BoxSize.Y + l.Padding.Y}
		} else {
			cursor = geometry.IntPoint{X: nextX, Y: cursor.Y}
		}
	}

	return boxes, nil
}

// Visible returns the boxes that overlap the area [0, bounds).
func (s BoxSet) Visible(bounds geometry.IntPoint) BoxSet {
	area := geometry.Rect{Size: bounds}
	visible := make(BoxSet, 0, len(s))
	for _, box := range s {
		if area.Intersects(box) {
			visible = append(visible, box)
		}
	}
	return visible
}
