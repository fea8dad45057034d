package geometry

import "fmt"

// IntPoint is a 2-D coordinate or size in pixel units.
type IntPoint struct {
	X int
	Y int
}

func (p IntPoint) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns the component-wise sum of p and q.
func (p IntPoint) Add(q IntPoint) IntPoint {
	return IntPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned box defined by its top-left corner and its size.
// The covered area is the half-open region [Origin, Origin+Size).
type Rect struct {
	Origin IntPoint
	Size   IntPoint
}

// NewRect returns a Rect at origin with the given size.
// Both dimensions of size must be positive.
func NewRect(origin, size IntPoint) (Rect, error) {
	if size.X <= 0 || size.Y <= 0 {
		return Rect{}, fmt.Errorf("rect size must be positive, got %s", size)
	}
	return Rect{Origin: origin, Size: size}, nil
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d,%d,%d}", r.Origin.X, r.Origin.Y, r.Size.X, r.Size.Y)
}

// Max returns the exclusive bottom-right corner of r.
func (r Rect) Max() IntPoint {
	return r.Origin.Add(r.Size)
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p IntPoint) bool {
	return PointInRect(p, r.Origin, r.Size)
}

// Intersects reports whether r and other overlap by a strictly positive area.
// Rectangles that only share an edge or a corner do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	rMax, oMax := r.Max(), other.Max()
	return r.Origin.X < oMax.X && other.Origin.X < rMax.X &&
		r.Origin.Y < oMax.Y && other.Origin.Y < rMax.Y
}

// Intersects is the free-function form of Rect.Intersects.
func Intersects(a, b Rect) bool {
	return a.Intersects(b)
}

// PointInRect reports whether point lies within
// [rectOrigin.X, rectOrigin.X+rectSize.X) x [rectOrigin.Y, rectOrigin.Y+rectSize.Y).
// A degenerate size never contains any point.
func PointInRect(point, rectOrigin, rectSize IntPoint) bool {
	if rectSize.X <= 0 || rectSize.Y <= 0 {
		return false
	}
	return point.X >= rectOrigin.X && point.X < rectOrigin.X+rectSize.X &&
		point.Y >= rectOrigin.Y && point.Y < rectOrigin.Y+rectSize.Y
}
