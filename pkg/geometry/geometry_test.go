package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x, y, w, h int) Rect {
	return Rect{Origin: IntPoint{X: x, Y: y}, Size: IntPoint{X: w, Y: h}}
}

func TestNewRect(t *testing.T) {
	tests := []struct {
		name    string
		size    IntPoint
		wantErr bool
	}{
		{name: "positive", size: IntPoint{X: 2, Y: 2}},
		{name: "zero width", size: IntPoint{X: 0, Y: 2}, wantErr: true},
		{name: "zero height", size: IntPoint{X: 2, Y: 0}, wantErr: true},
		{name: "negative", size: IntPoint{X: -1, Y: 3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRect(IntPoint{X: 5, Y: 7}, tt.size)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, IntPoint{X: 7, Y: 9}, r.Max())
		})
	}
}

func TestPointInRect(t *testing.T) {
	origin := IntPoint{X: 10, Y: 20}
	size := IntPoint{X: 2, Y: 2}

	tests := []struct {
		name  string
		point IntPoint
		size  IntPoint
		want  bool
	}{
		{name: "top left corner", point: IntPoint{X: 10, Y: 20}, size: size, want: true},
		{name: "last covered pixel", point: IntPoint{X: 11, Y: 21}, size: size, want: true},
		{name: "right edge is exclusive", point: IntPoint{X: 12, Y: 20}, size: size, want: false},
		{name: "bottom edge is exclusive", point: IntPoint{X: 10, Y: 22}, size: size, want: false},
		{name: "left of rect", point: IntPoint{X: 9, Y: 20}, size: size, want: false},
		{name: "above rect", point: IntPoint{X: 10, Y: 19}, size: size, want: false},
		{name: "zero size", point: IntPoint{X: 10, Y: 20}, size: IntPoint{}, want: false},
		{name: "negative size", point: IntPoint{X: 9, Y: 19}, size: IntPoint{X: -2, Y: -2}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointInRect(tt.point, origin, tt.size))
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a    Rect
		b    Rect
		want bool
	}{
		{name: "identical", a: rect(0, 0, 2, 2), b: rect(0, 0, 2, 2), want: true},
		{name: "partial overlap", a: rect(0, 0, 4, 4), b: rect(3, 3, 4, 4), want: true},
		{name: "containment", a: rect(0, 0, 10, 10), b: rect(3, 3, 2, 2), want: true},
		{name: "shared vertical edge", a: rect(0, 0, 2, 2), b: rect(2, 0, 2, 2), want: false},
		{name: "shared horizontal edge", a: rect(0, 0, 2, 2), b: rect(0, 2, 2, 2), want: false},
		{name: "shared corner", a: rect(0, 0, 2, 2), b: rect(2, 2, 2, 2), want: false},
		{name: "separate on x", a: rect(0, 0, 2, 2), b: rect(6, 0, 2, 2), want: false},
		{name: "separate on y", a: rect(0, 0, 2, 2), b: rect(0, 6, 2, 2), want: false},
		{name: "overlap on x only", a: rect(0, 0, 4, 2), b: rect(1, 5, 2, 2), want: false},
		{name: "one pixel overlap", a: rect(0, 0, 2, 2), b: rect(1, 1, 2, 2), want: true},
		{name: "negative coordinates", a: rect(-3, -3, 2, 2), b: rect(-2, -2, 2, 2), want: true},
		{name: "empty rect", a: rect(1, 1, 0, 0), b: rect(0, 0, 4, 4), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			// symmetry
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
			assert.Equal(t, Intersects(tt.a, tt.b), Intersects(tt.b, tt.a))
		})
	}
}

func TestRect_IntersectsSymmetryGrid(t *testing.T) {
	a := rect(4, 4, 3, 2)
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			b := rect(x, y, 2, 3)
			require.Equal(t, a.Intersects(b), b.Intersects(a), "a=%s b=%s", a, b)
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := rect(0, 0, 2, 2)
	assert.True(t, r.Contains(IntPoint{X: 1, Y: 1}))
	assert.False(t, r.Contains(IntPoint{X: 2, Y: 1}))
}
