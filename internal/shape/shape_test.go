package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vector-sketch/pkg/geometry"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "circle-arc", KindCircleArc.String())
	assert.Equal(t, "unknown", Kind(99).String())

	k, ok := KindFromString("ellipse-arc")
	require.True(t, ok)
	assert.Equal(t, KindEllipseArc, k)

	_, ok = KindFromString("triangle")
	assert.False(t, ok)
}

func TestSweepDefaults(t *testing.T) {
	// An unset delta means a full sweep.
	_, delta := CircleArc{Radius: 5}.Sweep()
	assert.InDelta(t, 2*math.Pi, delta, 1e-12)

	start, delta := CircleArc{Radius: 5, Start: 1, Delta: -0.5}.Sweep()
	assert.Equal(t, 1.0, start)
	assert.Equal(t, -0.5, delta)

	_, delta = EllipseArc{Rx: 2, Ry: 1}.Sweep()
	assert.InDelta(t, 2*math.Pi, delta, 1e-12)
}

func TestNewCircle(t *testing.T) {
	c := NewCircle("c", geometry.Point2D{X: 1, Y: 2}, 3)
	assert.Equal(t, "c", c.ShapeID())
	assert.InDelta(t, 2*math.Pi, c.Delta, 1e-12)
	assert.Equal(t, geometry.NewRect(-2, -1, 6, 6), c.Bounds())
}

func TestEllipseBounds(t *testing.T) {
	// Unrotated: the box is simply the axis extents.
	e := Ellipse{Center: geometry.Point2D{X: 10, Y: 10}, Rx: 4, Ry: 2}
	assert.Equal(t, geometry.NewRect(6, 8, 8, 4), e.Bounds())

	// A quarter turn swaps the extents.
	rot := Ellipse{Center: geometry.Point2D{X: 10, Y: 10}, Rx: 4, Ry: 2, Rotation: math.Pi / 2}
	b := rot.Bounds()
	assert.InDelta(t, 4, b.Width, 1e-9)
	assert.InDelta(t, 8, b.Height, 1e-9)
}

func TestBezierAt(t *testing.T) {
	b := Bezier{
		P1: geometry.Point2D{X: 0, Y: 0},
		P2: geometry.Point2D{X: 5, Y: 10},
		P3: geometry.Point2D{X: 10, Y: 0},
	}
	assert.Equal(t, b.P1, b.At(0))
	assert.Equal(t, b.P3, b.At(1))

	mid := b.At(0.5)
	assert.InDelta(t, 5, mid.X, 1e-12)
	assert.InDelta(t, 5, mid.Y, 1e-12)
}

func TestRectSides(t *testing.T) {
	r := Rect{ID: "box", Rect: geometry.NewRect(0, 0, 10, 5)}
	sides := r.Sides()

	assert.Equal(t, "box/top", sides[0].ID)
	assert.Equal(t, "box/right", sides[1].ID)
	assert.Equal(t, "box/bottom", sides[2].ID)
	assert.Equal(t, "box/left", sides[3].ID)

	// Sides chain head to tail around the boundary.
	for i, side := range sides {
		next := sides[(i+1)%4]
		assert.Equal(t, side.P2, next.P1)
	}
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0}, sides[0].P1)
	assert.Equal(t, geometry.Point2D{X: 10, Y: 5}, sides[2].P1)
}
