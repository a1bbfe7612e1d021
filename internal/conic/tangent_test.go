package conic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

// circle25 is the circle of radius 5 about the origin, x² + y² − 25 = 0.
var circle25 = shape.Conic{A: 1, C: 1, G: -25}

func TestTangentPointsExterior(t *testing.T) {
	points := TangentPoints(circle25, geometry.Point2D{X: 0, Y: 10})
	require.Len(t, points, 2)

	// Tangency points of a circle lie at y = r²/d on the polar line.
	wantX := math.Sqrt(18.75)
	for _, p := range points {
		assert.InDelta(t, 2.5, p.Y, 1e-9)
		assert.InDelta(t, wantX, math.Abs(p.X), 1e-9)
		assert.InDelta(t, 0, circle25.Eval(p), 1e-9, "tangency point on the curve")
	}
	assert.InDelta(t, -points[0].X, points[1].X, 1e-9, "symmetric about the axis")
}

func TestTangentPointsVerticalPolar(t *testing.T) {
	// A query point on the x axis zeroes the polar line's y coefficient;
	// the tangencies come from the vertical-line branch.
	points := TangentPoints(circle25, geometry.Point2D{X: 10, Y: 0})
	require.Len(t, points, 2)

	wantY := math.Sqrt(18.75)
	for _, p := range points {
		assert.InDelta(t, 2.5, p.X, 1e-9)
		assert.InDelta(t, wantY, math.Abs(p.Y), 1e-9)
		assert.InDelta(t, 0, circle25.Eval(p), 1e-9)
	}
}

func TestTangentPointsOnCurve(t *testing.T) {
	for _, p := range []geometry.Point2D{
		{X: 3, Y: 4},
		{X: 5, Y: 0}, // vertical-polar branch
		{X: 0, Y: -5},
	} {
		points := TangentPoints(circle25, p)
		require.Len(t, points, 1, "point (%v, %v)", p.X, p.Y)
		assert.Equal(t, p, points[0], "a point on the conic is its own tangency")
	}
}

func TestTangentPointsInterior(t *testing.T) {
	assert.Empty(t, TangentPoints(circle25, geometry.Point2D{X: 1, Y: 1}))
	assert.Empty(t, TangentPoints(circle25, geometry.Point2D{}), "center has a degenerate polar line")
}

func TestTangentPointsFittedEllipse(t *testing.T) {
	quad := [4]geometry.Point2D{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 6, Y: 2}, {X: 2, Y: 2},
	}
	e, err := FitQuadrilateral("e", quad)
	require.NoError(t, err)

	// Each corner of the circumscribing parallelogram sees the ellipse
	// along its two adjacent sides; the tangencies are the side midpoints.
	points := TangentPoints(*e.Conic, quad[0])
	require.Len(t, points, 2)
	for _, p := range points {
		isBottomMid := p.ApproxEqual(geometry.Point2D{X: 2, Y: 0}, 1e-6)
		isLeftMid := p.ApproxEqual(geometry.Point2D{X: 1, Y: 1}, 1e-6)
		assert.True(t, isBottomMid || isLeftMid, "unexpected tangency (%v, %v)", p.X, p.Y)
	}
}
