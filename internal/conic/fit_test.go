package conic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vector-sketch/pkg/geometry"
)

func TestFitQuadrilateralSquare(t *testing.T) {
	quad := [4]geometry.Point2D{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	}
	e, err := FitQuadrilateral("e", quad)
	require.NoError(t, err)

	assert.InDelta(t, 0, e.Center.X, 1e-9)
	assert.InDelta(t, 0, e.Center.Y, 1e-9)
	assert.InDelta(t, 1, e.Rx, 1e-9)
	assert.InDelta(t, 1, e.Ry, 1e-9)

	require.NotNil(t, e.Conic)
	assert.Negative(t, e.Conic.Eval(e.Center), "interior evaluates negative")
	assert.InDelta(t, 0, e.Conic.Eval(geometry.Point2D{X: 1, Y: 0}), 1e-9)
	assert.InDelta(t, 0, e.Conic.Eval(geometry.Point2D{X: 0, Y: -1}), 1e-9)
}

func TestFitQuadrilateralScaledSquare(t *testing.T) {
	quad := [4]geometry.Point2D{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
	}
	e, err := FitQuadrilateral("e", quad)
	require.NoError(t, err)

	assert.InDelta(t, 50, e.Center.X, 1e-6)
	assert.InDelta(t, 50, e.Center.Y, 1e-6)
	assert.InDelta(t, 50, e.Rx, 1e-6)
	assert.InDelta(t, 50, e.Ry, 1e-6)
}

func TestFitQuadrilateralParallelogram(t *testing.T) {
	// For a parallelogram the inscribed ellipse is the affine image of the
	// square's incircle, so it touches each side at its midpoint.
	quad := [4]geometry.Point2D{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 6, Y: 2}, {X: 2, Y: 2},
	}
	e, err := FitQuadrilateral("e", quad)
	require.NoError(t, err)

	assert.InDelta(t, 3, e.Center.X, 1e-9)
	assert.InDelta(t, 1, e.Center.Y, 1e-9)

	co := *e.Conic
	scale := math.Abs(co.Eval(e.Center))
	require.Positive(t, scale)
	midpoints := []geometry.Point2D{
		{X: 2, Y: 0}, {X: 5, Y: 1}, {X: 4, Y: 2}, {X: 1, Y: 1},
	}
	for _, m := range midpoints {
		assert.InDelta(t, 0, co.Eval(m)/scale, 1e-9, "side midpoint (%v, %v) lies on the curve", m.X, m.Y)
	}

	// Corners stay outside.
	for _, c := range quad {
		assert.Positive(t, co.Eval(c))
	}
}

func TestFitQuadrilateralTrapezoid(t *testing.T) {
	quad := [4]geometry.Point2D{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 2}, {X: 1, Y: 2},
	}
	e, err := FitQuadrilateral("e", quad)
	require.NoError(t, err)

	assert.True(t, geometry.PointInPolygon(e.Center, quad[:]), "center inside the quad")
	assert.Positive(t, e.Rx)
	assert.Positive(t, e.Ry)
	assert.Negative(t, e.Conic.Eval(e.Center))
}

func TestFitQuadrilateralRejectsBadInput(t *testing.T) {
	t.Run("non-convex", func(t *testing.T) {
		dart := [4]geometry.Point2D{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 4},
		}
		_, err := FitQuadrilateral("e", dart)
		assert.Error(t, err)
	})

	t.Run("clockwise winding", func(t *testing.T) {
		cw := [4]geometry.Point2D{
			{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0},
		}
		_, err := FitQuadrilateral("e", cw)
		assert.Error(t, err)
	})

	t.Run("repeated corner", func(t *testing.T) {
		degenerate := [4]geometry.Point2D{
			{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2},
		}
		_, err := FitQuadrilateral("e", degenerate)
		assert.Error(t, err)
	})
}
