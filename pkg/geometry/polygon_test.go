package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedArea(t *testing.T) {
	ccw := []Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}}
	cw := []Point2D{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 0}}

	assert.InDelta(t, 12, SignedArea(ccw), 1e-12)
	assert.InDelta(t, -12, SignedArea(cw), 1e-12)
	assert.Zero(t, SignedArea(ccw[:2]))
}

func TestIsConvex(t *testing.T) {
	square := []Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	dart := []Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 4}}

	assert.True(t, IsConvex(square))
	assert.False(t, IsConvex(dart))
	assert.False(t, IsConvex(square[:2]))
}

func TestPointInPolygon(t *testing.T) {
	triangle := []Point2D{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 3, Y: 6}}

	assert.True(t, PointInPolygon(Point2D{X: 3, Y: 2}, triangle))
	assert.False(t, PointInPolygon(Point2D{X: 5, Y: 5}, triangle))
	assert.False(t, PointInPolygon(Point2D{X: 3, Y: 2}, triangle[:2]))
}
