package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

func hline(id string, y, x1, x2 float64) shape.Line {
	return shape.Line{ID: id, P1: geometry.Point2D{X: x1, Y: y}, P2: geometry.Point2D{X: x2, Y: y}}
}

func vline(id string, x, y1, y2 float64) shape.Line {
	return shape.Line{ID: id, P1: geometry.Point2D{X: x, Y: y1}, P2: geometry.Point2D{X: x, Y: y2}}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 30.0, p.SnapRadius)
	assert.Equal(t, 0.1, p.MinZoom)
	assert.InDelta(t, 300, p.BucketWidth(), 1e-9)

	custom := p.WithSnapRadius(10).WithMinZoom(0.5)
	assert.Equal(t, 10.0, custom.SnapRadius)
	assert.Equal(t, 0.5, custom.MinZoom)
	assert.InDelta(t, 20, custom.BucketWidth(), 1e-9)
}

func TestTestIntersectionsActions(t *testing.T) {
	h := hline("h", 0, -10, 10)
	v := vline("v", 0, -10, 10)

	t.Run("none leaves the index untouched", func(t *testing.T) {
		mgr := NewManager(DefaultParams())
		hit, points := mgr.TestIntersections(v, []shape.Shape{h}, ActionNone)
		require.Len(t, hit, 1)
		require.Len(t, points, 1)
		assert.True(t, points[0].ApproxEqual(geometry.Point2D{}, 1e-9))
		assert.Zero(t, mgr.PointCount())
	})

	t.Run("insert adds points immediately", func(t *testing.T) {
		mgr := NewManager(DefaultParams())
		mgr.TestIntersections(v, []shape.Shape{h}, ActionInsert)
		assert.Equal(t, 1, mgr.PointCount())
	})

	t.Run("delete removes points immediately", func(t *testing.T) {
		mgr := NewManager(DefaultParams())
		mgr.TestIntersections(v, []shape.Shape{h}, ActionInsert)
		mgr.TestIntersections(v, []shape.Shape{h}, ActionDelete)
		assert.Zero(t, mgr.PointCount())
	})

	t.Run("bulk delete defers until flush", func(t *testing.T) {
		mgr := NewManager(DefaultParams())
		mgr.TestIntersections(v, []shape.Shape{h}, ActionInsert)
		mgr.TestIntersections(v, []shape.Shape{h}, ActionBulkDelete)
		assert.Equal(t, 1, mgr.PointCount(), "still indexed before flush")
		assert.Equal(t, 1, mgr.PendingCount())

		mgr.Flush()
		assert.Zero(t, mgr.PointCount())
		assert.Zero(t, mgr.PendingCount())

		// A second flush with nothing marked is a no-op.
		mgr.Flush()
		assert.Zero(t, mgr.PointCount())
	})
}

func TestTestIntersectionsSkipsNilAndMisses(t *testing.T) {
	mgr := NewManager(DefaultParams())
	v := vline("v", 0, -10, 10)
	miss := hline("far", 50, -10, 10)

	hit, points := mgr.TestIntersections(v, []shape.Shape{nil, miss, hline("h", 0, -10, 10)}, ActionNone)
	require.Len(t, hit, 1)
	assert.Equal(t, "h", hit[0].ShapeID())
	assert.Len(t, points, 1)
}

func TestNearestNeighbor(t *testing.T) {
	mgr := NewManager(DefaultParams().WithSnapRadius(2))
	// Seed snap points at (0,0) and (5,5) from crossing lines.
	mgr.TestIntersections(vline("v0", 0, -10, 10), []shape.Shape{hline("h0", 0, -10, 10)}, ActionInsert)
	mgr.TestIntersections(vline("v5", 5, 0, 10), []shape.Shape{hline("h5", 5, 0, 10)}, ActionInsert)
	require.Equal(t, 2, mgr.PointCount())

	t.Run("closest in-radius point wins", func(t *testing.T) {
		got, ok := mgr.NearestNeighbor(geometry.Point2D{X: 1, Y: 1}, nil)
		require.True(t, ok)
		assert.True(t, got.ApproxEqual(geometry.Point2D{}, 1e-9))
	})

	t.Run("points beyond the radius are ignored", func(t *testing.T) {
		_, ok := mgr.NearestNeighbor(geometry.Point2D{X: 100, Y: 100}, nil)
		assert.False(t, ok)
	})

	t.Run("exclusion removes the match", func(t *testing.T) {
		exclude := geometry.Point2D{}
		_, ok := mgr.NearestNeighbor(geometry.Point2D{X: 1, Y: 1}, &exclude)
		assert.False(t, ok, "only remaining point is out of range")
	})

	t.Run("nearer of two candidates", func(t *testing.T) {
		wide := NewManager(DefaultParams().WithSnapRadius(20))
		wide.TestIntersections(vline("v0", 0, -10, 10), []shape.Shape{hline("h0", 0, -10, 10)}, ActionInsert)
		wide.TestIntersections(vline("v5", 5, 0, 10), []shape.Shape{hline("h5", 5, 0, 10)}, ActionInsert)

		got, ok := wide.NearestNeighbor(geometry.Point2D{X: 4, Y: 4}, nil)
		require.True(t, ok)
		assert.True(t, got.ApproxEqual(geometry.Point2D{X: 5, Y: 5}, 1e-9))
	})
}

func TestRadiusScale(t *testing.T) {
	mgr := NewManager(DefaultParams().WithSnapRadius(30))
	assert.InDelta(t, 30, mgr.EffectiveRadius(), 1e-9)

	mgr.SetRadiusScale(3)
	assert.InDelta(t, 10, mgr.EffectiveRadius(), 1e-9)

	// Zooming changes which points are reachable.
	mgr.TestIntersections(vline("v", 0, -10, 10), []shape.Shape{hline("h", 0, -10, 10)}, ActionInsert)
	_, ok := mgr.NearestNeighbor(geometry.Point2D{X: 20, Y: 0}, nil)
	assert.False(t, ok, "out of range at scale 3")

	mgr.SetRadiusScale(1)
	_, ok = mgr.NearestNeighbor(geometry.Point2D{X: 20, Y: 0}, nil)
	assert.True(t, ok)

	// A non-positive scale resets to 1.
	mgr.SetRadiusScale(-2)
	assert.InDelta(t, 30, mgr.EffectiveRadius(), 1e-9)
}
