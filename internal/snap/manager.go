// Package snap maintains the set of shape intersection points and answers
// nearest-neighbor queries for interactive snapping.
package snap

import (
	"vector-sketch/internal/intersect"
	"vector-sketch/internal/shape"
	"vector-sketch/internal/spatial"
	"vector-sketch/pkg/geometry"
)

// Action selects how TestIntersections applies its results to the index.
type Action int

const (
	// ActionNone computes intersections without touching the index.
	ActionNone Action = iota

	// ActionInsert adds every resulting point to the index immediately.
	ActionInsert

	// ActionDelete removes every resulting point from the index
	// immediately.
	ActionDelete

	// ActionBulkDelete defers removal: resulting points are appended to
	// the pending-deletion list until Flush is called.
	ActionBulkDelete
)

// Manager owns the spatial index of live snap points and the
// pending-deletion list. It is not safe for concurrent use; the host
// serializes access.
type Manager struct {
	params      Params
	index       *spatial.Hash
	pending     []geometry.Point2D
	radiusScale float64
}

// NewManager creates a snap point manager with the given parameters.
func NewManager(params Params) *Manager {
	return &Manager{
		params:      params,
		index:       spatial.New(params.BucketWidth()),
		radiusScale: 1,
	}
}

// TestIntersections intersects s against every candidate shape and applies
// action to the resulting points. It returns the candidates that
// intersected at all and every intersection point found, regardless of
// action, so it doubles as a pure query with ActionNone. Nil candidates
// are skipped.
func (m *Manager) TestIntersections(s shape.Shape, candidates []shape.Shape, action Action) ([]shape.Shape, []geometry.Point2D) {
	var intersecting []shape.Shape
	var allPoints []geometry.Point2D

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		points := intersect.Intersect(s, candidate)
		if len(points) == 0 {
			continue
		}
		intersecting = append(intersecting, candidate)
		allPoints = append(allPoints, points...)
	}

	switch action {
	case ActionInsert:
		for _, p := range allPoints {
			m.index.Insert(p)
		}
	case ActionDelete:
		m.index.Remove(allPoints)
	case ActionBulkDelete:
		m.pending = append(m.pending, allPoints...)
	}

	return intersecting, allPoints
}

// NearestNeighbor returns the closest snap point within the effective snap
// radius of p, optionally excluding one point (matched approximately).
// The second return is false when no candidate is in range.
func (m *Manager) NearestNeighbor(p geometry.Point2D, exclude *geometry.Point2D) (geometry.Point2D, bool) {
	radius := m.EffectiveRadius()
	candidates := m.index.Search(p, radius)

	var best geometry.Point2D
	var bestDistSq float64
	found := false
	for _, candidate := range candidates {
		if exclude != nil && candidate.ApproxEqual(*exclude, geometry.Epsilon) {
			continue
		}
		distSq := p.DistanceSq(candidate)
		if distSq > radius*radius {
			// The index returns a box superset; apply the disk filter.
			continue
		}
		if !found || distSq < bestDistSq {
			best = candidate
			bestDistSq = distSq
			found = true
		}
	}
	return best, found
}

// Flush removes every pending-deletion point from the index in one batch
// and clears the list. Calling it again with nothing newly marked is a
// no-op.
func (m *Manager) Flush() {
	if len(m.pending) == 0 {
		return
	}
	m.index.Remove(m.pending)
	m.pending = m.pending[:0]
}

// SetRadiusScale adjusts the divisor applied to the base snap radius.
// A larger scale shrinks the effective radius, keeping the on-screen snap
// distance constant as the caller zooms in.
func (m *Manager) SetRadiusScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	m.radiusScale = scale
}

// EffectiveRadius returns the snap radius currently used by queries.
func (m *Manager) EffectiveRadius() float64 {
	return m.params.SnapRadius / m.radiusScale
}

// PointCount returns the number of live snap points in the index.
func (m *Manager) PointCount() int {
	return m.index.Len()
}

// PendingCount returns the number of points marked for deferred deletion.
func (m *Manager) PendingCount() int {
	return len(m.pending)
}
