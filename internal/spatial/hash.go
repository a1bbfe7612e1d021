// Package spatial provides a uniform-grid spatial hash over 2D points with
// insertion, removal by value, and radius-bounded candidate search.
package spatial

import (
	"math"

	"vector-sketch/pkg/geometry"
)

type cell struct {
	Col, Row int
}

// Hash is a uniform-grid spatial index. The bucket width is fixed at
// construction; it should be chosen so a radius query at maximum zoom-out
// still touches a bounded number of cells.
type Hash struct {
	bucketWidth float64
	buckets     map[cell][]geometry.Point2D
	count       int
}

// New creates a spatial hash with the given bucket width.
func New(bucketWidth float64) *Hash {
	if bucketWidth <= 0 {
		panic("spatial: bucket width must be positive")
	}
	return &Hash{
		bucketWidth: bucketWidth,
		buckets:     make(map[cell][]geometry.Point2D),
	}
}

func (h *Hash) cellFor(p geometry.Point2D) cell {
	return cell{
		Col: int(math.Floor(p.X / h.bucketWidth)),
		Row: int(math.Floor(p.Y / h.bucketWidth)),
	}
}

// Insert adds a point to its grid cell. Duplicate points are stored as
// separate entries; each supports one later removal.
func (h *Hash) Insert(p geometry.Point2D) {
	c := h.cellFor(p)
	h.buckets[c] = append(h.buckets[c], p)
	h.count++
}

// Remove deletes each given point from the index, matching approximately
// by value within the default epsilon. The first matching entry in the
// point's cell is removed; points not found are silently ignored.
func (h *Hash) Remove(points []geometry.Point2D) {
	for _, p := range points {
		c := h.cellFor(p)
		bucket := h.buckets[c]
		for i, q := range bucket {
			if q.ApproxEqual(p, geometry.Epsilon) {
				h.buckets[c] = append(bucket[:i], bucket[i+1:]...)
				h.count--
				break
			}
		}
		if len(h.buckets[c]) == 0 {
			delete(h.buckets, c)
		}
	}
}

// Search returns all points from the cells overlapped by the axis-aligned
// box of the given radius around p. The result is a candidate superset of
// the query disk; callers apply the precise distance filter.
func (h *Hash) Search(p geometry.Point2D, radius float64) []geometry.Point2D {
	if radius < 0 {
		radius = 0
	}
	minCell := h.cellFor(geometry.Point2D{X: p.X - radius, Y: p.Y - radius})
	maxCell := h.cellFor(geometry.Point2D{X: p.X + radius, Y: p.Y + radius})

	var results []geometry.Point2D
	for col := minCell.Col; col <= maxCell.Col; col++ {
		for row := minCell.Row; row <= maxCell.Row; row++ {
			results = append(results, h.buckets[cell{Col: col, Row: row}]...)
		}
	}
	return results
}

// Len returns the number of points currently stored.
func (h *Hash) Len() int {
	return h.count
}
