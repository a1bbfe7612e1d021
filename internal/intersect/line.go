package intersect

import (
	"math"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

func lineLineSolver(a, b shape.Shape) []geometry.Point2D {
	return lineLine(a.(shape.Line), b.(shape.Line))
}

// lineLine solves the 2x2 linear system formed by both segments' standard
// form equations a·x + b·y = c and keeps the solution only when it lies
// within both segments' coordinate intervals.
func lineLine(l1, l2 shape.Line) []geometry.Point2D {
	a1 := l1.P2.Y - l1.P1.Y
	b1 := l1.P1.X - l1.P2.X
	c1 := a1*l1.P1.X + b1*l1.P1.Y

	a2 := l2.P2.Y - l2.P1.Y
	b2 := l2.P1.X - l2.P2.X
	c2 := a2*l2.P1.X + b2*l2.P1.Y

	det := a1*b2 - a2*b1
	if math.Abs(det) < geometry.Epsilon {
		// Parallel (or at least numerically indistinguishable from it).
		return nil
	}

	p := geometry.Point2D{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
	if !onSegment(p, l1) || !onSegment(p, l2) {
		return nil
	}
	return []geometry.Point2D{p}
}

// onSegment reports whether p lies within the segment's per-coordinate
// bounding intervals, endpoints inclusive.
func onSegment(p geometry.Point2D, l shape.Line) bool {
	return inInterval(p.X, l.P1.X, l.P2.X) && inInterval(p.Y, l.P1.Y, l.P2.Y)
}

func inInterval(v, a, b float64) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo-geometry.Epsilon && v <= hi+geometry.Epsilon
}
