package intersect

import (
	"math"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

func bezierLineSolver(a, b shape.Shape) []geometry.Point2D {
	return bezierLine(a.(shape.Bezier), b.(shape.Line))
}

// bezierLine intersects a quadratic Bezier curve with a line segment. The
// curve's polynomial coefficients are projected onto the line's normal,
// giving a quadratic in the curve parameter t; roots in [0, 1] map back to
// curve points, which are then checked against the segment's bounding box
// to defend against parametrization edge cases.
func bezierLine(bz shape.Bezier, l shape.Line) []geometry.Point2D {
	// Polynomial coefficients of the curve: c2·t² + c1·t + c0.
	c2 := geometry.Point2D{
		X: bz.P1.X - 2*bz.P2.X + bz.P3.X,
		Y: bz.P1.Y - 2*bz.P2.Y + bz.P3.Y,
	}
	c1 := geometry.Point2D{
		X: 2 * (bz.P2.X - bz.P1.X),
		Y: 2 * (bz.P2.Y - bz.P1.Y),
	}
	c0 := bz.P1

	// Line normal and offset: n·p + cl = 0 for points p on the line.
	nx := l.P1.Y - l.P2.Y
	ny := l.P2.X - l.P1.X
	cl := l.P1.X*l.P2.Y - l.P2.X*l.P1.Y

	qa := nx*c2.X + ny*c2.Y
	qb := nx*c1.X + ny*c1.Y
	qc := nx*c0.X + ny*c0.Y + cl

	var roots []float64
	if math.Abs(qa) < geometry.Epsilon {
		// The curve degenerates to a line in the normal direction.
		if math.Abs(qb) < geometry.Epsilon {
			return nil
		}
		roots = []float64{-qc / qb}
	} else {
		disc := qb*qb - 4*qa*qc
		switch {
		case math.Abs(disc) <= discTolerance:
			roots = []float64{-qb / (2 * qa)}
		case disc > 0:
			sq := math.Sqrt(disc)
			roots = []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)}
		default:
			return nil
		}
	}

	var points []geometry.Point2D
	for _, t := range roots {
		if t < -geometry.Epsilon || t > 1+geometry.Epsilon {
			continue
		}
		p := bz.At(t)
		if !withinSegmentBox(p, l) {
			continue
		}
		points = append(points, p)
	}
	return points
}

// withinSegmentBox checks the mapped curve point against the segment's
// bounding box. Axis-aligned segments have a degenerate box in one
// coordinate, so only the other coordinate is constrained.
func withinSegmentBox(p geometry.Point2D, l shape.Line) bool {
	switch {
	case l.P1.X == l.P2.X:
		return inInterval(p.Y, l.P1.Y, l.P2.Y)
	case l.P1.Y == l.P2.Y:
		return inInterval(p.X, l.P1.X, l.P2.X)
	default:
		return onSegment(p, l)
	}
}
