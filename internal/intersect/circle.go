package intersect

import (
	"math"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

func circleArcLineSolver(a, b shape.Shape) []geometry.Point2D {
	arc := a.(shape.CircleArc)
	line := b.(shape.Line)
	points := circleLine(arc.Center, arc.Radius, line)
	start, delta := arc.Sweep()
	return filterArc(points, arc.Center, start, delta)
}

// circleLine substitutes the line's parametric form into the circle
// equation and solves the resulting quadratic in t ∈ [0, 1]. A discriminant
// within discTolerance of zero is a tangency and yields exactly one point.
func circleLine(center geometry.Point2D, radius float64, l shape.Line) []geometry.Point2D {
	if radius <= 0 {
		return nil
	}

	dx := l.P2.X - l.P1.X
	dy := l.P2.Y - l.P1.Y
	fx := l.P1.X - center.X
	fy := l.P1.Y - center.Y

	qa := dx*dx + dy*dy
	if qa < geometry.Epsilon*geometry.Epsilon {
		// Zero-length segment.
		return nil
	}
	qb := 2 * (dx*fx + dy*fy)
	qc := fx*fx + fy*fy - radius*radius

	disc := qb*qb - 4*qa*qc
	var roots []float64
	switch {
	case math.Abs(disc) <= discTolerance:
		roots = []float64{-qb / (2 * qa)}
	case disc > 0:
		sq := math.Sqrt(disc)
		roots = []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)}
	default:
		return nil
	}

	var points []geometry.Point2D
	for _, t := range roots {
		if t < -geometry.Epsilon || t > 1+geometry.Epsilon {
			continue
		}
		points = append(points, geometry.Point2D{X: l.P1.X + t*dx, Y: l.P1.Y + t*dy})
	}
	return points
}

func circleCircleSolver(a, b shape.Shape) []geometry.Point2D {
	arc1 := a.(shape.CircleArc)
	arc2 := b.(shape.CircleArc)

	points := circleCircle(arc1.Center, arc1.Radius, arc2.Center, arc2.Radius)
	start1, delta1 := arc1.Sweep()
	points = filterArc(points, arc1.Center, start1, delta1)
	start2, delta2 := arc2.Sweep()
	return filterArc(points, arc2.Center, start2, delta2)
}

// circleCircle intersects two full circles with the radical-line
// construction. Center distance, radius sum and radius difference are
// rounded to a fixed decimal precision before comparison so a near-miss at
// floating-point scale still counts as tangency.
func circleCircle(c1 geometry.Point2D, r1 float64, c2 geometry.Point2D, r2 float64) []geometry.Point2D {
	if r1 <= 0 || r2 <= 0 {
		return nil
	}

	d := c1.Distance(c2)
	rd := roundTo(d, centerDistPrecision)
	rsum := roundTo(r1+r2, centerDistPrecision)
	rdiff := roundTo(math.Abs(r1-r2), centerDistPrecision)

	if rd > rsum || rd < rdiff {
		return nil
	}
	if d == 0 {
		// Concentric circles: either identical (infinite points) or
		// disjoint; neither yields usable snap points.
		return nil
	}

	// Distance from c1 to the radical line along the center axis, and the
	// perpendicular half-chord.
	along := (r1*r1 - r2*r2 + d*d) / (2 * d)
	base := geometry.Point2D{
		X: c1.X + (c2.X-c1.X)*along/d,
		Y: c1.Y + (c2.Y-c1.Y)*along/d,
	}

	if rd == rsum || rd == rdiff {
		return []geometry.Point2D{base}
	}

	hSq := r1*r1 - along*along
	if hSq < 0 {
		hSq = 0
	}
	h := math.Sqrt(hSq)
	ox := -(c2.Y - c1.Y) * h / d
	oy := (c2.X - c1.X) * h / d
	return []geometry.Point2D{
		{X: base.X + ox, Y: base.Y + oy},
		{X: base.X - ox, Y: base.Y - oy},
	}
}

// filterArc keeps only points whose polar angle around center lies within
// the swept angular range.
func filterArc(points []geometry.Point2D, center geometry.Point2D, start, delta float64) []geometry.Point2D {
	if len(points) == 0 {
		return points
	}
	kept := points[:0]
	for _, p := range points {
		if geometry.AngleInSweep(p.PolarAngle(center), start, delta, geometry.Epsilon) {
			kept = append(kept, p)
		}
	}
	return kept
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
