package conic

import (
	"math"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

// TangentPoints returns the points where tangent lines through p touch the
// conic. An interior point has no tangents. A point on the conic returns
// itself as the single degenerate tangency. An exterior point returns
// exactly two tangency points.
//
// The tangency points are the intersection of the conic with the polar
// line of p: u·x + v·y + w = 0 with u = a·px + b·py + d,
// v = b·px + c·py + f, w = d·px + f·py + g. When the polar line's y
// coefficient vanishes, the quadratic is solved for y instead of x.
func TangentPoints(co shape.Conic, p geometry.Point2D) []geometry.Point2D {
	u := co.A*p.X + co.B*p.Y + co.D
	v := co.B*p.X + co.C*p.Y + co.F
	w := co.D*p.X + co.F*p.Y + co.G

	if math.Abs(v) >= geometry.Epsilon {
		// Substitute y = -(u·x + w)/v into the conic.
		qa := co.A*v*v - 2*co.B*u*v + co.C*u*u
		qb := 2 * (co.C*u*w - co.B*w*v + co.D*v*v - co.F*u*v)
		qc := co.C*w*w - 2*co.F*w*v + co.G*v*v

		roots, onCurve := tangentRoots(qa, qb, qc)
		if onCurve {
			return []geometry.Point2D{p}
		}
		points := make([]geometry.Point2D, 0, len(roots))
		for _, x := range roots {
			points = append(points, geometry.Point2D{X: x, Y: -(u*x + w) / v})
		}
		return points
	}

	if math.Abs(u) < geometry.Epsilon {
		// Polar line degenerates entirely; p is the conic's center.
		return nil
	}

	// Vertical polar line x = -w/u: solve the conic for y along it.
	x := -w / u
	qa := co.C
	qb := 2 * (co.B*x + co.F)
	qc := co.A*x*x + 2*co.D*x + co.G

	roots, onCurve := tangentRoots(qa, qb, qc)
	if onCurve {
		return []geometry.Point2D{p}
	}
	points := make([]geometry.Point2D, 0, len(roots))
	for _, y := range roots {
		points = append(points, geometry.Point2D{X: x, Y: y})
	}
	return points
}

// tangentRoots solves qa·t² + qb·t + qc = 0 for the tangency coordinate.
// onCurve is true when the discriminant vanishes, meaning the query point
// lies on the conic itself.
func tangentRoots(qa, qb, qc float64) (roots []float64, onCurve bool) {
	if math.Abs(qa) < geometry.Epsilon {
		if math.Abs(qb) < geometry.Epsilon {
			return nil, false
		}
		return []float64{-qc / qb}, false
	}

	disc := qb*qb - 4*qa*qc
	switch {
	case math.Abs(disc) <= geometry.Epsilon:
		return nil, true
	case disc < 0:
		return nil, false
	}
	sq := math.Sqrt(disc)
	return []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)}, false
}
