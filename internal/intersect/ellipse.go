package intersect

import (
	"math"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

func ellipseLineSolver(a, b shape.Shape) []geometry.Point2D {
	return ellipseLine(a.(shape.Ellipse), b.(shape.Line))
}

func ellipseArcLineSolver(a, b shape.Shape) []geometry.Point2D {
	arc := a.(shape.EllipseArc)
	points := ellipseLine(arc.Full(), b.(shape.Line))
	start, delta := arc.Sweep()
	return filterArc(points, arc.Center, start, delta)
}

// ellipseDiscTolerance returns the discriminant-zero tolerance for an
// ellipse of the given area. The conic coefficients grow with ellipse size
// and so does the floating-point error in the discriminant, hence a
// size-dependent tolerance instead of a fixed one.
func ellipseDiscTolerance(area float64) float64 {
	return ellipseTolAlpha * math.Pow(area, ellipseTolBeta) / ellipseTolScale
}

// ellipseLine substitutes the line's parametric form into the general
// conic equation and solves the quadratic in t ∈ [0, 1]. An ellipse
// without conic coefficients is unsupported and yields no intersections.
func ellipseLine(e shape.Ellipse, l shape.Line) []geometry.Point2D {
	if e.Conic == nil {
		return nil
	}
	co := *e.Conic

	dx := l.P2.X - l.P1.X
	dy := l.P2.Y - l.P1.Y
	x0 := l.P1.X
	y0 := l.P1.Y

	qa := co.A*dx*dx + 2*co.B*dx*dy + co.C*dy*dy
	qb := 2 * (co.A*x0*dx + co.B*(x0*dy+y0*dx) + co.C*y0*dy + co.D*dx + co.F*dy)
	qc := co.Eval(l.P1)

	if math.Abs(qa) < geometry.Epsilon {
		// Degenerate: the segment is parallel to an asymptotic direction
		// of the conic, leaving a linear equation.
		if math.Abs(qb) < geometry.Epsilon {
			return nil
		}
		return ellipseRoots(l, dx, dy, []float64{-qc / qb})
	}

	disc := qb*qb - 4*qa*qc
	tol := ellipseDiscTolerance(e.Area())
	switch {
	case math.Abs(disc) <= tol:
		return ellipseRoots(l, dx, dy, []float64{-qb / (2 * qa)})
	case disc > 0:
		sq := math.Sqrt(disc)
		return ellipseRoots(l, dx, dy, []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)})
	default:
		return nil
	}
}

func ellipseRoots(l shape.Line, dx, dy float64, roots []float64) []geometry.Point2D {
	var points []geometry.Point2D
	for _, t := range roots {
		if t < -geometry.Epsilon || t > 1+geometry.Epsilon {
			continue
		}
		points = append(points, geometry.Point2D{X: l.P1.X + t*dx, Y: l.P1.Y + t*dy})
	}
	return points
}
