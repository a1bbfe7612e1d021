// Package intersect computes pairwise intersection points between shape
// variants using closed-form solvers selected from an explicit dispatch
// table.
package intersect

import (
	"fmt"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

// Numeric tolerances. These are deliberately different per call site; do
// not collapse them into one epsilon.
const (
	// discTolerance decides tangency for the circle-line and bezier-line
	// discriminants.
	discTolerance = 1e-25

	// centerDistPrecision is the decimal precision d, r1+r2 and |r1-r2|
	// are rounded to before the circle-circle reachability comparison.
	centerDistPrecision = 6

	// The ellipse-line discriminant tolerance scales with ellipse area
	// because the conic coefficient magnitudes do.
	ellipseTolAlpha = 2.19e35
	ellipseTolBeta  = -5.673
	ellipseTolScale = 1e41
)

// solver computes intersection points for a shape pair given in canonical
// order (alphabetically smaller kind tag first).
type solver func(a, b shape.Shape) []geometry.Point2D

type pairKey struct {
	first, second shape.Kind
}

var solvers = map[pairKey]solver{}

// register installs a solver for a canonical kind pair. A duplicate
// registration is a wiring bug and fails loudly.
func register(first, second shape.Kind, fn solver) {
	key := pairKey{first, second}
	if _, exists := solvers[key]; exists {
		panic(fmt.Sprintf("intersect: duplicate solver for pair (%s, %s)", first, second))
	}
	solvers[key] = fn
}

func init() {
	register(shape.KindLine, shape.KindLine, lineLineSolver)
	register(shape.KindCircleArc, shape.KindLine, circleArcLineSolver)
	register(shape.KindCircleArc, shape.KindCircleArc, circleCircleSolver)
	register(shape.KindEllipse, shape.KindLine, ellipseLineSolver)
	register(shape.KindEllipseArc, shape.KindLine, ellipseArcLineSolver)
	register(shape.KindBezier, shape.KindLine, bezierLineSolver)

	// A rectangle is never intersected directly; every pair involving one
	// decomposes it into boundary segments.
	for _, kind := range []shape.Kind{
		shape.KindBezier,
		shape.KindCircleArc,
		shape.KindEllipse,
		shape.KindEllipseArc,
		shape.KindLine,
		shape.KindRect,
	} {
		register(kind, shape.KindRect, shapeRectSolver)
	}
}

// Intersect returns the intersection points of two shapes, or nil when the
// shapes do not intersect or no solver exists for the pair. Argument order
// does not affect the result.
func Intersect(a, b shape.Shape) []geometry.Point2D {
	ka, kb := a.ShapeKind(), b.ShapeKind()
	if ka.String() > kb.String() {
		a, b = b, a
		ka, kb = kb, ka
	}
	fn, ok := solvers[pairKey{ka, kb}]
	if !ok {
		return nil
	}
	return fn(a, b)
}

// shapeRectSolver decomposes the rectangle (always second in canonical
// order) into its four sides and unions the side intersections.
func shapeRectSolver(a, b shape.Shape) []geometry.Point2D {
	rect := b.(shape.Rect)
	var points []geometry.Point2D
	for _, side := range rect.Sides() {
		points = append(points, Intersect(a, side)...)
	}
	return points
}
