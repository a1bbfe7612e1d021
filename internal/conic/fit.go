// Package conic recovers ellipses from projective quadrilaterals and
// computes tangent lines against a general conic.
package conic

import (
	"fmt"
	"math"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// squareCorners are the corners of the reference square whose inscribed
// circle is the unit circle, in anti-clockwise order.
var squareCorners = [4]geometry.Point2D{
	{X: -1, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
}

// FitQuadrilateral computes the unique ellipse inscribed in a convex
// quadrilateral, interpreting the quad as the projective image of a square
// with an inscribed circle. Corners must be given in anti-clockwise
// winding order. The returned ellipse carries its conic coefficients for
// later intersection and tangent math.
func FitQuadrilateral(id string, quad [4]geometry.Point2D) (shape.Ellipse, error) {
	corners := quad[:]
	if !geometry.IsConvex(corners) {
		return shape.Ellipse{}, fmt.Errorf("quadrilateral is not convex")
	}
	if geometry.SignedArea(corners) <= 0 {
		return shape.Ellipse{}, fmt.Errorf("quadrilateral must wind anti-clockwise")
	}

	// Homography mapping the reference square onto the quad, composed
	// from two projective-basis maps.
	toQuad, err := basisHomography(quad)
	if err != nil {
		return shape.Ellipse{}, fmt.Errorf("fit quadrilateral: %w", err)
	}
	toSquare, err := basisHomography(squareCorners)
	if err != nil {
		return shape.Ellipse{}, fmt.Errorf("fit quadrilateral: %w", err)
	}

	var squareInv mat.Dense
	if err := squareInv.Inverse(toSquare); err != nil {
		return shape.Ellipse{}, fmt.Errorf("fit quadrilateral: %w", err)
	}
	var h mat.Dense
	h.Mul(toQuad, &squareInv)

	var hInv mat.Dense
	if err := hInv.Inverse(&h); err != nil {
		return shape.Ellipse{}, fmt.Errorf("fit quadrilateral: degenerate projection: %w", err)
	}

	// The unit circle x² + y² − 1 = 0 maps through the homography as
	// Q = H⁻ᵀ · C · H⁻¹. Tangency to the square's sides is projective, so
	// the image conic is inscribed in the quad.
	circle := mat.NewDiagDense(3, []float64{1, 1, -1})
	var q mat.Dense
	q.Product(hInv.T(), circle, &hInv)

	co := shape.Conic{
		A: q.At(0, 0),
		B: (q.At(0, 1) + q.At(1, 0)) / 2,
		C: q.At(1, 1),
		D: (q.At(0, 2) + q.At(2, 0)) / 2,
		F: (q.At(1, 2) + q.At(2, 1)) / 2,
		G: q.At(2, 2),
	}
	return ellipseFromConic(id, co)
}

// basisHomography returns the 3x3 projective map taking the standard basis
// points (1,0,0), (0,1,0), (0,0,1), (1,1,1) to the four corners.
func basisHomography(corners [4]geometry.Point2D) (*mat.Dense, error) {
	m := mat.NewDense(3, 3, []float64{
		corners[0].X, corners[1].X, corners[2].X,
		corners[0].Y, corners[1].Y, corners[2].Y,
		1, 1, 1,
	})

	var lambda mat.VecDense
	target := mat.NewVecDense(3, []float64{corners[3].X, corners[3].Y, 1})
	if err := lambda.SolveVec(m, target); err != nil {
		return nil, fmt.Errorf("collinear corners: %w", err)
	}

	var h mat.Dense
	h.Mul(m, mat.NewDiagDense(3, []float64{lambda.AtVec(0), lambda.AtVec(1), lambda.AtVec(2)}))
	return &h, nil
}

// ellipseFromConic extracts center, semi-axes and axis rotation from the
// conic's quadratic-form coefficients.
func ellipseFromConic(id string, co shape.Conic) (shape.Ellipse, error) {
	denom := co.B*co.B - co.A*co.C
	if math.Abs(denom) < 1e-12 {
		return shape.Ellipse{}, fmt.Errorf("conic is not an ellipse (degenerate quadratic form)")
	}

	center := geometry.Point2D{
		X: (co.C*co.D - co.B*co.F) / denom,
		Y: (co.A*co.F - co.B*co.D) / denom,
	}

	// Normalize the overall sign so the interior evaluates negative; the
	// axis-length formulas assume it.
	if co.Eval(center) > 0 {
		co = shape.Conic{A: -co.A, B: -co.B, C: -co.C, D: -co.D, F: -co.F, G: -co.G}
		denom = co.B*co.B - co.A*co.C
	}

	num := 2 * (co.A*co.F*co.F + co.C*co.D*co.D + co.G*co.B*co.B -
		2*co.B*co.D*co.F - co.A*co.C*co.G)
	spread := math.Sqrt((co.A-co.C)*(co.A-co.C) + 4*co.B*co.B)

	rxSq := num / (denom * (spread - (co.A + co.C)))
	rySq := num / (denom * (-spread - (co.A + co.C)))
	if rxSq <= 0 || rySq <= 0 {
		return shape.Ellipse{}, fmt.Errorf("conic is not a real ellipse")
	}

	var rotation float64
	switch {
	case co.B == 0 && co.A < co.C:
		rotation = 0
	case co.B == 0:
		rotation = math.Pi / 2
	case co.A < co.C:
		rotation = 0.5 * math.Atan(2*co.B/(co.A-co.C))
	default:
		rotation = math.Pi/2 + 0.5*math.Atan(2*co.B/(co.A-co.C))
	}

	return shape.Ellipse{
		ID:       id,
		Center:   center,
		Rx:       math.Sqrt(rxSq),
		Ry:       math.Sqrt(rySq),
		Rotation: rotation,
		Conic:    &co,
	}, nil
}
