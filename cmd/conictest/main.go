// Command conictest fits an inscribed ellipse to a quadrilateral and
// prints the recovered conic, plus tangent points from an external point.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vector-sketch/internal/conic"
	"vector-sketch/pkg/geometry"
)

func main() {
	quadFlag := flag.String("quad", "0,0 100,0 100,100 0,100",
		"Four corners as \"x,y x,y x,y x,y\" in anti-clockwise order")
	tangentFlag := flag.String("tangent", "", "Optional external point \"x,y\" for tangent lines")
	flag.Parse()

	quad, err := parseQuad(*quadFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -quad: %v\n", err)
		os.Exit(1)
	}

	ellipse, err := conic.FitQuadrilateral("fit", quad)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fit failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Inscribed ellipse:\n")
	fmt.Printf("  center:   (%.4f, %.4f)\n", ellipse.Center.X, ellipse.Center.Y)
	fmt.Printf("  semiaxes: rx=%.4f ry=%.4f\n", ellipse.Rx, ellipse.Ry)
	fmt.Printf("  rotation: %.4f rad\n", ellipse.Rotation)
	co := *ellipse.Conic
	fmt.Printf("  conic:    a=%.6g b=%.6g c=%.6g d=%.6g f=%.6g g=%.6g\n",
		co.A, co.B, co.C, co.D, co.F, co.G)

	if *tangentFlag == "" {
		return
	}
	p, err := parsePoint(*tangentFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -tangent: %v\n", err)
		os.Exit(1)
	}

	points := conic.TangentPoints(co, p)
	switch len(points) {
	case 0:
		fmt.Printf("\nNo tangents from (%.2f, %.2f): point is interior\n", p.X, p.Y)
	case 1:
		fmt.Printf("\nPoint (%.2f, %.2f) lies on the ellipse\n", p.X, p.Y)
	default:
		fmt.Printf("\nTangent points from (%.2f, %.2f):\n", p.X, p.Y)
		for _, t := range points {
			fmt.Printf("  (%.4f, %.4f)\n", t.X, t.Y)
		}
	}
}

func parseQuad(s string) ([4]geometry.Point2D, error) {
	var quad [4]geometry.Point2D
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return quad, fmt.Errorf("need 4 corners, got %d", len(fields))
	}
	for i, f := range fields {
		p, err := parsePoint(f)
		if err != nil {
			return quad, err
		}
		quad[i] = p
	}
	return quad, nil
}

func parsePoint(s string) (geometry.Point2D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Point2D{}, fmt.Errorf("bad point %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("bad point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("bad point %q: %w", s, err)
	}
	return geometry.Point2D{X: x, Y: y}, nil
}
