// Command snaptest runs the intersection and snapping engine over a scene
// and prints the resulting snap points.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"vector-sketch/internal/project"
	"vector-sketch/internal/shape"
	"vector-sketch/internal/snap"
	"vector-sketch/pkg/geometry"
)

func main() {
	projectPath := flag.String("project", "", "Path to a .vsketch project (omit for the built-in demo scene)")
	queryX := flag.Float64("x", 0, "Nearest-neighbor query X")
	queryY := flag.Float64("y", 0, "Nearest-neighbor query Y")
	radius := flag.Float64("radius", 30, "Base snap radius")
	zoom := flag.Float64("zoom", 1, "Zoom factor (radius scale)")
	flag.Parse()

	var shapes []shape.Shape
	if *projectPath != "" {
		proj, err := project.Load(*projectPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load project: %v\n", err)
			os.Exit(1)
		}
		shapes = proj.Document.VisibleShapes()
		fmt.Printf("Loaded %s: %d shapes\n", *projectPath, len(shapes))
	} else {
		shapes = demoScene()
		fmt.Printf("Demo scene: %d shapes\n", len(shapes))
	}

	params := snap.DefaultParams().WithSnapRadius(*radius)
	fmt.Printf("Snap radius: %.1f  bucket width: %.1f  zoom: %.2f\n\n",
		params.SnapRadius, params.BucketWidth(), *zoom)

	mgr := snap.NewManager(params)
	mgr.SetRadiusScale(*zoom)

	fmt.Printf("%-16s %-16s %8s\n", "Shape", "Against", "Points")
	for i, s := range shapes {
		intersecting, points := mgr.TestIntersections(s, shapes[:i], snap.ActionInsert)
		for _, other := range intersecting {
			fmt.Printf("%-16s %-16s\n", s.ShapeID(), other.ShapeID())
		}
		if len(points) > 0 {
			for _, p := range points {
				fmt.Printf("%34s (%.4f, %.4f)\n", "", p.X, p.Y)
			}
		}
	}

	fmt.Printf("\n%d snap points live\n", mgr.PointCount())

	query := geometry.Point2D{X: *queryX, Y: *queryY}
	if nearest, ok := mgr.NearestNeighbor(query, nil); ok {
		fmt.Printf("Nearest to (%.2f, %.2f): (%.4f, %.4f) at distance %.4f\n",
			query.X, query.Y, nearest.X, nearest.Y, query.Distance(nearest))
	} else {
		fmt.Printf("Nearest to (%.2f, %.2f): none within %.2f\n",
			query.X, query.Y, mgr.EffectiveRadius())
	}
}

// demoScene builds a small scene exercising every solver pair.
func demoScene() []shape.Shape {
	return []shape.Shape{
		shape.Line{ID: "line-0001", P1: geometry.NewPoint2D(0, 0), P2: geometry.NewPoint2D(100, 0)},
		shape.Line{ID: "line-0002", P1: geometry.NewPoint2D(50, -50), P2: geometry.NewPoint2D(50, 50)},
		shape.NewCircle("circle-arc-0003", geometry.NewPoint2D(0, 0), 50),
		shape.NewCircle("circle-arc-0004", geometry.NewPoint2D(60, 0), 50),
		shape.CircleArc{
			ID:     "circle-arc-0005",
			Center: geometry.NewPoint2D(50, 50),
			Radius: 40,
			Start:  0,
			Delta:  math.Pi,
		},
		shape.Bezier{
			ID: "bezier-0006",
			P1: geometry.NewPoint2D(0, 30),
			P2: geometry.NewPoint2D(50, -30),
			P3: geometry.NewPoint2D(100, 30),
		},
		shape.Rect{ID: "rect-0007", Rect: geometry.NewRect(-20, -20, 60, 60)},
	}
}
