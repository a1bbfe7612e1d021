// Package shape defines the closed set of drawable shape variants and the
// conic representation shared by the intersection and tangent math.
package shape

import (
	"math"

	"vector-sketch/pkg/geometry"
)

// Kind identifies a shape variant. The String form is the canonical tag
// used to order shape pairs for solver dispatch.
type Kind int

const (
	KindBezier Kind = iota
	KindCircleArc
	KindEllipse
	KindEllipseArc
	KindLine
	KindRect
)

var kindNames = map[Kind]string{
	KindBezier:     "bezier",
	KindCircleArc:  "circle-arc",
	KindEllipse:    "ellipse",
	KindEllipseArc: "ellipse-arc",
	KindLine:       "line",
	KindRect:       "rect",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromString returns the Kind for a canonical tag.
func KindFromString(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Shape is the common interface for all drawable shape variants.
type Shape interface {
	// ShapeKind returns the variant tag used for solver dispatch.
	ShapeKind() Kind

	// ShapeID returns the unique identifier for this shape.
	ShapeID() string

	// Bounds returns the axis-aligned bounding rectangle. Arc bounds are
	// conservative (full circle/ellipse extent).
	Bounds() geometry.Rect
}

// Conic holds the six coefficients of the general second-degree curve
// a·x² + 2b·xy + c·y² + 2d·x + 2f·y + g = 0.
type Conic struct {
	A, B, C, D, F, G float64
}

// Eval evaluates the conic equation at p. A point on the curve yields
// approximately zero.
func (c Conic) Eval(p geometry.Point2D) float64 {
	return c.A*p.X*p.X + 2*c.B*p.X*p.Y + c.C*p.Y*p.Y + 2*c.D*p.X + 2*c.F*p.Y + c.G
}

// Line is a finite segment between two endpoints.
type Line struct {
	ID string           `json:"id"`
	P1 geometry.Point2D `json:"p1"`
	P2 geometry.Point2D `json:"p2"`
}

func (l Line) ShapeKind() Kind { return KindLine }

func (l Line) ShapeID() string { return l.ID }

func (l Line) Bounds() geometry.Rect {
	return geometry.BoundingBox([]geometry.Point2D{l.P1, l.P2})
}

// CircleArc is a circular arc swept from Start through Start+Delta radians.
// A zero Delta means an unspecified extent, i.e. a full circle.
type CircleArc struct {
	ID     string           `json:"id"`
	Center geometry.Point2D `json:"center"`
	Radius float64          `json:"radius"`
	Start  float64          `json:"start_angle,omitempty"`
	Delta  float64          `json:"delta_angle,omitempty"`
}

// NewCircle returns a full circle.
func NewCircle(id string, center geometry.Point2D, radius float64) CircleArc {
	return CircleArc{ID: id, Center: center, Radius: radius, Delta: 2 * math.Pi}
}

func (c CircleArc) ShapeKind() Kind { return KindCircleArc }

func (c CircleArc) ShapeID() string { return c.ID }

func (c CircleArc) Bounds() geometry.Rect {
	return geometry.NewRect(c.Center.X-c.Radius, c.Center.Y-c.Radius, 2*c.Radius, 2*c.Radius)
}

// Sweep returns the arc's angular extent, mapping an unset Delta to a full
// circle.
func (c CircleArc) Sweep() (start, delta float64) {
	if c.Delta == 0 {
		return c.Start, 2 * math.Pi
	}
	return c.Start, c.Delta
}

// Ellipse is an axis-rotated ellipse. Conic is populated only when the
// ellipse was derived by quadrilateral projection; analytic routines that
// need the conic treat nil as unsupported.
type Ellipse struct {
	ID       string           `json:"id"`
	Center   geometry.Point2D `json:"center"`
	Rx       float64          `json:"rx"`
	Ry       float64          `json:"ry"`
	Rotation float64          `json:"x_axis_rotation,omitempty"`
	Conic    *Conic           `json:"conic,omitempty"`
}

func (e Ellipse) ShapeKind() Kind { return KindEllipse }

func (e Ellipse) ShapeID() string { return e.ID }

func (e Ellipse) Bounds() geometry.Rect {
	cos := math.Cos(e.Rotation)
	sin := math.Sin(e.Rotation)
	halfW := math.Sqrt(e.Rx*e.Rx*cos*cos + e.Ry*e.Ry*sin*sin)
	halfH := math.Sqrt(e.Rx*e.Rx*sin*sin + e.Ry*e.Ry*cos*cos)
	return geometry.NewRect(e.Center.X-halfW, e.Center.Y-halfH, 2*halfW, 2*halfH)
}

// Area returns the ellipse area, which scales the discriminant tolerance in
// the ellipse-line solver.
func (e Ellipse) Area() float64 {
	return math.Pi * e.Rx * e.Ry
}

// EllipseArc is an elliptical arc with the same sweep convention as
// CircleArc.
type EllipseArc struct {
	ID       string           `json:"id"`
	Center   geometry.Point2D `json:"center"`
	Rx       float64          `json:"rx"`
	Ry       float64          `json:"ry"`
	Rotation float64          `json:"x_axis_rotation,omitempty"`
	Conic    *Conic           `json:"conic,omitempty"`
	Start    float64          `json:"start_angle,omitempty"`
	Delta    float64          `json:"delta_angle,omitempty"`
}

func (e EllipseArc) ShapeKind() Kind { return KindEllipseArc }

func (e EllipseArc) ShapeID() string { return e.ID }

func (e EllipseArc) Bounds() geometry.Rect {
	return e.Full().Bounds()
}

// Full returns the arc's supporting ellipse.
func (e EllipseArc) Full() Ellipse {
	return Ellipse{ID: e.ID, Center: e.Center, Rx: e.Rx, Ry: e.Ry, Rotation: e.Rotation, Conic: e.Conic}
}

// Sweep returns the arc's angular extent, mapping an unset Delta to a full
// ellipse.
func (e EllipseArc) Sweep() (start, delta float64) {
	if e.Delta == 0 {
		return e.Start, 2 * math.Pi
	}
	return e.Start, e.Delta
}

// Bezier is a quadratic Bezier curve with three control points.
type Bezier struct {
	ID string           `json:"id"`
	P1 geometry.Point2D `json:"p1"`
	P2 geometry.Point2D `json:"p2"`
	P3 geometry.Point2D `json:"p3"`
}

func (b Bezier) ShapeKind() Kind { return KindBezier }

func (b Bezier) ShapeID() string { return b.ID }

func (b Bezier) Bounds() geometry.Rect {
	// Control-point hull bounds; the curve never leaves it.
	return geometry.BoundingBox([]geometry.Point2D{b.P1, b.P2, b.P3})
}

// At evaluates the curve at parameter t using the quadratic Bezier blend.
func (b Bezier) At(t float64) geometry.Point2D {
	u := 1 - t
	return geometry.Point2D{
		X: u*u*b.P1.X + 2*t*u*b.P2.X + t*t*b.P3.X,
		Y: u*u*b.P1.Y + 2*t*u*b.P2.Y + t*t*b.P3.Y,
	}
}

// Rect is an axis-aligned rectangle shape. It is not intersected directly;
// solvers decompose it into its four boundary segments.
type Rect struct {
	ID   string        `json:"id"`
	Rect geometry.Rect `json:"rect"`
}

func (r Rect) ShapeKind() Kind { return KindRect }

func (r Rect) ShapeID() string { return r.ID }

func (r Rect) Bounds() geometry.Rect { return r.Rect }

// Sides returns the four boundary segments in top, right, bottom, left
// order. The segment IDs are derived from the rectangle's ID.
func (r Rect) Sides() [4]Line {
	tl := r.Rect.TopLeft()
	tr := r.Rect.TopRight()
	br := r.Rect.BottomRight()
	bl := r.Rect.BottomLeft()
	return [4]Line{
		{ID: r.ID + "/top", P1: tl, P2: tr},
		{ID: r.ID + "/right", P1: tr, P2: br},
		{ID: r.ID + "/bottom", P1: br, P2: bl},
		{ID: r.ID + "/left", P1: bl, P2: tl},
	}
}
