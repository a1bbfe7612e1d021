// Package render rasterizes documents and snap markers into RGBA images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"vector-sketch/internal/document"
	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

// flattenSegments is the number of line segments curved shapes are
// flattened into before stroking.
const flattenSegments = 64

// Canvas is a raster target with a view transform from document to pixel
// coordinates.
type Canvas struct {
	img  *image.RGBA
	view geometry.AffineTransform
}

// NewCanvas creates a canvas of the given pixel size filled with the
// background color.
func NewCanvas(width, height int, background color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{img: img, view: geometry.Identity()}
}

// SetView sets the document-to-pixel transform (pan and zoom).
func (c *Canvas) SetView(t geometry.AffineTransform) {
	c.view = t
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// StrokeShape draws a shape's outline with the given color and pixel
// stroke width.
func (c *Canvas) StrokeShape(s shape.Shape, col color.Color, width float64) {
	pts := Flatten(s, flattenSegments)
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		pts[i] = c.view.Apply(pts[i])
	}
	c.strokePolyline(pts, col, width)
}

// FillDot fills a small circle at a document point, e.g. a snap marker.
func (c *Canvas) FillDot(p geometry.Point2D, radius float64, col color.Color) {
	center := c.view.Apply(p)
	rz := vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	const sides = 24
	for i := 0; i <= sides; i++ {
		theta := 2 * math.Pi * float64(i) / sides
		x := float32(center.X + radius*math.Cos(theta))
		y := float32(center.Y + radius*math.Sin(theta))
		if i == 0 {
			rz.MoveTo(x, y)
		} else {
			rz.LineTo(x, y)
		}
	}
	rz.ClosePath()
	rz.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// strokePolyline draws each segment as a filled quad of the stroke width.
func (c *Canvas) strokePolyline(pts []geometry.Point2D, col color.Color, width float64) {
	rz := vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	half := width / 2
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx := b.X - a.X
		dy := b.Y - a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Perpendicular offset of half the stroke width.
		ox := -dy / length * half
		oy := dx / length * half
		rz.MoveTo(float32(a.X+ox), float32(a.Y+oy))
		rz.LineTo(float32(b.X+ox), float32(b.Y+oy))
		rz.LineTo(float32(b.X-ox), float32(b.Y-oy))
		rz.LineTo(float32(a.X-ox), float32(a.Y-oy))
		rz.ClosePath()
	}
	rz.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// DrawDocument strokes every visible layer in stack order using the layer
// colors.
func (c *Canvas) DrawDocument(doc *document.Document, strokeWidth float64) {
	for _, layer := range doc.Layers {
		if !layer.Visible {
			continue
		}
		for _, s := range layer.Shapes {
			c.StrokeShape(s, layer.Color, strokeWidth)
		}
	}
}

// Flatten approximates a shape's outline as a polyline with the given
// number of segments for curved shapes.
func Flatten(s shape.Shape, segments int) []geometry.Point2D {
	switch v := s.(type) {
	case shape.Line:
		return []geometry.Point2D{v.P1, v.P2}
	case shape.CircleArc:
		start, delta := v.Sweep()
		return flattenArc(v.Center, v.Radius, v.Radius, 0, start, delta, segments)
	case shape.Ellipse:
		return flattenArc(v.Center, v.Rx, v.Ry, v.Rotation, 0, 2*math.Pi, segments)
	case shape.EllipseArc:
		start, delta := v.Sweep()
		return flattenArc(v.Center, v.Rx, v.Ry, v.Rotation, start, delta, segments)
	case shape.Bezier:
		pts := make([]geometry.Point2D, 0, segments+1)
		for i := 0; i <= segments; i++ {
			pts = append(pts, v.At(float64(i)/float64(segments)))
		}
		return pts
	case shape.Rect:
		r := v.Rect
		return []geometry.Point2D{
			r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft(), r.TopLeft(),
		}
	default:
		return nil
	}
}

func flattenArc(center geometry.Point2D, rx, ry, rotation, start, delta float64, segments int) []geometry.Point2D {
	cos := math.Cos(rotation)
	sin := math.Sin(rotation)
	pts := make([]geometry.Point2D, 0, segments+1)
	for i := 0; i <= segments; i++ {
		theta := start + delta*float64(i)/float64(segments)
		ex := rx * math.Cos(theta)
		ey := ry * math.Sin(theta)
		pts = append(pts, geometry.Point2D{
			X: center.X + ex*cos - ey*sin,
			Y: center.Y + ex*sin + ey*cos,
		})
	}
	return pts
}

// ExportPNGSize renders the document at 1:1 scale into a fresh image of
// the document's canvas size.
func ExportPNGSize(doc *document.Document, strokeWidth float64) *image.RGBA {
	w := int(math.Ceil(doc.Canvas.Width))
	h := int(math.Ceil(doc.Canvas.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := NewCanvas(w, h, color.White)
	c.DrawDocument(doc, strokeWidth)
	return c.Image()
}
