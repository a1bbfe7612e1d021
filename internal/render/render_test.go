package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vector-sketch/internal/document"
	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

func TestFlatten(t *testing.T) {
	t.Run("line is its endpoints", func(t *testing.T) {
		l := shape.Line{P1: geometry.Point2D{X: 1, Y: 1}, P2: geometry.Point2D{X: 9, Y: 9}}
		pts := Flatten(l, 16)
		assert.Equal(t, []geometry.Point2D{l.P1, l.P2}, pts)
	})

	t.Run("circle closes on itself", func(t *testing.T) {
		pts := Flatten(shape.NewCircle("c", geometry.Point2D{X: 5, Y: 5}, 3), 16)
		require.Len(t, pts, 17)
		assert.True(t, pts[0].ApproxEqual(pts[len(pts)-1], 1e-9))
		for _, p := range pts {
			assert.InDelta(t, 3, p.Distance(geometry.Point2D{X: 5, Y: 5}), 1e-9)
		}
	})

	t.Run("half arc spans start to end", func(t *testing.T) {
		arc := shape.CircleArc{Center: geometry.Point2D{}, Radius: 2, Start: 0, Delta: 3.14159265358979}
		pts := Flatten(arc, 8)
		require.Len(t, pts, 9)
		assert.True(t, pts[0].ApproxEqual(geometry.Point2D{X: 2, Y: 0}, 1e-6))
		assert.True(t, pts[len(pts)-1].ApproxEqual(geometry.Point2D{X: -2, Y: 0}, 1e-6))
	})

	t.Run("bezier endpoints", func(t *testing.T) {
		bz := shape.Bezier{P1: geometry.Point2D{}, P2: geometry.Point2D{X: 5, Y: 10}, P3: geometry.Point2D{X: 10}}
		pts := Flatten(bz, 8)
		require.Len(t, pts, 9)
		assert.Equal(t, bz.P1, pts[0])
		assert.Equal(t, bz.P3, pts[len(pts)-1])
	})

	t.Run("rect closes the boundary", func(t *testing.T) {
		pts := Flatten(shape.Rect{Rect: geometry.NewRect(0, 0, 4, 4)}, 8)
		require.Len(t, pts, 5)
		assert.Equal(t, pts[0], pts[4])
	})
}

func TestStrokeShapeMarksPixels(t *testing.T) {
	c := NewCanvas(100, 100, color.White)
	line := shape.Line{P1: geometry.Point2D{X: 10, Y: 50}, P2: geometry.Point2D{X: 90, Y: 50}}
	c.StrokeShape(line, color.RGBA{R: 255, A: 255}, 2)

	img := c.Image()
	_, g, b, _ := img.At(50, 50).RGBA()
	assert.Less(t, g, uint32(0xffff), "stroke crosses the midpoint")
	assert.Less(t, b, uint32(0xffff))

	wr, wg, wb, _ := img.At(50, 10).RGBA()
	assert.Equal(t, uint32(0xffff), wr)
	assert.Equal(t, uint32(0xffff), wg)
	assert.Equal(t, uint32(0xffff), wb)
}

func TestViewTransformAppliesToStrokes(t *testing.T) {
	c := NewCanvas(100, 100, color.White)
	c.SetView(geometry.Translation(0, 40))
	line := shape.Line{P1: geometry.Point2D{X: 10, Y: 10}, P2: geometry.Point2D{X: 90, Y: 10}}
	c.StrokeShape(line, color.RGBA{A: 255}, 2)

	img := c.Image()
	r, _, _, _ := img.At(50, 50).RGBA()
	assert.Less(t, r, uint32(0xffff), "stroke lands on the translated row")

	r, g, b, _ := img.At(50, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r, "original row stays background")
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestExportPNGSize(t *testing.T) {
	doc := document.New(geometry.Size{Width: 64, Height: 32})
	require.NoError(t, doc.AddShape(doc.Layers[0].ID, shape.Line{
		ID: "l", P1: geometry.Point2D{X: 0, Y: 16}, P2: geometry.Point2D{X: 64, Y: 16},
	}))

	img := ExportPNGSize(doc, 2)
	bounds := img.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 32, bounds.Dy())
}
