// Package canvas provides the drawing canvas with pan, zoom, shape tools,
// and intersection snapping.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"vector-sketch/internal/app"
	"vector-sketch/internal/conic"
	"vector-sketch/internal/render"
	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

const (
	zoomStep    = 1.25
	strokeWidth = 2.0
	markerSize  = 5.0
)

// Tool represents the current interaction tool.
type Tool int

const (
	ToolPan Tool = iota
	ToolLine
	ToolCircle
	ToolRect
	ToolBezier
	ToolQuadEllipse
)

// clicksNeeded is the number of placement clicks each tool consumes
// before a shape is committed.
var clicksNeeded = map[Tool]int{
	ToolLine:        2,
	ToolCircle:      2,
	ToolRect:        2,
	ToolBezier:      3,
	ToolQuadEllipse: 4,
}

// DrawingCanvas is the interactive drawing surface. Pointer moves query
// the snap manager; clicks place shape control points, snapped when a
// snap point is in range.
type DrawingCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	// View state: pan is the document coordinate at the top-left pixel.
	pan geometry.Point2D

	tool    Tool
	layerID string

	// In-progress tool clicks and the current snap target.
	pending    []geometry.Point2D
	hover      geometry.Point2D
	snapTarget *geometry.Point2D

	onStatus  func(msg string)
	onChanged func()
}

// New creates a drawing canvas over the given application state.
func New(state *app.State) *DrawingCanvas {
	dc := &DrawingCanvas{
		state:   state,
		tool:    ToolLine,
		layerID: state.Document().Layers[0].ID,
	}
	dc.raster = fynecanvas.NewRaster(dc.draw)
	dc.ExtendBaseWidget(dc)
	return dc
}

// CreateRenderer implements fyne.Widget.
func (dc *DrawingCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(dc.raster)
}

// SetTool switches the active tool and abandons any in-progress clicks.
func (dc *DrawingCanvas) SetTool(tool Tool) {
	dc.tool = tool
	dc.pending = nil
	dc.Refresh()
}

// SetLayer selects the layer new shapes are added to.
func (dc *DrawingCanvas) SetLayer(layerID string) {
	dc.layerID = layerID
}

// OnStatus sets the status message callback.
func (dc *DrawingCanvas) OnStatus(fn func(msg string)) {
	dc.onStatus = fn
}

// OnChanged sets the callback invoked after the document changes.
func (dc *DrawingCanvas) OnChanged(fn func()) {
	dc.onChanged = fn
}

func (dc *DrawingCanvas) status(format string, args ...interface{}) {
	if dc.onStatus != nil {
		dc.onStatus(fmt.Sprintf(format, args...))
	}
}

func (dc *DrawingCanvas) changed() {
	if dc.onChanged != nil {
		dc.onChanged()
	}
}

// viewTransform maps document coordinates to canvas pixels.
func (dc *DrawingCanvas) viewTransform() geometry.AffineTransform {
	z := dc.state.Zoom()
	return geometry.AffineTransform{A: z, D: z, TX: -dc.pan.X * z, TY: -dc.pan.Y * z}
}

// screenToDoc converts a widget position to document coordinates.
func (dc *DrawingCanvas) screenToDoc(pos fyne.Position) geometry.Point2D {
	z := dc.state.Zoom()
	return geometry.Point2D{
		X: float64(pos.X)/z + dc.pan.X,
		Y: float64(pos.Y)/z + dc.pan.Y,
	}
}

// draw renders the document, the in-progress shape preview, and the snap
// marker.
func (dc *DrawingCanvas) draw(w, h int) image.Image {
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	rc := render.NewCanvas(w, h, color.White)
	rc.SetView(dc.viewTransform())
	rc.DrawDocument(dc.state.Document(), strokeWidth)

	for _, p := range dc.pending {
		rc.FillDot(p, markerSize/2, color.NRGBA{R: 0x19, G: 0x76, B: 0xD2, A: 0xFF})
	}
	if preview := dc.previewShape(); preview != nil {
		rc.StrokeShape(preview, color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xFF}, 1)
	}
	if dc.snapTarget != nil {
		rc.FillDot(*dc.snapTarget, markerSize, color.NRGBA{R: 0xFF, G: 0x8F, B: 0x00, A: 0xFF})
	}
	return rc.Image()
}

// previewShape builds a throwaway shape from the pending clicks plus the
// hover position, shown while placement is incomplete.
func (dc *DrawingCanvas) previewShape() shape.Shape {
	if len(dc.pending) == 0 {
		return nil
	}
	points := append(append([]geometry.Point2D{}, dc.pending...), dc.hover)
	return dc.buildShape("preview", points)
}

// buildShape constructs the active tool's shape from placement points.
// Returns nil when the points cannot form a valid shape.
func (dc *DrawingCanvas) buildShape(id string, points []geometry.Point2D) shape.Shape {
	switch dc.tool {
	case ToolLine:
		return shape.Line{ID: id, P1: points[0], P2: points[len(points)-1]}
	case ToolCircle:
		radius := points[0].Distance(points[len(points)-1])
		if radius <= 0 {
			return nil
		}
		return shape.NewCircle(id, points[0], radius)
	case ToolRect:
		box := geometry.BoundingBox([]geometry.Point2D{points[0], points[len(points)-1]})
		if box.Width <= 0 || box.Height <= 0 {
			return nil
		}
		return shape.Rect{ID: id, Rect: box}
	case ToolBezier:
		if len(points) < 3 {
			return shape.Line{ID: id, P1: points[0], P2: points[len(points)-1]}
		}
		return shape.Bezier{ID: id, P1: points[0], P2: points[1], P3: points[2]}
	case ToolQuadEllipse:
		if len(points) < 4 {
			return nil
		}
		var quad [4]geometry.Point2D
		copy(quad[:], points[:4])
		ellipse, err := conic.FitQuadrilateral(id, quad)
		if err != nil {
			return nil
		}
		return ellipse
	default:
		return nil
	}
}

// Tapped places a control point for the active tool, snapping to the
// nearest intersection point when one is in range.
func (dc *DrawingCanvas) Tapped(ev *fyne.PointEvent) {
	needed, drawingTool := clicksNeeded[dc.tool]
	if !drawingTool {
		return
	}

	p := dc.screenToDoc(ev.Position)
	if snapped, ok := dc.state.NearestSnap(p); ok {
		p = snapped
	}
	dc.pending = append(dc.pending, p)
	if len(dc.pending) < needed {
		dc.status("%s: point %d of %d placed", toolName(dc.tool), len(dc.pending), needed)
		dc.Refresh()
		return
	}

	doc := dc.state.Document()
	kind := toolKind(dc.tool)
	sh := dc.buildShape(doc.NewShapeID(kind), dc.pending)
	dc.pending = nil
	if sh == nil {
		dc.status("%s: invalid placement, try again", toolName(dc.tool))
		dc.Refresh()
		return
	}

	if err := dc.state.AddShape(dc.layerID, sh); err != nil {
		dc.status("add shape: %v", err)
		dc.Refresh()
		return
	}
	dc.status("added %s (%d snap points live)", sh.ShapeID(), dc.state.Snapper().PointCount())
	dc.changed()
	dc.Refresh()
}

// TappedSecondary abandons the in-progress placement.
func (dc *DrawingCanvas) TappedSecondary(*fyne.PointEvent) {
	dc.pending = nil
	dc.snapTarget = nil
	dc.status("placement cancelled")
	dc.Refresh()
}

// MouseMoved tracks the hover position and queries the snap manager.
func (dc *DrawingCanvas) MouseMoved(ev *desktop.MouseEvent) {
	dc.hover = dc.screenToDoc(ev.Position)
	if snapped, ok := dc.state.NearestSnap(dc.hover); ok {
		dc.snapTarget = &snapped
	} else {
		dc.snapTarget = nil
	}
	if len(dc.pending) > 0 || dc.snapTarget != nil {
		dc.Refresh()
	}
}

// MouseIn implements desktop.Hoverable.
func (dc *DrawingCanvas) MouseIn(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (dc *DrawingCanvas) MouseOut() {
	dc.snapTarget = nil
	dc.Refresh()
}

// Scrolled zooms around the current view origin.
func (dc *DrawingCanvas) Scrolled(ev *fyne.ScrollEvent) {
	z := dc.state.Zoom()
	if ev.Scrolled.DY > 0 {
		z *= zoomStep
	} else if ev.Scrolled.DY < 0 {
		z /= zoomStep
	}
	applied := dc.state.SetZoom(z)
	dc.status("zoom %.0f%%", applied*100)
	dc.Refresh()
}

// Dragged pans the view when the pan tool is active.
func (dc *DrawingCanvas) Dragged(ev *fyne.DragEvent) {
	if dc.tool != ToolPan {
		return
	}
	z := dc.state.Zoom()
	dc.pan.X -= float64(ev.Dragged.DX) / z
	dc.pan.Y -= float64(ev.Dragged.DY) / z
	dc.Refresh()
}

// DragEnd implements fyne.Draggable.
func (dc *DrawingCanvas) DragEnd() {}

func toolName(t Tool) string {
	switch t {
	case ToolPan:
		return "pan"
	case ToolLine:
		return "line"
	case ToolCircle:
		return "circle"
	case ToolRect:
		return "rectangle"
	case ToolBezier:
		return "bezier"
	case ToolQuadEllipse:
		return "perspective ellipse"
	default:
		return "unknown"
	}
}

func toolKind(t Tool) shape.Kind {
	switch t {
	case ToolCircle:
		return shape.KindCircleArc
	case ToolRect:
		return shape.KindRect
	case ToolBezier:
		return shape.KindBezier
	case ToolQuadEllipse:
		return shape.KindEllipse
	default:
		return shape.KindLine
	}
}
