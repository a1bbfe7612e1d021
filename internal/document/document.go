// Package document manages the layered shape model of a drawing.
package document

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"vector-sketch/internal/shape"
	"vector-sketch/pkg/geometry"
)

// DefaultLayerColors provides the palette cycled through for new layers.
var DefaultLayerColors = []color.RGBA{
	{33, 150, 243, 255},  // Blue
	{244, 67, 54, 255},   // Red
	{76, 175, 80, 255},   // Green
	{255, 152, 0, 255},   // Orange
	{156, 39, 176, 255},  // Purple
	{0, 188, 212, 255},   // Cyan
}

// Layer is a named group of shapes with shared visibility and color.
type Layer struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Visible bool       `json:"visible"`
	Color   color.RGBA `json:"color"`
	Shapes  shape.List `json:"shapes"`
}

// Document holds the ordered layer stack of a drawing.
type Document struct {
	Layers []*Layer      `json:"layers"`
	Canvas geometry.Size `json:"canvas"`

	nextShapeSeq int
	nextLayerSeq int
}

// New creates a document with one visible default layer.
func New(canvas geometry.Size) *Document {
	doc := &Document{Canvas: canvas}
	doc.AddLayer("Layer 1")
	return doc
}

// AddLayer appends a new visible layer and returns it.
func (d *Document) AddLayer(name string) *Layer {
	layer := &Layer{
		ID:      fmt.Sprintf("layer-%04d", d.nextLayerSeq),
		Name:    name,
		Visible: true,
		Color:   DefaultLayerColors[d.nextLayerSeq%len(DefaultLayerColors)],
	}
	d.nextLayerSeq++
	d.Layers = append(d.Layers, layer)
	return layer
}

// Layer returns the layer with the given ID, or nil.
func (d *Document) Layer(id string) *Layer {
	for _, l := range d.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// NewShapeID mints a unique shape identifier with the kind as prefix.
func (d *Document) NewShapeID(kind shape.Kind) string {
	id := fmt.Sprintf("%s-%04d", kind, d.nextShapeSeq)
	d.nextShapeSeq++
	return id
}

// AddShape appends a shape to the given layer.
func (d *Document) AddShape(layerID string, s shape.Shape) error {
	layer := d.Layer(layerID)
	if layer == nil {
		return fmt.Errorf("no such layer %q", layerID)
	}
	layer.Shapes = append(layer.Shapes, s)
	return nil
}

// RemoveShape removes a shape by ID from whichever layer holds it.
// Returns the removed shape, or nil if not found.
func (d *Document) RemoveShape(shapeID string) shape.Shape {
	for _, layer := range d.Layers {
		for i, s := range layer.Shapes {
			if s.ShapeID() == shapeID {
				layer.Shapes = append(layer.Shapes[:i], layer.Shapes[i+1:]...)
				return s
			}
		}
	}
	return nil
}

// FindShape returns the shape with the given ID, or nil.
func (d *Document) FindShape(shapeID string) shape.Shape {
	for _, layer := range d.Layers {
		for _, s := range layer.Shapes {
			if s.ShapeID() == shapeID {
				return s
			}
		}
	}
	return nil
}

// VisibleShapes returns every shape on a visible layer, in stack order.
// This is the candidate list handed to the snap manager.
func (d *Document) VisibleShapes() []shape.Shape {
	var shapes []shape.Shape
	for _, layer := range d.Layers {
		if !layer.Visible {
			continue
		}
		shapes = append(shapes, layer.Shapes...)
	}
	return shapes
}

// VisibleShapesExcept returns visible shapes excluding one ID, the usual
// candidate list when re-testing an edited shape against its peers.
func (d *Document) VisibleShapesExcept(shapeID string) []shape.Shape {
	var shapes []shape.Shape
	for _, layer := range d.Layers {
		if !layer.Visible {
			continue
		}
		for _, s := range layer.Shapes {
			if s.ShapeID() != shapeID {
				shapes = append(shapes, s)
			}
		}
	}
	return shapes
}

// Reseed advances the ID counters past every identifier already present,
// so shapes added after loading a document get fresh IDs.
func (d *Document) Reseed() {
	for _, layer := range d.Layers {
		var n int
		if _, err := fmt.Sscanf(layer.ID, "layer-%d", &n); err == nil && n >= d.nextLayerSeq {
			d.nextLayerSeq = n + 1
		}
		for _, s := range layer.Shapes {
			id := s.ShapeID()
			if i := strings.LastIndex(id, "-"); i >= 0 {
				if seq, err := strconv.Atoi(id[i+1:]); err == nil && seq >= d.nextShapeSeq {
					d.nextShapeSeq = seq + 1
				}
			}
		}
	}
}

// ShapeCount returns the total number of shapes across all layers.
func (d *Document) ShapeCount() int {
	n := 0
	for _, layer := range d.Layers {
		n += len(layer.Shapes)
	}
	return n
}
