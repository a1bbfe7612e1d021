// Package app provides application lifecycle management, state, and theming.
package app

import (
	"fmt"
	"math"
	"sync"

	"vector-sketch/internal/document"
	"vector-sketch/internal/project"
	"vector-sketch/internal/shape"
	"vector-sketch/internal/snap"
	"vector-sketch/pkg/geometry"
)

// Zoom limits for the canvas. MinZoom must not go below the snap
// parameters' MinZoom or a zoomed-out radius query could span an unbounded
// number of index cells.
const (
	MinZoom = 0.1
	MaxZoom = 10.0
)

// DefaultCanvasSize is the document size for new projects.
var DefaultCanvasSize = geometry.Size{Width: 1600, Height: 1200}

// State holds the application state: the open document, the snap point
// manager derived from it, and view settings. The fyne driver delivers
// events from its own goroutine, so access is serialized with a mutex.
type State struct {
	mu sync.RWMutex

	// Project
	ProjectPath string
	Modified    bool

	doc     *document.Document
	snapper *snap.Manager
	params  snap.Params

	SnapEnabled bool
	zoom        float64
}

// NewState creates application state with an empty document.
func NewState() *State {
	s := &State{
		doc:         document.New(DefaultCanvasSize),
		params:      snap.DefaultParams().WithMinZoom(MinZoom),
		SnapEnabled: true,
		zoom:        1,
	}
	s.snapper = snap.NewManager(s.params)
	return s
}

// Document returns the open document.
func (s *State) Document() *document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Snapper returns the snap point manager.
func (s *State) Snapper() *snap.Manager {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapper
}

// Zoom returns the current zoom factor.
func (s *State) Zoom() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zoom
}

// SetZoom clamps and stores the zoom factor and forwards it to the snap
// manager as the radius scale, so the on-screen snap distance stays
// constant.
func (s *State) SetZoom(zoom float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zoom = math.Min(MaxZoom, math.Max(MinZoom, zoom))
	s.snapper.SetRadiusScale(s.zoom)
	return s.zoom
}

// AddShape adds a shape to a layer and registers its intersections with
// every other visible shape as snap points.
func (s *State) AddShape(layerID string, sh shape.Shape) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := s.doc.VisibleShapes()
	if err := s.doc.AddShape(layerID, sh); err != nil {
		return err
	}
	s.snapper.TestIntersections(sh, candidates, snap.ActionInsert)
	s.Modified = true
	return nil
}

// RemoveShape removes a shape and unregisters the snap points it supported.
func (s *State) RemoveShape(shapeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh := s.doc.RemoveShape(shapeID)
	if sh == nil {
		return false
	}
	s.snapper.TestIntersections(sh, s.doc.VisibleShapes(), snap.ActionDelete)
	s.Modified = true
	return true
}

// ReplaceShape swaps a shape for an edited version, keeping the snap index
// consistent: the old shape's intersections are removed before the new
// shape's are inserted.
func (s *State) ReplaceShape(layerID string, oldID string, sh shape.Shape) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.doc.RemoveShape(oldID)
	if old == nil {
		return fmt.Errorf("no such shape %q", oldID)
	}
	candidates := s.doc.VisibleShapes()
	s.snapper.TestIntersections(old, candidates, snap.ActionDelete)

	if err := s.doc.AddShape(layerID, sh); err != nil {
		return err
	}
	s.snapper.TestIntersections(sh, candidates, snap.ActionInsert)
	s.Modified = true
	return nil
}

// SetLayerVisible toggles a layer and rebuilds the snap index, since
// hidden shapes must not attract the cursor.
func (s *State) SetLayerVisible(layerID string, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer := s.doc.Layer(layerID)
	if layer == nil || layer.Visible == visible {
		return
	}
	layer.Visible = visible
	s.rebuildSnapIndex()
	s.Modified = true
}

// DeleteLayer removes a whole layer. Point removal is batched through the
// pending-deletion list and flushed once, instead of touching the index
// per shape.
func (s *State) DeleteLayer(layerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc
	layer := doc.Layer(layerID)
	if layer == nil {
		return false
	}

	if layer.Visible {
		for _, sh := range layer.Shapes {
			s.snapper.TestIntersections(sh, doc.VisibleShapesExcept(sh.ShapeID()), snap.ActionBulkDelete)
		}
		s.snapper.Flush()
	}

	for i, l := range doc.Layers {
		if l.ID == layerID {
			doc.Layers = append(doc.Layers[:i], doc.Layers[i+1:]...)
			break
		}
	}
	s.Modified = true
	return true
}

// NearestSnap returns the nearest snap point within the effective radius,
// or false when snapping is disabled or nothing is in range.
func (s *State) NearestSnap(p geometry.Point2D) (geometry.Point2D, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.SnapEnabled {
		return geometry.Point2D{}, false
	}
	return s.snapper.NearestNeighbor(p, nil)
}

// rebuildSnapIndex recomputes every pairwise intersection among visible
// shapes. Caller holds the lock.
func (s *State) rebuildSnapIndex() {
	s.snapper = snap.NewManager(s.params)
	s.snapper.SetRadiusScale(s.zoom)

	shapes := s.doc.VisibleShapes()
	for i, sh := range shapes {
		// Testing against earlier shapes only counts each pair once.
		s.snapper.TestIntersections(sh, shapes[:i], snap.ActionInsert)
	}
}

// LoadProject replaces the current document with one loaded from disk and
// rebuilds the snap index.
func (s *State) LoadProject(path string) error {
	proj, err := project.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ProjectPath = path
	s.Modified = false
	s.doc = proj.Document
	s.params = proj.SnapParams().WithMinZoom(MinZoom)
	s.SnapEnabled = proj.Settings.SnapEnabled
	s.rebuildSnapIndex()
	return nil
}

// SaveProject writes the current document to disk.
func (s *State) SaveProject(path, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj := project.New(name, s.doc)
	proj.Settings.SnapEnabled = s.SnapEnabled
	proj.Settings.SnapRadius = s.params.SnapRadius
	proj.Settings.MinZoom = s.params.MinZoom
	if err := proj.Save(path); err != nil {
		return err
	}
	s.ProjectPath = path
	s.Modified = false
	return nil
}
