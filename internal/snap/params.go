package snap

// Params holds the tunable snapping parameters.
type Params struct {
	// SnapRadius is the base snap radius in document units at zoom 1.
	SnapRadius float64

	// MinZoom is the smallest zoom factor the canvas supports. The index
	// bucket width is derived from it so a radius query at maximum
	// zoom-out touches a bounded number of cells.
	MinZoom float64
}

// DefaultParams returns snapping parameters tuned for on-screen editing at
// typical pointer precision.
func DefaultParams() Params {
	return Params{
		SnapRadius: 30,
		MinZoom:    0.1,
	}
}

// WithSnapRadius returns a copy of params with a custom base snap radius.
func (p Params) WithSnapRadius(radius float64) Params {
	p.SnapRadius = radius
	return p
}

// WithMinZoom returns a copy of params with a custom minimum zoom factor.
func (p Params) WithMinZoom(minZoom float64) Params {
	p.MinZoom = minZoom
	return p
}

// BucketWidth derives the spatial hash bucket width: the effective snap
// radius at maximum zoom-out.
func (p Params) BucketWidth() float64 {
	return p.SnapRadius / p.MinZoom
}
