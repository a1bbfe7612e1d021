// Package project provides project file handling and persistence.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"vector-sketch/internal/document"
	"vector-sketch/internal/snap"
)

// File represents a sketch project file (.vsketch).
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Description string    `json:"description,omitempty"`

	Document *document.Document `json:"document"`

	// User settings
	Settings Settings `json:"settings,omitempty"`
}

// Settings holds user preferences for the project.
type Settings struct {
	SnapEnabled bool    `json:"snap_enabled"`
	SnapRadius  float64 `json:"snap_radius,omitempty"`
	MinZoom     float64 `json:"min_zoom,omitempty"`
}

// New creates a new project file with default settings.
func New(name string, doc *document.Document) *File {
	now := time.Now()
	defaults := snap.DefaultParams()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
		Document: doc,
		Settings: Settings{
			SnapEnabled: true,
			SnapRadius:  defaults.SnapRadius,
			MinZoom:     defaults.MinZoom,
		},
	}
}

// SnapParams returns the snapping parameters stored in the project,
// falling back to defaults for unset values.
func (p *File) SnapParams() snap.Params {
	params := snap.DefaultParams()
	if p.Settings.SnapRadius > 0 {
		params = params.WithSnapRadius(p.Settings.SnapRadius)
	}
	if p.Settings.MinZoom > 0 {
		params = params.WithMinZoom(p.Settings.MinZoom)
	}
	return params
}

// Load loads a project from a .vsketch file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", path, err)
	}
	if proj.Document == nil {
		return nil, fmt.Errorf("project %s has no document", path)
	}
	proj.Document.Reseed()
	return &proj, nil
}

// Save saves the project to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
