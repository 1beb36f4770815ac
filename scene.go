package gosiebsp

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// RenderMode selects how a scene orders its polygons for drawing.
type RenderMode string

const (
	// RenderModeBSP orders by walking the BSP tree from the camera position.
	RenderModeBSP RenderMode = "bsp"
	// RenderModeNaive sorts by midpoint distance. It is wrong for polygons
	// that overlap in depth and exists for comparison.
	RenderModeNaive RenderMode = "naive"
)

func ParseRenderMode(s string) (RenderMode, error) {
	switch m := RenderMode(s); m {
	case RenderModeBSP, RenderModeNaive:
		return m, nil
	default:
		return "", errors.New("unknown render mode").
			WithType(ErrTypeInvalidConfig).
			WithTag("mode", s)
	}
}

// Toggle switches between the two modes.
func (m RenderMode) Toggle() RenderMode {
	if m == RenderModeBSP {
		return RenderModeNaive
	}
	return RenderModeBSP
}

// Scene holds the loaded polygons and the tree built from them.
type Scene struct {
	store *PolygonStore
	Root  *BspNode
}

func NewScene(polygons []*Polygon) *Scene {
	return &Scene{
		store: NewPolygonStore(polygons...),
		Root:  NewBspTree(polygons),
	}
}

// Polygons returns the polygons as loaded, before any splitting.
func (s *Scene) Polygons() []*Polygon {
	return s.store.Polygons()
}

// Order returns the polygons to draw, back to front, for cam.
func (s *Scene) Order(cam Camera, mode RenderMode) []*Polygon {
	if mode == RenderModeNaive {
		return s.store.SortedByDistance(cam.Position)
	}
	return s.Root.TraverseCamera(cam)
}
