package gosiebsp

import (
	"image/color"
	"math"
)

// PolygonBatcher receives screen-space polygons in drawing order. The viewer
// backs it with ebiten; tests record the calls.
type PolygonBatcher interface {
	AddPolygon(xp, yp []float32, clr color.RGBA)
	AddOutline(xp, yp []float32, clr color.RGBA, strokeWidth float32)
	AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32)
}

// PaintStyle controls how PaintPolygons draws each polygon.
type PaintStyle struct {
	// Fill draws solid polygons with a faint outline. Otherwise only the
	// outline is drawn, in the polygon's colour.
	Fill bool
	// Shading darkens polygons that face away from the camera or sit off the
	// view axis.
	Shading bool
	// NoOutline leaves out the faint outline around filled polygons.
	NoOutline   bool
	StrokeWidth float32
}

var fillOutlineColor = color.RGBA{R: 100, G: 100, B: 100, A: 20}

// PaintPolygons projects and hands ordered to b strictly in order, so later
// polygons cover earlier ones. Polygons with a vertex behind the camera are
// skipped. It returns how many were painted.
func PaintPolygons(b PolygonBatcher, ordered []*Polygon, cam Camera, vp Viewport, style PaintStyle) int {
	projector := NewProjector(cam, vp)
	strokeWidth := style.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 1
	}

	painted := 0
	for _, p := range ordered {
		points, ok := projector.ProjectPolygon(p)
		if !ok {
			continue
		}

		xp := make([]float32, len(points))
		yp := make([]float32, len(points))
		for i, sp := range points {
			xp[i], yp[i] = sp.Float32()
		}

		col := p.Col
		if style.Shading {
			col = FlatShade(p, cam)
		}

		switch {
		case style.Fill && style.NoOutline:
			b.AddPolygon(xp, yp, col)
		case style.Fill:
			b.AddPolygonAndOutline(xp, yp, col, fillOutlineColor, strokeWidth)
		default:
			b.AddOutline(xp, yp, col, strokeWidth)
		}
		painted++
	}
	return painted
}

const (
	ambientLight       = 0.65
	spotlightConePower = 10.0
	spotlightAmount    = 1.0 - ambientLight
	minShadedChannel   = 7
)

// FlatShade returns p's colour lit by a light at the camera pointing along
// its front vector. Polygons are two-sided, so the facing term uses the
// absolute angle between the normal and the direction to the camera.
func FlatShade(p *Polygon, cam Camera) color.RGBA {
	mid := p.MidPoint()
	toCamera := cam.Position.Sub(mid).Normalize()

	diffuse := math.Abs(p.normal.Normalize().Dot(toCamera))

	spotlight := 1.0
	if toPoint := mid.Sub(cam.Position); !toPoint.IsZero() {
		cosAngle := math.Max(0, toPoint.Normalize().Dot(cam.Front.Normalize()))
		spotlight = math.Pow(cosAngle, spotlightConePower)
	}

	brightness := ambientLight + diffuse*spotlight*spotlightAmount
	c := 240 - int(brightness*240)

	return color.RGBA{
		R: uint8(clamp(int(p.Col.R)-c, minShadedChannel, 255)),
		G: uint8(clamp(int(p.Col.G)-c, minShadedChannel, 255)),
		B: uint8(clamp(int(p.Col.B)-c, minShadedChannel, 255)),
		A: 255,
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
