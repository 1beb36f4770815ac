package gosiebsp

import (
	"image/color"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// DefaultPolygonColor is the outline grey used when a polygon carries no colour.
var DefaultPolygonColor = color.RGBA{R: 180, G: 180, B: 180, A: 255}

// Polygon is a planar convex polygon. The vertex loop is closed implicitly
// (the last vertex connects back to the first).
//
// The normal is (v1 - v0) × (v2 - v0) and is not normalised, so its magnitude
// grows with the polygon's size. If the first three vertices are collinear the
// normal is zero and every plane test against this polygon reports zero
// distance; this is accepted rather than corrected.
//
// A Polygon is never modified after construction. Splitting creates new ones.
type Polygon struct {
	vertices []Vector3
	normal   Vector3
	Col      color.RGBA
}

// NewPolygon builds a polygon from at least three vertices. The slice is copied.
func NewPolygon(vertices []Vector3) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, errors.New("polygon needs at least 3 vertices").
			WithType(ErrTypeInvalidGeometry).
			WithTag("vertices", len(vertices))
	}

	p := &Polygon{
		vertices: make([]Vector3, len(vertices)),
		Col:      DefaultPolygonColor,
	}
	copy(p.vertices, vertices)
	p.normal = calculateNormal(p.vertices)
	return p, nil
}

// MustPolygon is NewPolygon for literals known to be valid. It panics otherwise.
func MustPolygon(vertices ...Vector3) *Polygon {
	p, err := NewPolygon(vertices)
	if err != nil {
		panic(err)
	}
	return p
}

func calculateNormal(vertices []Vector3) Vector3 {
	v0, v1, v2 := vertices[0], vertices[1], vertices[2]
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

// WithColor returns a copy of the polygon painted with col.
func (p *Polygon) WithColor(col color.RGBA) *Polygon {
	c := *p
	c.Col = col
	return &c
}

// Vertices returns a copy of the vertex loop.
func (p *Polygon) Vertices() []Vector3 {
	vs := make([]Vector3, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

func (p *Polygon) VertexCount() int {
	return len(p.vertices)
}

func (p *Polygon) Vertex(i int) Vector3 {
	return p.vertices[i]
}

func (p *Polygon) Normal() Vector3 {
	return p.normal
}

// IsDegenerate reports whether the first three vertices are collinear.
func (p *Polygon) IsDegenerate() bool {
	return p.normal.IsZero()
}

// MidPoint is the average of the vertices.
func (p *Polygon) MidPoint() Vector3 {
	var sum Vector3
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(p.vertices)))
}

// Area of the polygon, summed as a fan around the first vertex.
func (p *Polygon) Area() float64 {
	var sum Vector3
	v0 := p.vertices[0]
	for i := 1; i+1 < len(p.vertices); i++ {
		sum = sum.Add(p.vertices[i].Sub(v0).Cross(p.vertices[i+1].Sub(v0)))
	}
	return sum.Length() / 2
}

// DistanceTo is the distance from the polygon's midpoint to pos.
func (p *Polygon) DistanceTo(pos Vector3) float64 {
	return p.MidPoint().DistanceTo(pos)
}

func (p *Polygon) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range p.vertices {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]")
	return sb.String()
}
