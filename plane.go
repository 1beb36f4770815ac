package gosiebsp

// Side is where a polygon lies relative to a plane.
type Side int

const (
	SideStraddling Side = iota
	SideFront
	SideBack
)

func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	default:
		return "straddling"
	}
}

// Plane is the plane of a partition polygon: its first vertex and its
// (unnormalised) normal. All comparisons against it are exact.
type Plane struct {
	Point  Vector3
	Normal Vector3
}

func NewPlane(p *Polygon) Plane {
	return Plane{
		Point:  p.vertices[0],
		Normal: p.normal,
	}
}

// SignedDistance is dot(v - Point, Normal). Positive is in front.
func (pl Plane) SignedDistance(v Vector3) float64 {
	return v.Sub(pl.Point).Dot(pl.Normal)
}

// IsFront reports whether no vertex of p has a negative distance.
func (pl Plane) IsFront(p *Polygon) bool {
	for _, v := range p.vertices {
		if pl.SignedDistance(v) < 0 {
			return false
		}
	}
	return true
}

// IsBack reports whether no vertex of p has a positive distance. Vertices on
// the plane do not disqualify a polygon.
func (pl Plane) IsBack(p *Polygon) bool {
	for _, v := range p.vertices {
		if pl.SignedDistance(v) > 0 {
			return false
		}
	}
	return true
}

// Classify checks front first, so a polygon lying in the plane is front.
func (pl Plane) Classify(p *Polygon) Side {
	switch {
	case pl.IsFront(p):
		return SideFront
	case pl.IsBack(p):
		return SideBack
	default:
		return SideStraddling
	}
}

// Split cuts p along the plane.
//
// Each edge is visited in loop order. The current vertex goes to the front
// part when its distance is >= 0 and to the back part otherwise; a vertex
// lying exactly on the plane is also shared with the back part. When the edge
// changes sign strictly, the crossing point is added to both parts.
//
// Both results are nil unless p has a vertex at distance >= 0 and another at
// distance < 0. A part left with fewer than three vertices has no area and is
// returned as nil.
func (pl Plane) Split(p *Polygon) (front, back *Polygon) {
	var frontPoints, backPoints []Vector3
	var hasFront, hasBack bool

	for current, next := range edges(p.vertices) {
		currentDot := pl.SignedDistance(current)
		nextDot := pl.SignedDistance(next)

		if currentDot >= 0 {
			frontPoints = append(frontPoints, current)
			hasFront = true
			if currentDot == 0 {
				backPoints = append(backPoints, current)
			}
		} else {
			backPoints = append(backPoints, current)
			hasBack = true
		}

		// the product is only negative on a strict sign change, so the
		// denominator below cannot be zero
		if currentDot*nextDot < 0 {
			t := currentDot / (currentDot - nextDot)
			intersection := current.Add(next.Sub(current).Scale(t))
			frontPoints = append(frontPoints, intersection)
			backPoints = append(backPoints, intersection)
		}
	}

	if !hasFront || !hasBack {
		return nil, nil
	}
	return fragment(frontPoints, p), fragment(backPoints, p)
}

func fragment(points []Vector3, parent *Polygon) *Polygon {
	if len(points) < 3 {
		return nil
	}
	f, err := NewPolygon(points)
	if err != nil {
		return nil
	}
	f.Col = parent.Col
	return f
}
