package gosiebsp

import "sort"

// PolygonStore is an ordered polygon list.
type PolygonStore struct {
	polygons []*Polygon
}

func NewPolygonStore(polygons ...*Polygon) *PolygonStore {
	return &PolygonStore{polygons: polygons}
}

func (ps *PolygonStore) Add(p *Polygon) {
	ps.polygons = append(ps.polygons, p)
}

func (ps *PolygonStore) Get(i int) *Polygon {
	return ps.polygons[i]
}

func (ps *PolygonStore) Len() int {
	return len(ps.polygons)
}

// Polygons returns the stored slice in insertion order.
func (ps *PolygonStore) Polygons() []*Polygon {
	return ps.polygons
}

// SortedByDistance returns a copy ordered so the polygons whose midpoints are
// farthest from pos come first. Ties keep insertion order.
func (ps *PolygonStore) SortedByDistance(pos Vector3) []*Polygon {
	sorted := make([]*Polygon, len(ps.polygons))
	copy(sorted, ps.polygons)

	distances := make(map[*Polygon]float64, len(sorted))
	for _, p := range sorted {
		distances[p] = p.DistanceTo(pos)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return distances[sorted[i]] > distances[sorted[j]]
	})
	return sorted
}
