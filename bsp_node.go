package gosiebsp

import (
	"fmt"
	"io"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/logs"
)

// BspNode is a node of a BSP tree. It is created with a polygon list and then
// built exactly once; after Build it is read-only and each node owns its
// children.
type BspNode struct {
	// polygons is the list the node was created with. It is kept after Build
	// but only PartitionPlane is used from then on.
	polygons []*Polygon

	// PartitionPlane is the polygon whose plane splits this node's space. It
	// is nil only for a node built from an empty list.
	PartitionPlane *Polygon
	Front          *BspNode
	Back           *BspNode

	plane  Plane
	splits int
	built  bool
}

// TreeStats summarises a built tree.
type TreeStats struct {
	Nodes    int `json:"nodes"`
	Depth    int `json:"depth"`
	Splits   int `json:"splits"`
	Polygons int `json:"polygons"`
}

func NewBspNode(polygons []*Polygon) *BspNode {
	return &BspNode{polygons: polygons}
}

// NewBspTree builds a tree from polygons. The first polygon of each list is
// used as the splitter, so the shape of the tree depends on input order.
func NewBspTree(polygons []*Polygon) *BspNode {
	logs.WithTag("polygons", len(polygons)).Info("creating bsp tree")

	root := NewBspNode(polygons)
	root.Build()

	stats := root.Stats()
	logs.WithTag("nodes", stats.Nodes).
		WithTag("depth", stats.Depth).
		WithTag("splits", stats.Splits).
		WithTag("fragments", stats.Polygons).
		Info("bsp tree created")
	return root
}

// Polygons returns the list the node was created with.
func (b *BspNode) Polygons() []*Polygon {
	return b.polygons
}

// Build partitions the node's polygons around the first one and recursively
// builds the front and back children. An empty node stays a leaf with a nil
// PartitionPlane. Calling Build again has no effect.
func (b *BspNode) Build() {
	if b.built {
		return
	}
	b.built = true

	if len(b.polygons) == 0 {
		return
	}

	b.PartitionPlane = b.polygons[0]
	b.plane = NewPlane(b.PartitionPlane)

	var frontPolygons, backPolygons []*Polygon

	for _, polygon := range b.polygons[1:] {
		switch {
		case b.IsFront(polygon):
			b.logClassification(polygon, "polygon in front of partition plane")
			frontPolygons = append(frontPolygons, polygon)

		case b.IsBack(polygon):
			b.logClassification(polygon, "polygon behind partition plane")
			backPolygons = append(backPolygons, polygon)

		default:
			logs.WithTag("polygon", polygon.String()).Debug("splitting polygon")
			b.splits++

			frontPart, backPart := b.SplitPolygon(polygon)
			if frontPart != nil {
				logs.WithTag("fragment", frontPart.String()).Debug("added front fragment after split")
				frontPolygons = append(frontPolygons, frontPart)
			}
			if backPart != nil {
				logs.WithTag("fragment", backPart.String()).Debug("added back fragment after split")
				backPolygons = append(backPolygons, backPart)
			}
		}
	}

	if len(frontPolygons) > 0 {
		b.Front = NewBspNode(frontPolygons)
		b.Front.Build()
	}
	if len(backPolygons) > 0 {
		b.Back = NewBspNode(backPolygons)
		b.Back.Build()
	}
}

func (b *BspNode) logClassification(polygon *Polygon, msg string) {
	logs.WithTag("polygon", polygon.String()).
		WithTag("partition", b.PartitionPlane.String()).
		WithTag("normal", b.PartitionPlane.Normal().String()).
		Debug(msg)
}

// IsFront reports whether polygon lies entirely on or in front of the
// partition plane. The node must have been built with at least one polygon.
func (b *BspNode) IsFront(polygon *Polygon) bool {
	return b.plane.IsFront(polygon)
}

// IsBack reports whether polygon has no vertex strictly in front of the
// partition plane.
func (b *BspNode) IsBack(polygon *Polygon) bool {
	return b.plane.IsBack(polygon)
}

// SplitPolygon cuts polygon along the partition plane. See Plane.Split.
func (b *BspNode) SplitPolygon(polygon *Polygon) (front, back *Polygon) {
	return b.plane.Split(polygon)
}

// Traverse returns the tree's polygons in painter's order for a viewer at
// cameraPos: the subtree on the far side of each partition plane comes first,
// then the partition polygon, then the subtree on the viewer's side. Drawing
// the result in sequence needs no depth buffer.
//
// A camera exactly on a plane is treated as behind it.
func (b *BspNode) Traverse(cameraPos Vector3) []*Polygon {
	return b.traverse(cameraPos, nil)
}

// TraverseCamera orders for the camera's position. Its facing direction does
// not affect the order.
func (b *BspNode) TraverseCamera(cam Camera) []*Polygon {
	return b.Traverse(cam.Position)
}

func (b *BspNode) traverse(cameraPos Vector3, out []*Polygon) []*Polygon {
	if b == nil || b.PartitionPlane == nil {
		return out
	}

	if b.plane.SignedDistance(cameraPos) > 0 {
		out = b.Back.traverse(cameraPos, out)
		out = append(out, b.PartitionPlane)
		out = b.Front.traverse(cameraPos, out)
	} else {
		out = b.Front.traverse(cameraPos, out)
		out = append(out, b.PartitionPlane)
		out = b.Back.traverse(cameraPos, out)
	}
	return out
}

func (b *BspNode) Stats() TreeStats {
	if b == nil || b.PartitionPlane == nil {
		return TreeStats{}
	}

	front := b.Front.Stats()
	back := b.Back.Stats()

	return TreeStats{
		Nodes:    1 + front.Nodes + back.Nodes,
		Depth:    1 + max(front.Depth, back.Depth),
		Splits:   b.splits + front.Splits + back.Splits,
		Polygons: 1 + front.Polygons + back.Polygons,
	}
}

// Dump writes an indented description of the tree.
func (b *BspNode) Dump(w io.Writer) error {
	return b.dump(w, 0)
}

func (b *BspNode) dump(w io.Writer, indent int) error {
	prefix := strings.Repeat("    ", indent)

	if b.PartitionPlane == nil {
		_, err := fmt.Fprintf(w, "%sPartition Plane: <none>\n", prefix)
		return err
	}

	if _, err := fmt.Fprintf(w, "%sPartition Plane: %s normal: %s\n", prefix, b.PartitionPlane, b.PartitionPlane.Normal()); err != nil {
		return err
	}

	children := []struct {
		name string
		node *BspNode
	}{
		{"Front", b.Front},
		{"Back", b.Back},
	}
	for _, child := range children {
		if _, err := fmt.Fprintf(w, "%s%s:\n", prefix, child.name); err != nil {
			return err
		}
		if child.node == nil {
			if _, err := fmt.Fprintf(w, "%s    (Empty)\n", prefix); err != nil {
				return err
			}
			continue
		}
		if err := child.node.dump(w, indent+1); err != nil {
			return err
		}
	}
	return nil
}
