package gosiebsp

import "image/color"

// Box returns the six faces of an axis-aligned cube. Each face is wound so its
// normal points out of the cube.
func Box(center Vector3, size float64, col color.RGBA) []*Polygon {
	h := size / 2
	corner := func(x, y, z float64) Vector3 {
		return center.Add(NewVector3(x*h, y*h, z*h))
	}

	faces := [][4]Vector3{
		{corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1)},
		{corner(-1, -1, -1), corner(-1, 1, -1), corner(1, 1, -1), corner(1, -1, -1)},
		{corner(1, -1, -1), corner(1, 1, -1), corner(1, 1, 1), corner(1, -1, 1)},
		{corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, 1), corner(-1, 1, -1)},
		{corner(-1, 1, -1), corner(-1, 1, 1), corner(1, 1, 1), corner(1, 1, -1)},
		{corner(-1, -1, -1), corner(1, -1, -1), corner(1, -1, 1), corner(-1, -1, 1)},
	}

	polygons := make([]*Polygon, 0, len(faces))
	for _, f := range faces {
		polygons = append(polygons, MustPolygon(f[:]...).WithColor(col))
	}
	return polygons
}

// DemoBoxes is two overlapping boxes, so building their tree splits faces.
func DemoBoxes() []*Polygon {
	red := color.RGBA{R: 220, G: 60, B: 60, A: 255}
	green := color.RGBA{R: 60, G: 200, B: 90, A: 255}

	polygons := Box(NewVector3(-0.4, 0, 0), 1, red)
	return append(polygons, Box(NewVector3(0.4, 0.2, -0.4), 1, green)...)
}
