package gosiebsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaneClassify(t *testing.T) {
	plane := NewPlane(triangleAtZ(0))

	testCases := []struct {
		name    string
		polygon *Polygon
		want    Side
	}{
		{"front", triangleAtZ(1), SideFront},
		{"back", triangleAtZ(-1), SideBack},
		{"straddling", MustPolygon(v3(0, 0, 1), v3(1, 0, 1), v3(0, 1, -1)), SideStraddling},
		{"coplanar is front", triangleAtZ(0), SideFront},
		{"zero and negative is back", MustPolygon(v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, -1)), SideBack},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, plane.Classify(tc.polygon))
		})
	}
}

func TestPlaneSignedDistanceUsesUnnormalisedNormal(t *testing.T) {
	big := MustPolygon(v3(0, 0, 0), v3(2, 0, 0), v3(0, 2, 0))
	plane := NewPlane(big)

	require.Equal(t, v3(0, 0, 4), plane.Normal)
	require.Equal(t, 4.0, plane.SignedDistance(v3(5, 5, 1)))
	require.Equal(t, -8.0, plane.SignedDistance(v3(0, 0, -2)))
}

func TestPlaneSplitVertexOnPlane(t *testing.T) {
	plane := NewPlane(triangleAtZ(0))
	triangle := MustPolygon(v3(0, 0, 1), v3(1, 0, 0), v3(0, 1, -1))

	front, back := plane.Split(triangle)
	require.NotNil(t, front)
	require.NotNil(t, back)

	require.Equal(t, []Vector3{v3(0, 0, 1), v3(1, 0, 0), v3(0, 0.5, 0)}, front.Vertices())
	require.Equal(t, []Vector3{v3(1, 0, 0), v3(0, 1, -1), v3(0, 0.5, 0)}, back.Vertices())
	require.InDelta(t, triangle.Area(), front.Area()+back.Area(), 1e-12)
}

func TestPlaneSplitWithoutCrossing(t *testing.T) {
	plane := NewPlane(triangleAtZ(0))

	testCases := []struct {
		name    string
		polygon *Polygon
	}{
		{"all front", triangleAtZ(2)},
		{"all back", triangleAtZ(-2)},
		{"touching from the front", MustPolygon(v3(0, 0, 0), v3(1, 0, 1), v3(0, 1, 1))},
		{"coplanar", triangleAtZ(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			front, back := plane.Split(tc.polygon)
			require.Nil(t, front)
			require.Nil(t, back)
		})
	}
}

func TestPlaneSplitIntersectionOnPlane(t *testing.T) {
	plane := NewPlane(MustPolygon(v3(0, 0, 0.25), v3(1, 0, 0.25), v3(0, 1, 0.25)))
	quad := MustPolygon(v3(-1, -1, -0.3), v3(1, -1, 0.7), v3(1, 1, 0.7), v3(-1, 1, -0.3))

	front, back := plane.Split(quad)
	require.NotNil(t, front)
	require.NotNil(t, back)

	var crossings int
	for _, v := range front.Vertices() {
		if almostEqual(v.Z, 0.25) {
			crossings++
		}
	}
	require.Equal(t, 2, crossings)
	require.InDelta(t, quad.Area(), front.Area()+back.Area(), 1e-9)
}

func TestSideString(t *testing.T) {
	require.Equal(t, "front", SideFront.String())
	require.Equal(t, "back", SideBack.String())
	require.Equal(t, "straddling", SideStraddling.String())
}
