package gosiebsp

import (
	"math"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewPolygon(t *testing.T) {
	testCases := []struct {
		name       string
		vertices   []Vector3
		wantNormal Vector3
		wantErr    bool
	}{
		{
			name:       "unit triangle",
			vertices:   []Vector3{v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, 0)},
			wantNormal: v3(0, 0, 1),
		},
		{
			name:       "reversed winding flips the normal",
			vertices:   []Vector3{v3(0, 0, 0), v3(0, 1, 0), v3(1, 0, 0)},
			wantNormal: v3(0, 0, -1),
		},
		{
			name:       "normal is not normalised",
			vertices:   []Vector3{v3(0, 0, 0), v3(2, 0, 0), v3(0, 3, 0), v3(-1, 1, 0)},
			wantNormal: v3(0, 0, 6),
		},
		{
			name:       "collinear start gives a zero normal",
			vertices:   []Vector3{v3(0, 0, 0), v3(1, 1, 1), v3(2, 2, 2)},
			wantNormal: Vector3{},
		},
		{
			name:     "two vertices",
			vertices: []Vector3{v3(0, 0, 0), v3(1, 0, 0)},
			wantErr:  true,
		},
		{
			name:    "no vertices",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPolygon(tc.vertices)
			if tc.wantErr {
				require.Error(t, err)
				require.Equal(t, ErrTypeInvalidGeometry, errors.Type(err))
				require.Nil(t, p)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantNormal, p.Normal())
			require.Equal(t, tc.wantNormal.IsZero(), p.IsDegenerate())
			require.Equal(t, len(tc.vertices), p.VertexCount())
		})
	}
}

func TestPolygonIsImmutable(t *testing.T) {
	vertices := []Vector3{v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, 0)}
	p, err := NewPolygon(vertices)
	require.NoError(t, err)

	vertices[0] = v3(9, 9, 9)
	require.Equal(t, v3(0, 0, 0), p.Vertex(0))

	got := p.Vertices()
	got[1] = v3(9, 9, 9)
	require.Equal(t, v3(1, 0, 0), p.Vertex(1))

	red := p.WithColor(MaterialPaint.AmbientColor)
	require.Equal(t, DefaultPolygonColor, p.Col)
	require.Equal(t, MaterialPaint.AmbientColor, red.Col)
}

func TestMustPolygonPanics(t *testing.T) {
	require.Panics(t, func() {
		MustPolygon(v3(0, 0, 0))
	})
}

func TestPolygonMeasures(t *testing.T) {
	square := MustPolygon(v3(0, 0, 0), v3(2, 0, 0), v3(2, 2, 0), v3(0, 2, 0))

	require.Equal(t, v3(1, 1, 0), square.MidPoint())
	require.InDelta(t, 4, square.Area(), 1e-12)
	require.InDelta(t, 5, square.DistanceTo(v3(1, 1, 5)), 1e-12)

	tilted := MustPolygon(v3(0, 0, 0), v3(1, 0, 1), v3(0, 1, 0))
	require.InDelta(t, math.Sqrt2/2, tilted.Area(), 1e-12)
}

func TestPolygonString(t *testing.T) {
	p := MustPolygon(v3(0, 0, 0), v3(1.5, 0, -2), v3(0, 1, 0))
	require.Equal(t, "[(0, 0, 0), (1.5, 0, -2), (0, 1, 0)]", p.String())
}
