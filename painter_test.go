package gosiebsp

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaintPolygonsKeepsOrder(t *testing.T) {
	cam := DefaultCamera()
	vp := Viewport{Width: 1000, Height: 800}

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	far := triangleAtZ(-3).WithColor(red)
	near := triangleAtZ(0).WithColor(blue)
	behind := triangleAtZ(8)

	var b recordingBatcher
	painted := PaintPolygons(&b, []*Polygon{far, behind, near}, cam, vp, PaintStyle{})

	require.Equal(t, 2, painted)
	require.Len(t, b.calls, 2)
	require.Equal(t, "outline", b.calls[0].kind)
	require.Equal(t, red, b.calls[0].stroke)
	require.Equal(t, blue, b.calls[1].stroke)
	require.Equal(t, float32(1), b.calls[1].strokeWidth)

	require.Len(t, b.calls[1].xp, 3)
	require.InDelta(t, 500, b.calls[1].xp[0], 1e-3)
	require.InDelta(t, 400, b.calls[1].yp[0], 1e-3)
}

func TestPaintPolygonsStyles(t *testing.T) {
	cam := DefaultCamera()
	vp := Viewport{Width: 1000, Height: 800}
	p := triangleAtZ(0)

	testCases := []struct {
		name     string
		style    PaintStyle
		wantKind string
	}{
		{"outline only", PaintStyle{}, "outline"},
		{"fill", PaintStyle{Fill: true}, "fill+outline"},
		{"fill without outline", PaintStyle{Fill: true, NoOutline: true}, "fill"},
		{"no outline alone changes nothing", PaintStyle{NoOutline: true}, "outline"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var b recordingBatcher
			require.Equal(t, 1, PaintPolygons(&b, []*Polygon{p}, cam, vp, tc.style))
			require.Equal(t, tc.wantKind, b.calls[0].kind)
		})
	}
}

func TestPaintPolygonsStrokeWidth(t *testing.T) {
	var b recordingBatcher
	PaintPolygons(&b, []*Polygon{triangleAtZ(0)}, DefaultCamera(), Viewport{Width: 100, Height: 100}, PaintStyle{StrokeWidth: 3})
	require.Equal(t, float32(3), b.calls[0].strokeWidth)
}

func TestFlatShade(t *testing.T) {
	cam := DefaultCamera()

	facing := MustPolygon(v3(-1, -1, 0), v3(1, -1, 0), v3(1, 1, 0), v3(-1, 1, 0))
	lit := FlatShade(facing, cam)
	require.InDelta(t, 180, lit.R, 1)
	require.InDelta(t, 180, lit.G, 1)
	require.Equal(t, uint8(255), lit.A)

	edgeOn := MustPolygon(v3(0, -1, -1), v3(0, 1, -1), v3(0, 0, 1))
	dark := FlatShade(edgeOn, cam)
	require.Equal(t, color.RGBA{R: 96, G: 96, B: 96, A: 255}, dark)

	black := facing.WithColor(color.RGBA{A: 255})
	require.Equal(t, color.RGBA{R: 7, G: 7, B: 7, A: 255}, FlatShade(black, cam.Yaw(2)))
}

func TestPaintPolygonsShading(t *testing.T) {
	cam := DefaultCamera()
	edgeOn := MustPolygon(v3(0, -1, -1), v3(0, 1, -1), v3(0, 0, 1))

	var b recordingBatcher
	PaintPolygons(&b, []*Polygon{edgeOn}, cam, Viewport{Width: 1000, Height: 800}, PaintStyle{Fill: true, Shading: true})
	require.Equal(t, FlatShade(edgeOn, cam), b.calls[0].fill)
	require.Equal(t, fillOutlineColor, b.calls[0].stroke)
}
