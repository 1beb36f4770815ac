package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/smasonuk/gosiebsp"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// screenBatcher draws polygons onto an ebiten image as soon as they arrive.
type screenBatcher struct {
	screen *ebiten.Image
}

var _ gosiebsp.PolygonBatcher = screenBatcher{}

func (b screenBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	fillConvexPolygon(b.screen, xp, yp, clr)
}

func (b screenBatcher) AddOutline(xp, yp []float32, clr color.RGBA, strokeWidth float32) {
	drawPolygonOutline(b.screen, xp, yp, strokeWidth, clr)
}

func (b screenBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	fillConvexPolygon(b.screen, xp, yp, fillClr)
	drawPolygonOutline(b.screen, xp, yp, strokeWidth, strokeClr)
}

func colorScale(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255, float32(clr.G) / 255, float32(clr.B) / 255, float32(clr.A) / 255
}

// fillConvexPolygon draws a triangle fan around the first point.
func fillConvexPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	cr, cg, cb, ca := colorScale(clr)
	vertices := make([]ebiten.Vertex, len(xp))
	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawPolygonOutline strokes the closed path through the points.
func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width: strokeWidth,
	})

	cr, cg, cb, ca := colorScale(clr)
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var (
	axisX = color.RGBA{R: 255, A: 255}
	axisY = color.RGBA{G: 255, A: 255}
	axisZ = color.RGBA{B: 255, A: 255}
)

const axisLength = 0.8

// drawAxes draws the world axes from the origin. An axis whose end is behind
// the camera is left out; nothing is drawn when the origin is.
func drawAxes(screen *ebiten.Image, projector gosiebsp.Projector) {
	origin, ok := projector.Project(gosiebsp.Vector3{})
	if !ok {
		return
	}

	axes := []struct {
		end gosiebsp.Vector3
		clr color.RGBA
	}{
		{gosiebsp.NewVector3(axisLength, 0, 0), axisX},
		{gosiebsp.NewVector3(0, axisLength, 0), axisY},
		{gosiebsp.NewVector3(0, 0, axisLength), axisZ},
	}
	for _, a := range axes {
		end, ok := projector.Project(a.end)
		if !ok {
			continue
		}
		x0, y0 := origin.Float32()
		x1, y1 := end.Float32()
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, a.clr, true)
	}
}
