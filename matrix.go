package gosiebsp

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Viewport is the size of the target surface in pixels.
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// ViewMatrix maps world space into the camera's eye space.
func ViewMatrix(cam Camera) mgl64.Mat4 {
	eye := cam.Position.Vec3()
	return mgl64.LookAtV(eye, eye.Add(cam.Front.Vec3()), cam.Up.Vec3())
}

func ProjectionMatrix(cam Camera, vp Viewport) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(cam.Fov), vp.Aspect(), cam.Near, cam.Far)
}

// Projector caches the combined view and projection matrices of one frame.
type Projector struct {
	cam      Camera
	viewport Viewport
	mvp      mgl64.Mat4
}

func NewProjector(cam Camera, vp Viewport) Projector {
	return Projector{
		cam:      cam,
		viewport: vp,
		mvp:      ProjectionMatrix(cam, vp).Mul4(ViewMatrix(cam)),
	}
}

// Project maps p to screen coordinates. ok is false when p is not strictly in
// front of the camera.
func (pr Projector) Project(p Vector3) (Vector2, bool) {
	if !pr.cam.InFront(p) {
		return Vector2{}, false
	}

	clip := pr.mvp.Mul4x1(p.Vec3().Vec4(1))
	w := clip.W()
	if w == 0 {
		w = 0.001
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w

	return Vector2{
		X: (ndcX + 1) * 0.5 * float64(pr.viewport.Width),
		Y: (1 - ndcY) * 0.5 * float64(pr.viewport.Height),
	}, true
}

// ProjectPolygon projects every vertex. A polygon with any vertex behind the
// camera is not projected at all.
func (pr Projector) ProjectPolygon(p *Polygon) ([]Vector2, bool) {
	points := make([]Vector2, 0, len(p.vertices))
	for _, v := range p.vertices {
		sp, ok := pr.Project(v)
		if !ok {
			return nil, false
		}
		points = append(points, sp)
	}
	return points, true
}

// ProjectPoint is a one-off Project.
func ProjectPoint(p Vector3, cam Camera, vp Viewport) (Vector2, bool) {
	return NewProjector(cam, vp).Project(p)
}
