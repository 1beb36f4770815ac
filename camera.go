package gosiebsp

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	minFov = 1.0
	maxFov = 179.0
)

// Camera is the per-frame view state. It is a value: every movement returns a
// new Camera and leaves the receiver untouched, so one frame's camera can be
// handed to the renderer while input builds the next.
type Camera struct {
	Position Vector3
	Front    Vector3
	Up       Vector3
	// Fov is the vertical field of view in degrees.
	Fov  float64
	Near float64
	Far  float64
}

func DefaultCamera() Camera {
	return Camera{
		Position: NewVector3(0, 0, 5),
		Front:    NewVector3(0, 0, -1),
		Up:       NewVector3(0, 1, 0),
		Fov:      90,
		Near:     0.1,
		Far:      50,
	}
}

// Right is the normalised front × up.
func (c Camera) Right() Vector3 {
	return c.Front.Cross(c.Up).Normalize()
}

func (c Camera) MoveForward(d float64) Camera {
	c.Position = c.Position.Add(c.Front.Scale(d))
	return c
}

func (c Camera) MoveRight(d float64) Camera {
	c.Position = c.Position.Add(c.Front.Cross(c.Up).Scale(d))
	return c
}

func (c Camera) MoveUp(d float64) Camera {
	c.Position = c.Position.Add(c.Up.Scale(d))
	return c
}

// Pitch turns front and up about the right axis. Positive looks up.
func (c Camera) Pitch(angle float64) Camera {
	right := c.Right()
	c.Front = rotateAroundAxis(c.Front, right, angle)
	c.Up = rotateAroundAxis(c.Up, right, angle)
	return c
}

// Yaw turns front about up. Positive turns left.
func (c Camera) Yaw(angle float64) Camera {
	c.Front = rotateAroundAxis(c.Front, c.Up, angle)
	return c
}

// Roll turns up about front.
func (c Camera) Roll(angle float64) Camera {
	c.Up = rotateAroundAxis(c.Up, c.Front, angle)
	return c
}

// WithFov sets the field of view, clamped to [1, 179] degrees.
func (c Camera) WithFov(fov float64) Camera {
	c.Fov = math.Max(minFov, math.Min(maxFov, fov))
	return c
}

func (c Camera) AdjustFov(delta float64) Camera {
	return c.WithFov(c.Fov + delta)
}

// Orientation returns pitch, yaw and roll in degrees.
func (c Camera) Orientation() (pitch, yaw, roll float64) {
	front := c.Front.Normalize()
	up := c.Up.Normalize()
	pitch = mgl64.RadToDeg(math.Asin(-front.Y))
	yaw = mgl64.RadToDeg(math.Atan2(front.X, front.Z))
	roll = mgl64.RadToDeg(math.Atan2(up.X, up.Y))
	return pitch, yaw, roll
}

// InFront reports whether p is strictly ahead of the camera.
func (c Camera) InFront(p Vector3) bool {
	return c.Front.Dot(p.Sub(c.Position)) > 0
}

func rotateAroundAxis(v, axis Vector3, angle float64) Vector3 {
	if axis.IsZero() {
		return v
	}
	q := mgl64.QuatRotate(angle, axis.Normalize().Vec3())
	return Vector3FromVec3(q.Rotate(v.Vec3()))
}
