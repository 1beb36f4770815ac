package gosiebsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVectorInDelta(t *testing.T, want, got Vector3) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-9, "x of %s", got)
	require.InDelta(t, want.Y, got.Y, 1e-9, "y of %s", got)
	require.InDelta(t, want.Z, got.Z, 1e-9, "z of %s", got)
}

func TestCameraMovement(t *testing.T) {
	cam := DefaultCamera()

	testCases := []struct {
		name string
		move func(Camera) Camera
		want Vector3
	}{
		{"forward", func(c Camera) Camera { return c.MoveForward(1) }, v3(0, 0, 4)},
		{"back", func(c Camera) Camera { return c.MoveForward(-2) }, v3(0, 0, 7)},
		{"right", func(c Camera) Camera { return c.MoveRight(1) }, v3(1, 0, 5)},
		{"left", func(c Camera) Camera { return c.MoveRight(-0.5) }, v3(-0.5, 0, 5)},
		{"up", func(c Camera) Camera { return c.MoveUp(3) }, v3(0, 3, 5)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			moved := tc.move(cam)
			requireVectorInDelta(t, tc.want, moved.Position)
			require.Equal(t, DefaultCamera(), cam)
		})
	}
}

func TestCameraRotation(t *testing.T) {
	cam := DefaultCamera()

	pitched := cam.Pitch(math.Pi / 2)
	requireVectorInDelta(t, v3(0, 1, 0), pitched.Front)
	requireVectorInDelta(t, v3(0, 0, 1), pitched.Up)

	yawed := cam.Yaw(math.Pi / 2)
	requireVectorInDelta(t, v3(-1, 0, 0), yawed.Front)
	requireVectorInDelta(t, v3(0, 1, 0), yawed.Up)

	rolled := cam.Roll(math.Pi / 2)
	requireVectorInDelta(t, v3(0, 0, -1), rolled.Front)
	requireVectorInDelta(t, v3(1, 0, 0), rolled.Up)

	require.Equal(t, DefaultCamera(), cam)
}

func TestCameraFovIsClamped(t *testing.T) {
	cam := DefaultCamera()

	require.Equal(t, 60.0, cam.WithFov(60).Fov)
	require.Equal(t, 1.0, cam.WithFov(0).Fov)
	require.Equal(t, 179.0, cam.WithFov(400).Fov)
	require.Equal(t, 91.0, cam.AdjustFov(1).Fov)
	require.Equal(t, 179.0, cam.WithFov(179).AdjustFov(1).Fov)
}

func TestCameraOrientation(t *testing.T) {
	pitch, yaw, roll := DefaultCamera().Orientation()
	require.InDelta(t, 0, pitch, 1e-9)
	require.InDelta(t, 180, math.Abs(yaw), 1e-9)
	require.InDelta(t, 0, roll, 1e-9)

	pitch, _, _ = DefaultCamera().Pitch(-math.Pi / 4).Orientation()
	require.InDelta(t, 45, pitch, 1e-9)
}

func TestCameraInFront(t *testing.T) {
	cam := DefaultCamera()
	require.True(t, cam.InFront(v3(0, 0, 0)))
	require.True(t, cam.InFront(v3(100, 100, 4.9)))
	require.False(t, cam.InFront(v3(0, 0, 5)))
	require.False(t, cam.InFront(v3(0, 0, 6)))
}

func TestCameraApply(t *testing.T) {
	cam := DefaultCamera()

	require.Equal(t, cam, cam.Apply(CameraInput{}, 0.1, 0.1))
	require.True(t, CameraInput{}.IsZero())

	moved := cam.Apply(CameraInput{Forward: true, Right: true, Up: true}, 0.5, 0.1)
	requireVectorInDelta(t, v3(0.5, 0.5, 4.5), moved.Position)

	cancelled := cam.Apply(CameraInput{Forward: true, Back: true, YawLeft: true, YawRight: true}, 0.5, 0.1)
	requireVectorInDelta(t, cam.Position, cancelled.Position)
	requireVectorInDelta(t, cam.Front, cancelled.Front)

	zoomed := cam.Apply(CameraInput{ZoomIn: true}, 0.5, 0.1)
	require.Equal(t, 89.0, zoomed.Fov)

	turned := cam.Apply(CameraInput{YawLeft: true}, 0, math.Pi/2)
	requireVectorInDelta(t, v3(-1, 0, 0), turned.Front)
}
