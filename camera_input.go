package gosiebsp

// CameraInput is the set of held movement keys for one frame.
type CameraInput struct {
	Forward, Back   bool
	Left, Right     bool
	Up, Down        bool
	PitchUp         bool
	PitchDown       bool
	YawLeft         bool
	YawRight        bool
	RollLeft        bool
	RollRight       bool
	ZoomIn, ZoomOut bool
}

// Apply moves and turns the camera for one frame of held keys. Translation is
// applied before rotation; zooming changes the field of view by one degree.
func (c Camera) Apply(in CameraInput, moveSpeed, rotateSpeed float64) Camera {
	if in.Forward {
		c = c.MoveForward(moveSpeed)
	}
	if in.Back {
		c = c.MoveForward(-moveSpeed)
	}
	if in.Left {
		c = c.MoveRight(-moveSpeed)
	}
	if in.Right {
		c = c.MoveRight(moveSpeed)
	}
	if in.Up {
		c = c.MoveUp(moveSpeed)
	}
	if in.Down {
		c = c.MoveUp(-moveSpeed)
	}

	if in.PitchDown {
		c = c.Pitch(-rotateSpeed)
	}
	if in.PitchUp {
		c = c.Pitch(rotateSpeed)
	}
	if in.YawRight {
		c = c.Yaw(-rotateSpeed)
	}
	if in.YawLeft {
		c = c.Yaw(rotateSpeed)
	}
	if in.RollRight {
		c = c.Roll(rotateSpeed)
	}
	if in.RollLeft {
		c = c.Roll(-rotateSpeed)
	}

	if in.ZoomIn {
		c = c.AdjustFov(-1)
	}
	if in.ZoomOut {
		c = c.AdjustFov(1)
	}
	return c
}

// IsZero reports whether no key is held.
func (in CameraInput) IsZero() bool {
	return in == CameraInput{}
}
