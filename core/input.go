package core

// InputSample is the instantaneous control state read once per tick
type InputSample struct {
	Up, Down, Left, Right bool
	// Confirm starts a session from the menu and acknowledges victory
	Confirm bool
}

// Direction returns the summed intent vector components, each in {-1, 0, 1}
func (in InputSample) Direction() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}
