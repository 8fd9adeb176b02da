package cubefall

// Direction is the horizontal move requested for one frame
type Direction int8

const (
	DIRECTION_NONE Direction = iota
	DIRECTION_LEFT
	DIRECTION_RIGHT
)

// Sign returns -1 for left, +1 for right and 0 otherwise
func (d Direction) Sign() float64 {
	switch d {
	case DIRECTION_LEFT:
		return -1
	case DIRECTION_RIGHT:
		return 1
	}
	return 0
}

func (d Direction) String() string {
	switch d {
	case DIRECTION_LEFT:
		return "left"
	case DIRECTION_RIGHT:
		return "right"
	}
	return "none"
}

// Input is a snapshot of the move keys held during a frame
type Input struct {
	Left  bool
	Right bool
}

// Direction resolves the held keys. Left wins when both are held.
func (i Input) Direction() Direction {
	if i.Left {
		return DIRECTION_LEFT
	} else if i.Right {
		return DIRECTION_RIGHT
	}
	return DIRECTION_NONE
}
