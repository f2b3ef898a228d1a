package simconsts

import "errors"

const (
	// MaxFloors bounds the configurable building height.
	MaxFloors = 100

	DefaultCapacity  = 8
	DefaultStopDwell = 2
)

// Error kinds surfaced by the simulation. Construction-time problems
// wrap ErrInvalidConfiguration; a lost or duplicated passenger at the
// end of a run wraps ErrInvariantViolation; a run cut short by the
// tick budget wraps ErrTickBudgetExceeded.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvariantViolation   = errors.New("invariant violation")
	ErrTickBudgetExceeded   = errors.New("tick budget exceeded")
)

type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Undefined"
	}
}

type ElevatorState int

const (
	Stopped ElevatorState = iota // 0
	Stopping
	MovingUp
	MovingDown
)

func (s ElevatorState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Stopping:
		return "Stopping"
	case MovingUp:
		return "MovingUp"
	case MovingDown:
		return "MovingDown"
	default:
		return "Undefined"
	}
}
