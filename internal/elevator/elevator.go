package elevator

import (
	"fmt"

	"github.com/jerryland3/ElevatorSimulation/internal/floor"
	"github.com/jerryland3/ElevatorSimulation/internal/logger"
	"github.com/jerryland3/ElevatorSimulation/internal/passenger"
	"github.com/jerryland3/ElevatorSimulation/internal/simconsts"
)

var Log = logger.GetLogger()

// Elevator is the per-car SCAN state machine. It sweeps in its current
// direction until a shaft end forces a reversal, stopping where a
// boarded passenger disembarks or a same-direction passenger waits.
// It owns nothing beyond its own state and the boarded passengers; the
// floor collection is borrowed for the duration of each Update call.
type Elevator struct {
	id             int
	currentFloor   int
	direction      simconsts.Direction
	state          simconsts.ElevatorState
	nextActionTime int

	speed      int
	stopDwell  int
	capacity   int
	passengers []*passenger.Passenger
}

func New(id, speed, stopDwell, capacity int) (*Elevator, error) {
	if speed < 1 {
		return nil, fmt.Errorf("elevator %d: speed %d must be positive: %w", id, speed, simconsts.ErrInvalidConfiguration)
	}
	if stopDwell < 1 {
		return nil, fmt.Errorf("elevator %d: stop dwell %d must be positive: %w", id, stopDwell, simconsts.ErrInvalidConfiguration)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("elevator %d: capacity %d must be positive: %w", id, capacity, simconsts.ErrInvalidConfiguration)
	}

	return &Elevator{
		id:           id,
		currentFloor: 1,
		direction:    simconsts.Up,
		state:        simconsts.Stopped,
		speed:        speed,
		stopDwell:    stopDwell,
		capacity:     capacity,
	}, nil
}

func (e *Elevator) ID() int                        { return e.id }
func (e *Elevator) CurrentFloor() int              { return e.currentFloor }
func (e *Elevator) Direction() simconsts.Direction { return e.direction }
func (e *Elevator) State() simconsts.ElevatorState { return e.state }
func (e *Elevator) PassengerCount() int            { return len(e.passengers) }

func (e *Elevator) HasPassengers() bool {
	return len(e.passengers) > 0
}

// Update advances the state machine by one tick. The scheduler calls it
// exactly once per elevator per tick; every transition is gated on
// nextActionTime, so the tick itself carries no state.
func (e *Elevator) Update(currentTime, numFloors int, floors []*floor.Floor) {
	switch e.state {
	case simconsts.Stopped:
		// a shaft end only has one way out, flip before the pickup
		// pass so a passenger waiting the "wrong" way still boards
		if e.currentFloor == 1 {
			e.direction = simconsts.Up
		} else if e.currentFloor == numFloors {
			e.direction = simconsts.Down
		}

		currentFloor := floors[e.currentFloor-1]
		e.dropOffPassengers(currentFloor, currentTime)
		e.pickUpPassengers(currentFloor, currentTime)

		// keep sweeping only while the building has work left;
		// a quiescent building leaves the car parked here
		if !e.workPending(floors) {
			break
		}
		if e.direction == simconsts.Up && e.currentFloor != numFloors {
			e.state = simconsts.MovingUp
			e.nextActionTime = currentTime + e.speed
		} else if e.direction == simconsts.Down && e.currentFloor != 1 {
			e.state = simconsts.MovingDown
			e.nextActionTime = currentTime + e.speed
		}

	case simconsts.Stopping:
		if currentTime >= e.nextActionTime {
			e.state = simconsts.Stopped
		}

	case simconsts.MovingUp, simconsts.MovingDown:
		if currentTime < e.nextActionTime {
			break
		}

		if e.state == simconsts.MovingUp {
			e.currentFloor++
		} else {
			e.currentFloor--
		}

		if e.currentFloor == numFloors {
			e.direction = simconsts.Down
		} else if e.currentFloor == 1 {
			e.direction = simconsts.Up
		}

		if e.shouldStopAtFloor(floors[e.currentFloor-1]) {
			e.state = simconsts.Stopping
			// the STOPPED tick that processes passengers consumes
			// one unit of the dwell
			e.nextActionTime = currentTime + e.stopDwell - 1
		} else {
			if e.direction == simconsts.Up {
				e.state = simconsts.MovingUp
			} else {
				e.state = simconsts.MovingDown
			}
			e.nextActionTime = currentTime + e.speed
		}
	}
}

func (e *Elevator) shouldStopAtFloor(f *floor.Floor) bool {
	for _, p := range e.passengers {
		if p.EndFloor() == f.Number() {
			return true
		}
	}

	if len(e.passengers) > e.capacity {
		return false
	}

	return f.HasWaitingToward(e.direction)
}

func (e *Elevator) pickUpPassengers(f *floor.Floor, currentTime int) {
	slots := e.capacity - len(e.passengers)
	if slots <= 0 {
		return
	}

	for _, p := range f.TakeWaitingToward(e.direction, slots) {
		if err := p.Board(currentTime); err != nil {
			Log.Error().Msgf("Elevator %d: %v", e.id, err)
			continue
		}
		e.passengers = append(e.passengers, p)
	}
}

func (e *Elevator) dropOffPassengers(f *floor.Floor, currentTime int) {
	kept := e.passengers[:0]
	for _, p := range e.passengers {
		if p.EndFloor() != f.Number() {
			kept = append(kept, p)
			continue
		}
		if err := p.Deliver(currentTime); err != nil {
			Log.Error().Msgf("Elevator %d: %v", e.id, err)
		}
		f.AddDelivered(p)
	}
	e.passengers = kept
}

// workPending reports whether anything in the building still needs this
// car to move: boarded passengers, or a waiting passenger anywhere.
// Direction never flips mid-shaft, so work "behind" the car is reached
// by sweeping on to the shaft end and coming back.
func (e *Elevator) workPending(floors []*floor.Floor) bool {
	if len(e.passengers) > 0 {
		return true
	}
	for _, f := range floors {
		if f.HasWaiting() {
			return true
		}
	}
	return false
}
