package passenger

import (
	"fmt"

	"github.com/jerryland3/ElevatorSimulation/internal/simconsts"
)

// Passenger is the unit of work flowing through the simulation. Its
// identity and intent are fixed at construction; the two timing fields
// are each written exactly once, by Board and Deliver.
type Passenger struct {
	id         int
	startTime  int
	startFloor int
	endFloor   int
	direction  simconsts.Direction

	waitTime   int
	travelTime int
	boarded    bool
	delivered  bool
}

func New(id, startTime, startFloor, endFloor, numFloors int) (*Passenger, error) {
	if startTime < 0 {
		return nil, fmt.Errorf("passenger %d: start time %d is negative: %w", id, startTime, simconsts.ErrInvalidConfiguration)
	}
	if startFloor < 1 || startFloor > numFloors {
		return nil, fmt.Errorf("passenger %d: start floor %d outside [1, %d]: %w", id, startFloor, numFloors, simconsts.ErrInvalidConfiguration)
	}
	if endFloor < 1 || endFloor > numFloors {
		return nil, fmt.Errorf("passenger %d: end floor %d outside [1, %d]: %w", id, endFloor, numFloors, simconsts.ErrInvalidConfiguration)
	}
	if startFloor == endFloor {
		return nil, fmt.Errorf("passenger %d: start and end floor are both %d: %w", id, startFloor, simconsts.ErrInvalidConfiguration)
	}

	direction := simconsts.Down
	if endFloor > startFloor {
		direction = simconsts.Up
	}

	return &Passenger{
		id:         id,
		startTime:  startTime,
		startFloor: startFloor,
		endFloor:   endFloor,
		direction:  direction,
	}, nil
}

func (p *Passenger) ID() int                        { return p.id }
func (p *Passenger) StartTime() int                 { return p.startTime }
func (p *Passenger) StartFloor() int                { return p.startFloor }
func (p *Passenger) EndFloor() int                  { return p.endFloor }
func (p *Passenger) Direction() simconsts.Direction { return p.direction }
func (p *Passenger) WaitTime() int                  { return p.waitTime }
func (p *Passenger) TravelTime() int                { return p.travelTime }
func (p *Passenger) Boarded() bool                  { return p.boarded }
func (p *Passenger) Delivered() bool                { return p.delivered }

// Board records the wait time. Calling it twice is a scheduling bug.
func (p *Passenger) Board(currentTime int) error {
	if p.boarded {
		return fmt.Errorf("passenger %d boarded twice: %w", p.id, simconsts.ErrInvariantViolation)
	}
	p.waitTime = currentTime - p.startTime
	p.boarded = true
	return nil
}

// Deliver records the travel time. The dwell spent stopped before the
// disembark tick is charged to travel time.
func (p *Passenger) Deliver(currentTime int) error {
	if !p.boarded {
		return fmt.Errorf("passenger %d delivered without boarding: %w", p.id, simconsts.ErrInvariantViolation)
	}
	if p.delivered {
		return fmt.Errorf("passenger %d delivered twice: %w", p.id, simconsts.ErrInvariantViolation)
	}
	p.travelTime = currentTime - (p.startTime + p.waitTime)
	p.delivered = true
	return nil
}
