package floor

import (
	"fmt"

	"github.com/jerryland3/ElevatorSimulation/internal/passenger"
	"github.com/jerryland3/ElevatorSimulation/internal/simconsts"
)

// Floor holds the two passenger collections for one level of the
// building: the waiting queue in arrival order and the append-only
// delivered list. Transfers in and out are explicit moves, a passenger
// is never present in both collections.
type Floor struct {
	number    int
	waiting   []*passenger.Passenger
	delivered []*passenger.Passenger
}

func New(number int) (*Floor, error) {
	if number < 1 || number > simconsts.MaxFloors {
		return nil, fmt.Errorf("floor number %d outside [1, %d]: %w", number, simconsts.MaxFloors, simconsts.ErrInvalidConfiguration)
	}
	return &Floor{number: number}, nil
}

func (f *Floor) Number() int { return f.number }

// AddWaiting appends to the waiting queue. Called only by the building
// during intake.
func (f *Floor) AddWaiting(p *passenger.Passenger) {
	f.waiting = append(f.waiting, p)
}

func (f *Floor) HasWaiting() bool { return len(f.waiting) > 0 }

func (f *Floor) WaitingCount() int { return len(f.waiting) }

func (f *Floor) HasWaitingToward(direction simconsts.Direction) bool {
	for _, p := range f.waiting {
		if p.Direction() == direction {
			return true
		}
	}
	return false
}

// TakeWaitingToward removes and returns up to max passengers heading in
// the given direction, preserving arrival order among those left
// behind.
func (f *Floor) TakeWaitingToward(direction simconsts.Direction, max int) []*passenger.Passenger {
	if max <= 0 {
		return nil
	}

	var taken []*passenger.Passenger
	remaining := f.waiting[:0]
	for _, p := range f.waiting {
		if p.Direction() == direction && len(taken) < max {
			taken = append(taken, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	f.waiting = remaining
	return taken
}

func (f *Floor) AddDelivered(p *passenger.Passenger) {
	f.delivered = append(f.delivered, p)
}

func (f *Floor) Delivered() []*passenger.Passenger { return f.delivered }
