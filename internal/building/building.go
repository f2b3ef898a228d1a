package building

import (
	"fmt"

	"github.com/jerryland3/ElevatorSimulation/internal/elevator"
	"github.com/jerryland3/ElevatorSimulation/internal/floor"
	"github.com/jerryland3/ElevatorSimulation/internal/intake"
	"github.com/jerryland3/ElevatorSimulation/internal/logger"
	"github.com/jerryland3/ElevatorSimulation/internal/passenger"
	"github.com/jerryland3/ElevatorSimulation/internal/simconfig"
	"github.com/jerryland3/ElevatorSimulation/internal/simconsts"
	"github.com/jerryland3/ElevatorSimulation/internal/simevent"
	"github.com/jerryland3/ElevatorSimulation/internal/stats"
)

var Log = logger.GetLogger()

// Building owns every entity of one run: the floors, the elevators,
// the intake queue of not-yet-arrived passengers and the global tick
// counter. Elevators see the floors only through the per-tick Update
// call; nothing retains cross-tick references into another entity.
type Building struct {
	config      simconfig.Config
	currentTime int

	intakeQueue []*passenger.Passenger
	floors      []*floor.Floor
	elevators   []*elevator.Elevator

	waitTimeStat   *stats.Statistic
	travelTimeStat *stats.Statistic

	totalPassengers int
	observer        func(simevent.SimulationEvent)
}

// Result is the outcome of one run. Completed is false when the tick
// budget ran out before the building went quiescent.
type Result struct {
	MeanWaitTime   float64
	MeanTravelTime float64
	Total          int
	Delivered      int
	Ticks          int
	Completed      bool
}

func New(config simconfig.Config, records []intake.Record) (*Building, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config = config.Clone()

	floors := make([]*floor.Floor, config.Floors)
	for i := range floors {
		f, err := floor.New(i + 1)
		if err != nil {
			return nil, err
		}
		floors[i] = f
	}

	elevators := make([]*elevator.Elevator, config.Elevators)
	for i := range elevators {
		e, err := elevator.New(i, config.SpeedTicksPerFloor, config.StopDwellTicks, config.Capacity)
		if err != nil {
			return nil, err
		}
		elevators[i] = e
	}

	intakeQueue := make([]*passenger.Passenger, 0, len(records))
	for i, record := range records {
		p, err := passenger.New(i+1, record.StartTime, record.StartFloor, record.EndFloor, config.Floors)
		if err != nil {
			return nil, err
		}
		intakeQueue = append(intakeQueue, p)
	}

	return &Building{
		config:          config,
		intakeQueue:     intakeQueue,
		floors:          floors,
		elevators:       elevators,
		waitTimeStat:    stats.New(),
		travelTimeStat:  stats.New(),
		totalPassengers: len(intakeQueue),
	}, nil
}

// SetObserver installs a trace hook. Must be called before Run.
func (b *Building) SetObserver(observer func(simevent.SimulationEvent)) {
	b.observer = observer
}

func (b *Building) CurrentTime() int { return b.currentTime }

// Run drives the simulation to quiescence, then aggregates statistics
// and verifies that no passenger was lost or duplicated on the way
// from intake to delivery.
func (b *Building) Run() (Result, error) {
	for !b.quiescent() {
		if b.config.MaxTicks > 0 && b.currentTime >= b.config.MaxTicks {
			Log.Warn().Msgf("Tick budget of %d exhausted with passengers still in flight", b.config.MaxTicks)
			result := b.collectStatistics(false)
			return result, fmt.Errorf("simulation incomplete after %d ticks: %w", b.currentTime, simconsts.ErrTickBudgetExceeded)
		}

		b.admitArrivals()

		for i, e := range b.elevators {
			if b.currentTime < b.config.ActivationOffset(i) {
				continue
			}
			floorBefore := e.CurrentFloor()
			stateBefore := e.State()
			e.Update(b.currentTime, b.config.Floors, b.floors)
			b.emitElevatorTransitions(e, floorBefore, stateBefore)
		}

		b.currentTime++
	}

	result := b.collectStatistics(true)
	if result.Delivered != result.Total {
		return result, fmt.Errorf("delivered %d of %d passengers: %w", result.Delivered, result.Total, simconsts.ErrInvariantViolation)
	}

	b.emit(simevent.SimulationDoneEvent{Tick: b.currentTime, Delivered: result.Delivered}.Wrap())
	return result, nil
}

// admitArrivals moves every passenger whose start time equals the
// current tick onto their start floor, preserving arrival order.
func (b *Building) admitArrivals() {
	for len(b.intakeQueue) > 0 && b.intakeQueue[0].StartTime() == b.currentTime {
		p := b.intakeQueue[0]
		b.intakeQueue = b.intakeQueue[1:]
		b.floors[p.StartFloor()-1].AddWaiting(p)
		b.emit(simevent.PassengerArrivedEvent{Tick: b.currentTime, PassengerID: p.ID(), Floor: p.StartFloor()}.Wrap())
	}
}

// quiescent is the termination condition: nothing left to arrive,
// nobody waiting, nobody riding. Safe to evaluate at the top of the
// loop because the intake queue is populated at construction.
func (b *Building) quiescent() bool {
	if len(b.intakeQueue) > 0 {
		return false
	}
	for _, f := range b.floors {
		if f.HasWaiting() {
			return false
		}
	}
	for _, e := range b.elevators {
		if e.HasPassengers() {
			return false
		}
	}
	return true
}

func (b *Building) collectStatistics(completed bool) Result {
	delivered := 0
	for _, f := range b.floors {
		for _, p := range f.Delivered() {
			b.waitTimeStat.Add(p.WaitTime())
			b.travelTimeStat.Add(p.TravelTime())
			delivered++
		}
	}

	return Result{
		MeanWaitTime:   b.waitTimeStat.Mean(),
		MeanTravelTime: b.travelTimeStat.Mean(),
		Total:          b.totalPassengers,
		Delivered:      delivered,
		Ticks:          b.currentTime,
		Completed:      completed,
	}
}

func (b *Building) emitElevatorTransitions(e *elevator.Elevator, floorBefore int, stateBefore simconsts.ElevatorState) {
	if b.observer == nil {
		return
	}
	if e.CurrentFloor() != floorBefore {
		b.emit(simevent.ElevatorMovedEvent{Tick: b.currentTime, ElevatorID: e.ID(), Floor: e.CurrentFloor()}.Wrap())
	}
	if e.State() == simconsts.Stopping && stateBefore != simconsts.Stopping {
		b.emit(simevent.ElevatorStoppedEvent{Tick: b.currentTime, ElevatorID: e.ID(), Floor: e.CurrentFloor()}.Wrap())
	}
}

func (b *Building) emit(event simevent.SimulationEvent) {
	if b.observer != nil {
		b.observer(event)
	}
}
