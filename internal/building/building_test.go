package building

import (
	"errors"
	"math"
	"testing"

	"github.com/jerryland3/ElevatorSimulation/internal/intake"
	"github.com/jerryland3/ElevatorSimulation/internal/simconfig"
	"github.com/jerryland3/ElevatorSimulation/internal/simconsts"
	"github.com/jerryland3/ElevatorSimulation/internal/simevent"
)

func testConfig(floors, elevators, speed int) simconfig.Config {
	return simconfig.Config{
		Floors:             floors,
		Elevators:          elevators,
		SpeedTicksPerFloor: speed,
		StopDwellTicks:     2,
		Capacity:           8,
		ActivationOffsets:  []int{0},
	}
}

// One elevator at speed 10, one passenger from floor 1 to floor 3.
// Boarded at tick 0, arrives at tick 20, disembarks at tick 22 once
// the dwell has elapsed.
func TestSinglePassengerRun(t *testing.T) {
	b, err := New(testConfig(5, 1, 10), []intake.Record{{StartTime: 0, StartFloor: 1, EndFloor: 3}})
	if err != nil {
		t.Fatalf("New() error = %v, expected nil", err)
	}

	result, err := b.Run()
	if err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}

	if result.Delivered != 1 || result.Total != 1 {
		t.Errorf("delivered %d of %d, expected 1 of 1", result.Delivered, result.Total)
	}
	if result.MeanWaitTime != 0 {
		t.Errorf("MeanWaitTime = %v, expected 0", result.MeanWaitTime)
	}
	if result.MeanTravelTime != 22 {
		t.Errorf("MeanTravelTime = %v, expected 22", result.MeanTravelTime)
	}
	if result.Ticks != 23 {
		t.Errorf("Ticks = %d, expected 23", result.Ticks)
	}
	if !result.Completed {
		t.Errorf("Completed = false, expected true")
	}
}

// Two passengers board together at floor 1, the nearer destination is
// served first, the elevator continues upward.
func TestNearestDestinationServedFirst(t *testing.T) {
	records := []intake.Record{
		{StartTime: 0, StartFloor: 1, EndFloor: 5},
		{StartTime: 0, StartFloor: 1, EndFloor: 2},
	}
	b, err := New(testConfig(5, 1, 5), records)
	if err != nil {
		t.Fatalf("New() error = %v, expected nil", err)
	}

	result, err := b.Run()
	if err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}
	if result.Delivered != 2 {
		t.Fatalf("Delivered = %d, expected 2", result.Delivered)
	}

	floor2 := b.floors[1].Delivered()
	if len(floor2) != 1 || floor2[0].ID() != 2 {
		t.Errorf("floor 2 delivered = %v, expected passenger 2 first", floor2)
	}
	if floor2[0].TravelTime() != 7 {
		t.Errorf("passenger 2 travel time = %d, expected 7", floor2[0].TravelTime())
	}

	floor5 := b.floors[4].Delivered()
	if len(floor5) != 1 || floor5[0].ID() != 1 {
		t.Errorf("floor 5 delivered = %v, expected passenger 1", floor5)
	}
	if floor5[0].TravelTime() != 24 {
		t.Errorf("passenger 1 travel time = %d, expected 24", floor5[0].TravelTime())
	}
}

// An empty intake terminates at tick 0 with NaN means.
func TestEmptyIntakeTerminatesImmediately(t *testing.T) {
	b, err := New(testConfig(5, 1, 10), nil)
	if err != nil {
		t.Fatalf("New() error = %v, expected nil", err)
	}

	result, err := b.Run()
	if err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}

	if result.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", result.Ticks)
	}
	if result.Delivered != 0 {
		t.Errorf("Delivered = %d, expected 0", result.Delivered)
	}
	if !math.IsNaN(result.MeanWaitTime) || !math.IsNaN(result.MeanTravelTime) {
		t.Errorf("means = %v / %v, expected NaN for an empty run", result.MeanWaitTime, result.MeanTravelTime)
	}
}

func TestNewRejectsDegenerateTrip(t *testing.T) {
	_, err := New(testConfig(5, 1, 10), []intake.Record{{StartTime: 0, StartFloor: 1, EndFloor: 1}})
	if !errors.Is(err, simconsts.ErrInvalidConfiguration) {
		t.Errorf("New() error = %v, expected to wrap ErrInvalidConfiguration", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	config := testConfig(5, 1, 10)
	config.Elevators = 0
	_, err := New(config, nil)
	if !errors.Is(err, simconsts.ErrInvalidConfiguration) {
		t.Errorf("New() error = %v, expected to wrap ErrInvalidConfiguration", err)
	}
}

func TestTickBudget(t *testing.T) {
	config := testConfig(5, 1, 10)
	config.MaxTicks = 5
	b, err := New(config, []intake.Record{{StartTime: 0, StartFloor: 1, EndFloor: 3}})
	if err != nil {
		t.Fatalf("New() error = %v, expected nil", err)
	}

	result, err := b.Run()
	if !errors.Is(err, simconsts.ErrTickBudgetExceeded) {
		t.Errorf("Run() error = %v, expected to wrap ErrTickBudgetExceeded", err)
	}
	if result.Completed {
		t.Errorf("Completed = true, expected false on an exhausted budget")
	}
	if result.Delivered != 0 {
		t.Errorf("Delivered = %d, expected 0", result.Delivered)
	}
}

// An elevator whose activation offset lies beyond the whole run never
// updates and stays parked at floor 1.
func TestStaggeredActivation(t *testing.T) {
	config := testConfig(5, 2, 10)
	config.ActivationOffsets = []int{0, 1000000}
	b, err := New(config, []intake.Record{{StartTime: 0, StartFloor: 1, EndFloor: 3}})
	if err != nil {
		t.Fatalf("New() error = %v, expected nil", err)
	}

	result, err := b.Run()
	if err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}
	if result.Delivered != 1 {
		t.Errorf("Delivered = %d, expected 1", result.Delivered)
	}

	idle := b.elevators[1]
	if idle.CurrentFloor() != 1 || idle.State() != simconsts.Stopped {
		t.Errorf("inactive elevator at floor %d in state %v, expected Stopped at floor 1", idle.CurrentFloor(), idle.State())
	}
}

func TestConservationAcrossABusyRun(t *testing.T) {
	records := []intake.Record{
		{StartTime: 0, StartFloor: 1, EndFloor: 8},
		{StartTime: 0, StartFloor: 3, EndFloor: 1},
		{StartTime: 5, StartFloor: 2, EndFloor: 9},
		{StartTime: 5, StartFloor: 9, EndFloor: 2},
		{StartTime: 17, StartFloor: 4, EndFloor: 10},
		{StartTime: 42, StartFloor: 10, EndFloor: 1},
		{StartTime: 42, StartFloor: 6, EndFloor: 5},
		{StartTime: 99, StartFloor: 5, EndFloor: 6},
	}

	config := testConfig(10, 2, 5)
	config.Capacity = 2
	config.ActivationOffsets = []int{0, 20}
	b, err := New(config, records)
	if err != nil {
		t.Fatalf("New() error = %v, expected nil", err)
	}

	result, err := b.Run()
	if err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}
	if result.Delivered != len(records) {
		t.Errorf("Delivered = %d, expected %d", result.Delivered, len(records))
	}
	if result.MeanWaitTime < 0 || result.MeanTravelTime < 0 {
		t.Errorf("negative means: wait %v travel %v", result.MeanWaitTime, result.MeanTravelTime)
	}
}

// Once quiescent, the termination condition stays true.
func TestTerminationIsIdempotent(t *testing.T) {
	b, err := New(testConfig(5, 1, 10), []intake.Record{{StartTime: 0, StartFloor: 2, EndFloor: 4}})
	if err != nil {
		t.Fatalf("New() error = %v, expected nil", err)
	}

	if _, err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}
	for i := 0; i < 3; i++ {
		if !b.quiescent() {
			t.Fatalf("quiescent() = false after run, expected the building to stay quiescent")
		}
	}
}

func TestObserverSeesArrivalsAndCompletion(t *testing.T) {
	b, err := New(testConfig(5, 1, 10), []intake.Record{{StartTime: 3, StartFloor: 2, EndFloor: 4}})
	if err != nil {
		t.Fatalf("New() error = %v, expected nil", err)
	}

	var events []simevent.SimulationEvent
	b.SetObserver(func(event simevent.SimulationEvent) {
		events = append(events, event)
	})

	if _, err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}

	var sawArrival, sawDone bool
	for i := range events {
		switch value := events[i].Value.(type) {
		case simevent.PassengerArrivedEvent:
			if value.Tick != 3 || value.Floor != 2 {
				t.Errorf("PassengerArrivedEvent = %+v, expected tick 3 floor 2", value)
			}
			sawArrival = true
		case simevent.SimulationDoneEvent:
			if value.Delivered != 1 {
				t.Errorf("SimulationDoneEvent = %+v, expected 1 delivered", value)
			}
			sawDone = true
		}
	}
	if !sawArrival || !sawDone {
		t.Errorf("observer missed events: arrival %v done %v", sawArrival, sawDone)
	}
}
