package simevent

import "testing"

func TestEventType(t *testing.T) {
	simulationEventArray := []SimulationEvent{
		{Value: PassengerArrivedEvent{}},
		{Value: ElevatorMovedEvent{}},
		{Value: ElevatorStoppedEvent{}},
		{Value: SimulationDoneEvent{}},
		{Value: struct{}{}},
	}

	simulationEventStringArray := []string{
		"PassengerArrivedEvent",
		"ElevatorMovedEvent",
		"ElevatorStoppedEvent",
		"SimulationDoneEvent",
		"UnknownEvent",
	}

	for index, simulationEvent := range simulationEventArray {
		if simulationEvent.EventType() != simulationEventStringArray[index] {
			t.Errorf("SimulationEvent.EventType() returned %v, expected %v", simulationEvent.EventType(), simulationEventStringArray[index])
		}
	}
}

func TestWrap(t *testing.T) {
	event := ElevatorMovedEvent{Tick: 10, ElevatorID: 1, Floor: 2}
	wrapped := event.Wrap()

	unwrapped, ok := wrapped.Value.(ElevatorMovedEvent)
	if !ok {
		t.Fatalf("Wrap() produced %T, expected ElevatorMovedEvent", wrapped.Value)
	}
	if unwrapped != event {
		t.Errorf("Wrap() round trip = %+v, expected %+v", unwrapped, event)
	}
}
