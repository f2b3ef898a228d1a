package simevent

// SimulationEvent carries one trace event emitted by the building.
// Golang doesnt support union types, so we pass any of the below
// structs.
type SimulationEvent struct {
	Value any
}

// A passenger's arrival record reached its start tick and the
// passenger entered its start floor's waiting queue.
type PassengerArrivedEvent struct {
	Tick        int
	PassengerID int
	Floor       int
}

func (e PassengerArrivedEvent) Wrap() SimulationEvent {
	return SimulationEvent{Value: e}
}

type ElevatorMovedEvent struct {
	Tick       int
	ElevatorID int
	Floor      int
}

func (e ElevatorMovedEvent) Wrap() SimulationEvent {
	return SimulationEvent{Value: e}
}

type ElevatorStoppedEvent struct {
	Tick       int
	ElevatorID int
	Floor      int
}

func (e ElevatorStoppedEvent) Wrap() SimulationEvent {
	return SimulationEvent{Value: e}
}

type SimulationDoneEvent struct {
	Tick      int
	Delivered int
}

func (e SimulationDoneEvent) Wrap() SimulationEvent {
	return SimulationEvent{Value: e}
}

func (e *SimulationEvent) EventType() string {
	switch e.Value.(type) {
	case PassengerArrivedEvent:
		return "PassengerArrivedEvent"
	case ElevatorMovedEvent:
		return "ElevatorMovedEvent"
	case ElevatorStoppedEvent:
		return "ElevatorStoppedEvent"
	case SimulationDoneEvent:
		return "SimulationDoneEvent"
	default:
		return "UnknownEvent"
	}
}
