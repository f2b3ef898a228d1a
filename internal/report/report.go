package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jerryland3/ElevatorSimulation/internal/building"
	"github.com/jerryland3/ElevatorSimulation/internal/logger"
)

var Log = logger.GetLogger()

// RunReport is the machine-readable summary of one simulation run.
type RunReport struct {
	RunID               uuid.UUID `json:"run_id"`
	Label               string    `json:"label"`
	MeanWaitTime        float64   `json:"mean_wait_time"`
	MeanTravelTime      float64   `json:"mean_travel_time"`
	TotalPassengers     int       `json:"total_passengers"`
	DeliveredPassengers int       `json:"delivered_passengers"`
	Ticks               int       `json:"ticks"`
	Completed           bool      `json:"completed"`
}

func New(label string, result building.Result) RunReport {
	return RunReport{
		RunID:               uuid.New(),
		Label:               label,
		MeanWaitTime:        result.MeanWaitTime,
		MeanTravelTime:      result.MeanTravelTime,
		TotalPassengers:     result.Total,
		DeliveredPassengers: result.Delivered,
		Ticks:               result.Ticks,
		Completed:           result.Completed,
	}
}

func (r *RunReport) String() string {
	// NaN is not representable in JSON, an empty run reports zero means
	sanitized := *r
	if math.IsNaN(sanitized.MeanWaitTime) {
		sanitized.MeanWaitTime = 0
	}
	if math.IsNaN(sanitized.MeanTravelTime) {
		sanitized.MeanTravelTime = 0
	}

	jsonData, err := json.Marshal(&sanitized)
	if err != nil {
		Log.Error().Msg("Error Serialising RunReport Object to JSON")
		return ""
	}
	return string(jsonData)
}

// Fprint writes the human-readable report.
func (r *RunReport) Fprint(w io.Writer) {
	printer := message.NewPrinter(language.English)

	printer.Fprintf(w, "Run %v (%s)\n", r.RunID, r.Label)
	printer.Fprintf(w, "Average wait time: %v\n", r.MeanWaitTime)
	printer.Fprintf(w, "Average travel time: %v\n", r.MeanTravelTime)
	printer.Fprintf(w, "Total passengers: %d\n", r.TotalPassengers)
	printer.Fprintf(w, "Delivered passengers: %d\n", r.DeliveredPassengers)
	printer.Fprintf(w, "Simulated ticks: %d\n", r.Ticks)
	if !r.Completed {
		printer.Fprintf(w, "WARNING: run stopped at the tick budget before all passengers were delivered\n")
	}
}

// Reduction returns the percentage improvement from before to after,
// as in "the faster elevators cut the average wait by 37%".
func Reduction(before, after float64) float64 {
	if before == 0 || math.IsNaN(before) || math.IsNaN(after) {
		return math.NaN()
	}
	return (1 - after/before) * 100
}
