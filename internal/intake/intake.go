package intake

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jerryland3/ElevatorSimulation/internal/simconsts"
)

// Record is one raw passenger-arrival row. Floor range validation
// happens later, at passenger construction, where the building height
// is known.
type Record struct {
	StartTime  int
	StartFloor int
	EndFloor   int
}

// ReadFile reads a passenger CSV: one header row, then
// startTime,startFloor,endFloor rows sorted ascending by start time.
func ReadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening passenger file: %w", err)
	}
	defer file.Close()

	records, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	// header row
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var records []Record
	lastStartTime := 0
	for row := 2; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		record := Record{}
		for i, dst := range []*int{&record.StartTime, &record.StartFloor, &record.EndFloor} {
			value, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %q is not an integer: %w", row, i+1, fields[i], simconsts.ErrInvalidConfiguration)
			}
			*dst = value
		}

		if record.StartTime < lastStartTime {
			return nil, fmt.Errorf("row %d: start time %d out of ascending order: %w", row, record.StartTime, simconsts.ErrInvalidConfiguration)
		}
		lastStartTime = record.StartTime

		records = append(records, record)
	}
	return records, nil
}
