package simconfig

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
	"github.com/tiendc/go-deepcopy"

	"github.com/jerryland3/ElevatorSimulation/internal/logger"
	"github.com/jerryland3/ElevatorSimulation/internal/simconsts"
)

var Log = logger.GetLogger()

// Config holds the scalars of one simulation run. ActivationOffsets
// staggers elevator availability: elevator i does not update before
// tick ActivationOffsets[i]; missing entries default to 0. MaxTicks
// bounds the run, 0 means unbounded.
type Config struct {
	Floors             int   `yaml:"Floors"`
	Elevators          int   `yaml:"Elevators"`
	SpeedTicksPerFloor int   `yaml:"SpeedTicksPerFloor"`
	StopDwellTicks     int   `yaml:"StopDwellTicks"`
	Capacity           int   `yaml:"Capacity"`
	ActivationOffsets  []int `yaml:"ActivationOffsets"`
	MaxTicks           int   `yaml:"MaxTicks"`
}

// Default mirrors the reference run: a 100 floor building with four
// elevators phased in over the first 700 ticks.
func Default() Config {
	return Config{
		Floors:             simconsts.MaxFloors,
		Elevators:          4,
		SpeedTicksPerFloor: 10,
		StopDwellTicks:     simconsts.DefaultStopDwell,
		Capacity:           simconsts.DefaultCapacity,
		ActivationOffsets:  []int{0, 100, 500, 700},
		MaxTicks:           0,
	}
}

func Load(path string) (Config, error) {
	c := Config{}
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("opening config file: %w", err)
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(&c)
	if err != nil {
		return c, fmt.Errorf("decoding config file: %w", err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Floors < 1 || c.Floors > simconsts.MaxFloors {
		return fmt.Errorf("floors %d outside [1, %d]: %w", c.Floors, simconsts.MaxFloors, simconsts.ErrInvalidConfiguration)
	}
	if c.Elevators < 1 {
		return fmt.Errorf("elevator count %d must be positive: %w", c.Elevators, simconsts.ErrInvalidConfiguration)
	}
	if c.SpeedTicksPerFloor < 1 {
		return fmt.Errorf("speed %d ticks/floor must be positive: %w", c.SpeedTicksPerFloor, simconsts.ErrInvalidConfiguration)
	}
	if c.StopDwellTicks < 1 {
		return fmt.Errorf("stop dwell %d ticks must be positive: %w", c.StopDwellTicks, simconsts.ErrInvalidConfiguration)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("capacity %d must be positive: %w", c.Capacity, simconsts.ErrInvalidConfiguration)
	}
	for i, offset := range c.ActivationOffsets {
		if offset < 0 {
			return fmt.Errorf("activation offset %d for elevator %d is negative: %w", offset, i, simconsts.ErrInvalidConfiguration)
		}
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max ticks %d is negative: %w", c.MaxTicks, simconsts.ErrInvalidConfiguration)
	}
	return nil
}

// Clone returns a deep copy so the building's view of the config cannot
// be changed through the caller's ActivationOffsets slice.
func (c Config) Clone() Config {
	out := Config{}
	if err := deepcopy.Copy(&out, &c); err != nil {
		Log.Error().Msgf("Failed to copy config: %v", err)
		return c
	}
	return out
}

// ActivationOffset returns the first tick at which elevator i updates.
func (c Config) ActivationOffset(i int) int {
	if i < 0 || i >= len(c.ActivationOffsets) {
		return 0
	}
	return c.ActivationOffsets[i]
}
