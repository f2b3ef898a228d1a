package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/xyproto/randomstring"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jerryland3/ElevatorSimulation/internal/building"
	"github.com/jerryland3/ElevatorSimulation/internal/intake"
	"github.com/jerryland3/ElevatorSimulation/internal/logger"
	"github.com/jerryland3/ElevatorSimulation/internal/report"
	"github.com/jerryland3/ElevatorSimulation/internal/simconfig"
	"github.com/jerryland3/ElevatorSimulation/internal/simconsts"
	"github.com/jerryland3/ElevatorSimulation/internal/simevent"
	"github.com/jerryland3/ElevatorSimulation/internal/simutils"
)

const LABEL_DEFAULT_LEN = 10

func main() {
	options := simutils.ProcessCmdArgs()
	log := logger.GetLoggerConfigured(options.LogLevel)

	log.Info().Msg("Starting Elevator Simulation")

	label := options.Label
	if label == "" {
		label = randomstring.EnglishFrequencyString(LABEL_DEFAULT_LEN)
		log.Warn().Msgf("No run label provided, generated random label \"%v\"", label)
	}

	config := simconfig.Default()
	if options.ConfigPath != "" {
		var err error
		config, err = simconfig.Load(options.ConfigPath)
		if err != nil {
			log.Fatal().Msgf("Loading configuration: %v", err)
		}
	}

	records, err := intake.ReadFile(options.InputPath)
	if err != nil {
		log.Fatal().Msgf("Reading passenger records: %v", err)
	}
	log.Info().Msgf("Read %d passenger records from %v", len(records), options.InputPath)

	baseline := runOnce(log, config, records, label)

	if options.CompareSpeed > 0 {
		improvedConfig := config.Clone()
		improvedConfig.SpeedTicksPerFloor = options.CompareSpeed
		improved := runOnce(log, improvedConfig, records, label+"-improved")

		printer := message.NewPrinter(language.English)
		printer.Fprintf(os.Stdout, "\nWait time reduction: %.1f%%\n",
			report.Reduction(baseline.MeanWaitTime, improved.MeanWaitTime))
		printer.Fprintf(os.Stdout, "Travel time reduction: %.1f%%\n",
			report.Reduction(baseline.MeanTravelTime, improved.MeanTravelTime))
	}
}

func runOnce(log *zerolog.Logger, config simconfig.Config, records []intake.Record, label string) building.Result {
	b, err := building.New(config, records)
	if err != nil {
		log.Fatal().Msgf("Building run %v: %v", label, err)
	}

	b.SetObserver(func(event simevent.SimulationEvent) {
		log.Debug().Msgf("%s: %+v", event.EventType(), event.Value)
	})

	result, err := b.Run()
	switch {
	case errors.Is(err, simconsts.ErrTickBudgetExceeded):
		log.Warn().Msgf("Run %v incomplete: %v", label, err)
	case err != nil:
		// a lost or duplicated passenger is a scheduling bug
		log.Fatal().Msgf("Run %v failed: %v", label, err)
	}

	runReport := report.New(label, result)
	log.Info().Msgf("Run report: %v", runReport.String())
	runReport.Fprint(os.Stdout)
	return result
}
