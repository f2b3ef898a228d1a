package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jerryland3/ElevatorSimulation/internal/logger"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

// elevsimgen writes a synthetic passenger arrival CSV, sorted by start
// time, for feeding cmd/elevsim.
func main() {
	count := flag.Int("count", 1000, "Number of passengers to generate")
	floors := flag.Int("floors", 100, "Number of floors in the building")
	horizon := flag.Int("horizon", 3600, "Arrival times are drawn from [0, horizon)")
	seed := flag.Int64("seed", 1, "Random seed")
	outPath := flag.String("out", "passengers.csv", "Output file")
	flag.Parse()

	if *count < 0 || *floors < 2 || *horizon < 1 {
		fmt.Println("count must be >= 0, floors >= 2, horizon >= 1")
		os.Exit(1)
	}

	random := rand.New(rand.NewSource(*seed))

	startTimes := make([]int, *count)
	for i := range startTimes {
		startTimes[i] = random.Intn(*horizon)
	}
	sort.Ints(startTimes)

	file, err := os.Create(*outPath)
	if err != nil {
		Logger.Fatal().Msgf("Creating %v: %v", *outPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"startTime", "startFloor", "endFloor"}); err != nil {
		Logger.Fatal().Msgf("Writing header: %v", err)
	}

	for _, startTime := range startTimes {
		startFloor := random.Intn(*floors) + 1
		endFloor := random.Intn(*floors) + 1
		for endFloor == startFloor {
			endFloor = random.Intn(*floors) + 1
		}

		row := []string{
			strconv.Itoa(startTime),
			strconv.Itoa(startFloor),
			strconv.Itoa(endFloor),
		}
		if err := writer.Write(row); err != nil {
			Logger.Fatal().Msgf("Writing row: %v", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		Logger.Fatal().Msgf("Flushing %v: %v", *outPath, err)
	}

	Logger.Info().Msgf("Wrote %d passengers across %d floors to %v", *count, *floors, *outPath)
}
