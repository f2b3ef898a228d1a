package simutils

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return gitHash
}

// Options are the resolved command line settings for a simulation run.
type Options struct {
	ConfigPath   string
	InputPath    string
	Label        string
	CompareSpeed int
	LogLevel     zerolog.Level
}

// ProcessCmdArgs resolves flags for the simulator. An optional .env
// file in the working directory supplies defaults for the config path
// and log level (ELEVSIM_CONFIG, ELEVSIM_LOG_LEVEL).
func ProcessCmdArgs() Options {
	defaultConfig := ""
	defaultLogLevel := "info"
	if env, err := godotenv.Read(".env"); err == nil {
		if value, ok := env["ELEVSIM_CONFIG"]; ok {
			defaultConfig = value
		}
		if value, ok := env["ELEVSIM_LOG_LEVEL"]; ok {
			defaultLogLevel = value
		}
	}

	help := flag.Bool("help", false, "Show Help Window")
	version := flag.Bool("version", false, "Show Version")
	configPath := flag.String("config", defaultConfig, "Path to the YAML run configuration. Defaults to built-in values")
	inputPath := flag.String("input", "passengers.csv", "Path to the passenger arrival CSV")
	label := flag.String("label", "", "Label for this run. Defaults to a random string")
	compareSpeed := flag.Int("comparespeed", 0, "Re-run with this floor travel time and report the improvement. 0 disables")
	logLevel := flag.String("loglevel", defaultLogLevel, "Log level: trace, debug, info, warn, error")

	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Println("Unknown log level:", *logLevel)
		os.Exit(1)
	}

	if *compareSpeed < 0 {
		fmt.Println("comparespeed must be zero or a positive tick count")
		os.Exit(1)
	}

	if *version {
		fmt.Println("Version:", GetGitHash())
		os.Exit(0)
	}

	if *help {
		fmt.Println("Usage: ./elevsim [OPTIONS]")
		fmt.Println("Multi-elevator dispatch simulator")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	return Options{
		ConfigPath:   *configPath,
		InputPath:    *inputPath,
		Label:        *label,
		CompareSpeed: *compareSpeed,
		LogLevel:     level,
	}
}
