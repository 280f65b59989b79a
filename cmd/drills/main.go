// Package main provides the command line entrypoint for the drills exercises.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/drills/config"
	"gopkg.in/yaml.v3"
)

// These variables are filled using ldflags during the build process.
var (
	version = "development"
	commit  = "unknown"
	date    = "unknown"
)

// ExitCodeOK signals that the program terminated normally.
const ExitCodeOK = 0

// ExitCodeInvalidData signals that the program encountered invalid configuration or arguments.
const ExitCodeInvalidData = 1

// ExitCodeCommandFailed indicates that the command was understood but could not produce a result.
const ExitCodeCommandFailed = 2

func main() {
	tempLogger := log.New(log.Config{
		Level:       log.LevelInfo,
		Destination: log.DestinationStdout,
		Stdout:      os.Stderr,
	})

	configFile := ""
	printVersion := false

	flag.BoolVar(&printVersion, "version", printVersion, "Print the drills version and exit.")
	flag.StringVar(
		&configFile,
		"config",
		configFile,
		"The configuration file to load, if any.",
	)
	flag.Usage = func() {
		_, _ = os.Stderr.Write([]byte(`Usage: drills [OPTIONS] COMMAND [ARGS]

Commands:

  coupons                 List the configured coupons.
  discount PRICE CODE     Apply a discount code to a price.
  validate USERNAME AGE   Validate sign-up input.
  can-drive AGE COUNTRY   Check the legal driving age in a country.
  fizzbuzz N              Play FizzBuzz from 1 to N.
  reverse WORDS...        Print the words in reverse order.

Options:

  -version                Print the drills version and exit.

  -config FILENAME        The configuration file to load, if any.
`))
	}
	flag.Parse()

	if printVersion {
		fmt.Printf(
			"Drills\n"+
				"======\n"+
				"Version: %s\n"+
				"Commit: %s\n"+
				"Date: %s\n",
			version, commit, date,
		)
		return
	}

	var err error
	var configData any = map[string]any{}
	if configFile != "" {
		configData, err = loadYamlFile(configFile)
		if err != nil {
			tempLogger.Errorf("Failed to load configuration file %s (%v)", configFile, err)
			flag.Usage()
			os.Exit(ExitCodeInvalidData)
		}
	}
	cfg, err := config.Load(configData)
	if err != nil {
		tempLogger.Errorf("Failed to load configuration file %s (%v)", configFile, err)
		flag.Usage()
		os.Exit(ExitCodeInvalidData)
	}

	// now we are ready to instantiate our main logger
	cfg.Log.Stdout = os.Stderr
	logger := log.New(cfg.Log).WithLabel("source", "main")

	exitCode := runCommand(cfg, logger, flag.Args(), os.Stdout)
	if exitCode == ExitCodeInvalidData {
		flag.Usage()
	}
	os.Exit(exitCode)
}

func loadYamlFile(configFile string) (any, error) {
	fileContents, err := os.ReadFile(configFile) //nolint:gosec
	if err != nil {
		return nil, err
	}
	var data any
	if err := yaml.Unmarshal(fileContents, &data); err != nil {
		return nil, err
	}
	if data == nil {
		return map[string]any{}, nil
	}
	return data, nil
}
