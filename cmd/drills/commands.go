package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/drills/config"
	"go.flow.arcalot.io/drills/core"
	"go.flow.arcalot.io/drills/internal/tableprinter"
	"go.flow.arcalot.io/drills/intro"
	"go.flow.arcalot.io/drills/stack"
	"gopkg.in/yaml.v3"
)

// errUsage marks argument errors, as opposed to errors the command itself produced.
var errUsage = errors.New("invalid arguments")

type command func(cfg *config.Config, args []string) (any, error)

var commands = map[string]command{
	"discount":  discountCommand,
	"validate":  validateCommand,
	"can-drive": canDriveCommand,
	"fizzbuzz":  fizzBuzzCommand,
	"reverse":   reverseCommand,
}

func runCommand(cfg *config.Config, logger log.Logger, args []string, output io.Writer) int {
	if len(args) == 0 {
		logger.Errorf("No command given")
		return ExitCodeInvalidData
	}
	name, args := args[0], args[1:]

	if name == "coupons" {
		tableprinter.PrintCoupons(output, cfg.Catalog().Coupons(), logger)
		return ExitCodeOK
	}

	cmd, ok := commands[name]
	if !ok {
		logger.Errorf("Unknown command %s", name)
		return ExitCodeInvalidData
	}
	result, err := cmd(cfg, args)
	if err != nil {
		logger.Errorf("Command %s failed (%v)", name, err)
		if errors.Is(err, errUsage) {
			return ExitCodeInvalidData
		}
		return ExitCodeCommandFailed
	}
	data, err := yaml.Marshal(
		map[string]any{
			"command": name,
			"result":  result,
		},
	)
	if err != nil {
		logger.Errorf("Failed to marshal output (%v)", err)
		return ExitCodeCommandFailed
	}
	_, _ = output.Write(data)
	return ExitCodeOK
}

func expectArgs(args []string, count int) error {
	if len(args) != count {
		return fmt.Errorf("expected %d arguments, got %d (%w)", count, len(args), errUsage)
	}
	return nil
}

func parseInt(arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s is not an integer (%w)", arg, errUsage)
	}
	return value, nil
}

func discountCommand(cfg *config.Config, args []string) (any, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	price, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return nil, fmt.Errorf("%s is not a number (%w)", args[0], errUsage)
	}
	return cfg.Catalog().CalculateDiscount(price, args[1])
}

func validateCommand(_ *config.Config, args []string) (any, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	age, err := parseInt(args[1])
	if err != nil {
		return nil, err
	}
	return core.ValidateUserInput(args[0], age), nil
}

func canDriveCommand(cfg *config.Config, args []string) (any, error) {
	if err := expectArgs(args, 2); err != nil {
		return nil, err
	}
	age, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	return cfg.Catalog().CanDrive(age, args[1])
}

func fizzBuzzCommand(_ *config.Config, args []string) (any, error) {
	if err := expectArgs(args, 1); err != nil {
		return nil, err
	}
	n, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, intro.FizzBuzz(i))
	}
	return result, nil
}

func reverseCommand(_ *config.Config, args []string) (any, error) {
	words := stack.New[string]()
	for _, arg := range args {
		words.Push(arg)
	}
	result := make([]string, 0, words.Size())
	for !words.IsEmpty() {
		word, err := words.Pop()
		if err != nil {
			return nil, err
		}
		result = append(result, word)
	}
	return result, nil
}
