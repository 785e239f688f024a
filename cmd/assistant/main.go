package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitUsage   = 64
)

const usage = `Usage: assistant <command> [arguments]

Commands:
  check <symptoms...>   classify a symptom description
  chat                  talk to the health assistant
  nearby [type]         list nearby help (all, pharmacy, doctor, hospital)
`

var errUsage = errors.New("invalid usage")

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "assistant: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, logs.GetLoggerFromString(cfg.LogLevel), os.Stdin, os.Stdout)
	if err != nil {
		return exitConfig, err
	}

	if err := a.dispatch(ctx, args); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			return exitUsage, err
		}
		return exitRuntime, err
	}

	return exitOK, nil
}
