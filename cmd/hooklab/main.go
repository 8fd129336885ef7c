package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/drake/hooklab/config"
	"github.com/drake/hooklab/debug"
	"github.com/drake/hooklab/lab"
	"github.com/drake/hooklab/loader"
	"github.com/drake/hooklab/ui/console"
	"github.com/drake/hooklab/ui/tui"
)

func main() {
	// Parse flags
	simpleUI := flag.Bool("simple", false, "Use line-oriented console UI instead of TUI")
	configPath := flag.String("config", config.InitFile(), "Path to init.lua")
	endpoint := flag.String("endpoint", "", "Override the auto-load endpoint")
	flag.Parse()

	logs, err := debug.SetupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening debug log:", err)
		os.Exit(1)
	}
	defer logs.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if *endpoint != "" {
		cfg.Endpoint = *endpoint
	}

	l := lab.New(lab.Options{
		Endpoint:    cfg.Endpoint,
		AutoLoad:    cfg.AutoLoad,
		Threshold:   cfg.CounterThreshold,
		Breakpoints: cfg.Breakpoints,
		HistorySize: cfg.HistorySize,
	})
	fetcher := loader.NewHTTPFetcher(cfg.Timeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, l).Start()

	// Fall back to the console UI when not attached to a terminal
	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	if *simpleUI || !interactive {
		err = console.NewConsoleUI(l, fetcher, os.Stdin, os.Stdout).Run()
	} else {
		err = tui.NewBubbleTeaUI(l, fetcher, cfg.CellWidth).Run()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "UI error:", err)
		os.Exit(1)
	}
}
