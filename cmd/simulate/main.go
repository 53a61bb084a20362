// Package main runs one simulation from a YAML scenario file and
// renders a Markdown report.
//
// Usage:
//
//	simulate -scenario deal.yaml [-trials 200000] [-seed 42] [-o report.md]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"venture-sim-lab/internal/metrics"
	"venture-sim-lab/internal/params"
	"venture-sim-lab/internal/reporting"
	"venture-sim-lab/internal/simulation"
)

func main() {
	scenarioPath := flag.String("scenario", "", "Path to YAML scenario file (required)")
	trials := flag.Int("trials", 0, "Trial count override (default: scenario num_simulations, else 100000)")
	seed := flag.Uint64("seed", 0, "Random seed for a reproducible run (0 = random)")
	workers := flag.Int("workers", 0, "Engine worker count (0 = GOMAXPROCS)")
	output := flag.String("o", "", "Write the report to a file instead of stdout")
	flag.Parse()

	logger := log.New(os.Stderr, "[simulate] ", log.LstdFlags)

	if *scenarioPath == "" {
		logger.Fatal("-scenario is required")
	}

	data, err := os.ReadFile(*scenarioPath)
	if err != nil {
		logger.Fatalf("Failed to read scenario: %v", err)
	}

	var in params.Inputs
	if err := yaml.Unmarshal(data, &in); err != nil {
		logger.Fatalf("Failed to parse scenario: %v", err)
	}

	n := in.NumSimulations
	if *trials > 0 {
		n = *trials
	}
	if n <= 0 {
		n = 100_000
	}

	deal, p, err := params.Build(in)
	if err != nil {
		logger.Fatalf("Invalid scenario: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := simulation.NewEngine(simulation.Options{Workers: *workers, Seed: *seed})

	start := time.Now()
	sample, err := engine.Run(ctx, deal, p, n)
	if err != nil {
		logger.Fatalf("Simulation failed: %v", err)
	}
	logger.Printf("Simulated %d trials in %v", n, time.Since(start))

	report := &reporting.Report{
		GeneratedAt: time.Now(),
		Trials:      n,
		Seed:        *seed,
		Metrics:     metrics.Analyze(sample, deal),
	}
	rendered := reporting.RenderMarkdown(report)

	if *output == "" {
		fmt.Print(rendered)
		return
	}
	if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}
	logger.Printf("Report written to %s", *output)
}
