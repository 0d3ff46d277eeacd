package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backlog-sim/engine"
	"backlog-sim/formatter"
	"backlog-sim/metrics"
	"backlog-sim/parser"
	"backlog-sim/scenarios"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

func main() {
	// Define flags
	input := flag.String("input", "", "Input request file, YAML or JSON (required)")
	format := flag.String("format", "text", "Output format: text|json|csv")
	quick := flag.Bool("quick", false, "Treat the input as a quick-scenarios request and run the named scenario batch")
	seed := flag.Int64("seed", 0, "Override the request seed (0 = use the request's seed, or time-based)")
	timeout := flag.Duration("timeout", 0, "Batch timeout for -quick (0 = none)")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")

	// Parse command-line flags
	flag.Parse()

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			fmt.Printf("Metrics server listening on %s/metrics\n", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				fmt.Printf("Metrics server error: %v\n", err)
			}
		}()
	}

	// Validate required input flag
	if *input == "" {
		fmt.Println("Error: -input flag is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[*format] {
		fmt.Printf("Error: format must be one of: text, json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	// Open input file
	file, err := os.Open(*input)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if *quick {
		runQuick(file, *format, *seed, *timeout)
	} else {
		runSingle(file, *format, *seed)
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "backlog_sim"
		if err := push.New(*pushGateway, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			fmt.Fprintf(os.Stderr, "Error pushing to Pushgateway: %v\n", err)
		} else {
			fmt.Println("\nMetrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		fmt.Println("\nProcess kept alive for metric scraping. Press Ctrl+C to exit.")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nExiting...")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		// but typically batch jobs should use pushgateway or wait
		time.Sleep(100 * time.Millisecond)
	}
}

func runSingle(file *os.File, format string, seed int64) {
	req, err := parser.ParseRequest(file)
	if err != nil {
		fmt.Printf("Error parsing request: %v\n", err)
		os.Exit(1)
	}
	if seed != 0 {
		req.Seed = &seed
	}

	metrics.ResetRunGauges()
	resp, err := engine.Run(req)
	if err != nil {
		fmt.Printf("Simulation failed: %v\n", err)
		os.Exit(1)
	}
	metrics.RecordRun(resp)

	switch format {
	case "json":
		fmt.Print(formatter.FormatJSON(resp))
	case "csv":
		fmt.Print(formatter.FormatCSV(resp))
	default: // "text"
		fmt.Print(formatter.FormatText(resp))
	}
}

func runQuick(file *os.File, format string, seed int64, timeout time.Duration) {
	req, err := parser.ParseQuickRequest(file)
	if err != nil {
		fmt.Printf("Error parsing request: %v\n", err)
		os.Exit(1)
	}
	if seed != 0 {
		req.Seed = &seed
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := scenarios.Run(ctx, req)
	if err != nil {
		fmt.Printf("Scenario batch failed: %v\n", err)
		os.Exit(1)
	}

	switch format {
	case "json":
		fmt.Print(formatter.FormatScenariosJSON(resp))
	case "csv":
		fmt.Print(formatter.FormatScenariosCSV(resp))
	default: // "text"
		fmt.Print(formatter.FormatScenariosText(resp))
	}
}
