// Package main is the entry point for the fusion pipeline CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/driftlab/trendfuse/internal/archive"
	"github.com/driftlab/trendfuse/internal/config"
	"github.com/driftlab/trendfuse/internal/db"
	"github.com/driftlab/trendfuse/internal/export"
	"github.com/driftlab/trendfuse/internal/logging"
	"github.com/driftlab/trendfuse/internal/metrics"
	"github.com/driftlab/trendfuse/internal/pipeline"
)

func main() {
	help := flag.Bool("help", false, "display help message")
	configFile := flag.String("config", "", "path to a YAML config file")
	outJSON := flag.String("out-json", "", "path for the JSON results file")
	outCSV := flag.String("out-csv", "", "path for the CSV export")
	topN := flag.Int("top", 0, "number of products in the JSON results")
	flag.Parse()

	if *help {
		fmt.Println("Trendfuse Product Fusion Pipeline")
		fmt.Println()
		fmt.Println("Usage: trendfuse [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg, errs := config.Load(*configFile)
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, "config error:", err)
		}
		os.Exit(1)
	}

	// Command-line flags override the loaded configuration.
	if *outJSON != "" {
		cfg.OutputJSON = *outJSON
	}
	if *outCSV != "" {
		cfg.OutputCSV = *outCSV
	}
	if *topN > 0 {
		cfg.TopN = *topN
	}

	logger := logging.NewLogger(cfg.Env)
	slog.SetDefault(logger)

	for key, value := range cfg.LogSummary() {
		logger.Debug("config", "key", key, "value", value)
	}

	registry := prometheus.NewRegistry()
	pipelineMetrics := metrics.NewPipeline()
	if err := pipelineMetrics.Register(registry); err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	opts := pipeline.Options{
		Config:  cfg,
		Logger:  logger,
		Metrics: pipelineMetrics,
	}

	if cfg.ArchiveEnabled() {
		pool, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to archive database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		opts.Archive = archive.NewPostgresRunRepository(pool, logger)
		logger.Info("run archive enabled")
	}

	if cfg.R2Enabled() {
		sink, err := export.NewObjectSink(export.ObjectSinkConfig{
			BucketName:      cfg.R2BucketName,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			Endpoint:        cfg.R2Endpoint,
			KeyPrefix:       "runs/",
		})
		if err != nil {
			logger.Error("failed to create object sink", "error", err)
			os.Exit(1)
		}
		opts.Sink = sink
		logger.Info("artifact mirroring enabled", "bucket", cfg.R2BucketName)
	}

	result, err := pipeline.New(opts).Run(context.Background())
	if err != nil {
		logger.Error("fusion run failed", "error", err)
		os.Exit(1)
	}

	printSummary(result)
}

// printSummary writes a human-readable recap of the run to stdout.
func printSummary(result *pipeline.Result) {
	stats := result.Stats

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("PRODUCT FUSION RESULTS")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Products analyzed:       %d\n", stats.TotalProducts)
	fmt.Printf("With trend data:         %d\n", stats.WithTrendData)
	fmt.Printf("With AliExpress data:    %d\n", stats.WithAliData)
	fmt.Printf("With Amazon data:        %d\n", stats.WithAmzData)
	fmt.Printf("With TikTok data:        %d\n", stats.WithTikTokData)
	fmt.Printf("Multi-source products:   %d\n", stats.WithMultipleSources)
	fmt.Printf("Average score:           %.3f\n", stats.AvgCompositeScore)
	fmt.Printf("Top score:               %.3f\n", stats.TopScore)

	top := result.Top
	if len(top) > 5 {
		top = top[:5]
	}
	if len(top) > 0 {
		fmt.Println()
		fmt.Println("Top products:")
		for i, rec := range top {
			fmt.Printf("%2d. %-40s %.3f  [%s]\n",
				i+1, truncate(rec.ProductName, 40), rec.Score,
				strings.Join(rec.DataSources, ", "))
		}
	}

	fmt.Println()
	if note := artifactNote(result); note != "" {
		fmt.Println("Artifacts written:", note)
	}
}

func artifactNote(result *pipeline.Result) string {
	parts := []string{}
	if result.JSONWritten {
		parts = append(parts, "json")
	}
	if result.CSVWritten {
		parts = append(parts, "csv")
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
