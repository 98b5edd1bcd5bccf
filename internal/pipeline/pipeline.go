// Package pipeline orchestrates one fusion run: collect records from
// each source, resolve them into canonical products, normalize, score,
// and export. The pipeline is single-threaded by design: resolution
// scans the complete current product set, so ingestion from the four
// sources happens strictly one after another.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/driftlab/trendfuse/internal/archive"
	"github.com/driftlab/trendfuse/internal/catalog"
	"github.com/driftlab/trendfuse/internal/config"
	"github.com/driftlab/trendfuse/internal/export"
	"github.com/driftlab/trendfuse/internal/metrics"
	"github.com/driftlab/trendfuse/internal/normalize"
	"github.com/driftlab/trendfuse/internal/ranking"
	"github.com/driftlab/trendfuse/internal/report"
	"github.com/driftlab/trendfuse/internal/social"
	"github.com/driftlab/trendfuse/internal/source"
)

// Options wires the pipeline's collaborators. Archive and Sink are
// optional; Metrics may be nil to disable instrumentation; a nil Logger
// falls back to slog.Default.
type Options struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Pipeline
	Archive archive.RunRepository
	Sink    *export.ObjectSink
}

// Pipeline is a reusable batch runner. Each Run starts from an empty
// catalog; entity identities are never carried across runs.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Pipeline
	archive archive.RunRepository
	sink    *export.ObjectSink
	timeNow func() time.Time // For testability
}

// Result summarizes one completed run.
type Result struct {
	RunID       uuid.UUID
	Top         []report.DisplayRecord
	Stats       report.SummaryStats
	JSONWritten bool
	CSVWritten  bool
}

// New creates a pipeline from its options.
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:     opts.Config,
		logger:  logger,
		metrics: opts.Metrics,
		archive: opts.Archive,
		sink:    opts.Sink,
		timeNow: time.Now,
	}
}

// Run executes one full fusion pass. Data-shape problems (missing
// fields, degenerate names, empty sources, failed exports) never fail
// the run; only configuration contract violations return an error.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := p.timeNow()

	weights, err := ranking.LoadCalibration(p.cfg.WeightsCalibration)
	if weights == nil {
		return nil, err
	}
	if err != nil {
		p.logger.Warn("weight calibration unavailable, using defaults", "error", err)
	}

	metricCfg, err := normalize.LoadCalibration(p.cfg.MetricsCalibration)
	if metricCfg == nil {
		return nil, err
	}
	if err != nil {
		p.logger.Warn("metric calibration unavailable, using defaults", "error", err)
	}

	cat := catalog.New(p.logger, p.metrics)

	// Ingestion order is fixed; each source completes fully before the
	// next begins.
	cat.AddTrends(p.collectTrends())
	cat.AddAliExpress(p.collectAliExpress())
	cat.AddAmazon(p.collectAmazon())
	cat.AddTikTok(social.AggregateVideos(p.collectTikTok()))

	rows := normalize.Normalize(cat.Products(), metricCfg, p.logger)
	ranked := ranking.Rank(rows, weights)
	stats := report.Summarize(ranked)

	result := &Result{
		RunID: uuid.New(),
		Top:   report.TopN(ranked, p.cfg.TopN),
		Stats: stats,
	}

	p.exportArtifacts(ctx, ranked, result)
	p.archiveRun(ctx, ranked, stats, result.RunID)

	elapsed := p.timeNow().Sub(start)
	if p.metrics != nil {
		p.metrics.ObserveRunDuration(elapsed.Seconds())
	}
	p.logger.Info("fusion run complete",
		"run_id", result.RunID.String(),
		"products", stats.TotalProducts,
		"multi_source", stats.WithMultipleSources,
		"top_score", stats.TopScore,
		"elapsed", elapsed)

	return result, nil
}

// exportArtifacts writes the JSON and CSV artifacts and mirrors them to
// object storage when configured. Export failures are reported on the
// result and logged; the run continues with its other outputs.
func (p *Pipeline) exportArtifacts(ctx context.Context, ranked []ranking.ScoredRow, result *Result) {
	if err := export.WriteJSON(p.cfg.OutputJSON, result.Top, p.timeNow()); err != nil {
		p.logExportError("json", p.cfg.OutputJSON, err)
	} else {
		result.JSONWritten = true
		p.mirror(ctx, p.cfg.OutputJSON, "application/json")
	}

	csvRecords := report.TopN(ranked, p.cfg.ExportTopN)
	if err := export.WriteCSV(p.cfg.OutputCSV, csvRecords); err != nil {
		p.logExportError("csv", p.cfg.OutputCSV, err)
	} else {
		result.CSVWritten = true
		p.mirror(ctx, p.cfg.OutputCSV, "text/csv")
	}
}

// logExportError distinguishes the empty-set case from real I/O
// failures.
func (p *Pipeline) logExportError(kind, path string, err error) {
	if errors.Is(err, export.ErrNoProducts) {
		p.logger.Warn("skipping export, no products", "kind", kind, "path", path)
		return
	}
	p.logger.Error("export failed", "kind", kind, "path", path, "error", err)
}

// mirror uploads a written artifact to the configured object sink.
func (p *Pipeline) mirror(ctx context.Context, path, contentType string) {
	if p.sink == nil {
		return
	}
	if err := p.sink.Upload(ctx, path, contentType); err != nil {
		p.logger.Error("failed to mirror artifact", "path", path, "error", err)
	}
}

// archiveRun persists the scored snapshot when an archive is
// configured. Archive failures are logged, not fatal.
func (p *Pipeline) archiveRun(ctx context.Context, ranked []ranking.ScoredRow, stats report.SummaryStats, runID uuid.UUID) {
	if p.archive == nil || len(ranked) == 0 {
		return
	}
	run := &archive.Run{
		ID:            runID,
		CreatedAt:     p.timeNow(),
		TotalProducts: stats.TotalProducts,
		AvgScore:      stats.AvgCompositeScore,
		TopScore:      stats.TopScore,
	}
	if err := p.archive.SaveRun(ctx, run, ranked); err != nil {
		p.logger.Error("failed to archive run", "run_id", runID.String(), "error", err)
	}
}

// collectTrends loads trend records from the configured file, falling
// back to the built-in samples when no file is set. A failed load
// yields zero contributions for the source, never a failed run.
func (p *Pipeline) collectTrends() []source.TrendRecord {
	if p.cfg.TrendsFile == "" {
		p.logger.Info("using built-in sample trend data")
		return source.SampleTrends()
	}
	records, err := source.LoadTrends(p.cfg.TrendsFile)
	if err != nil {
		p.logger.Error("failed to load trend records", "path", p.cfg.TrendsFile, "error", err)
		return nil
	}
	return records
}

func (p *Pipeline) collectAliExpress() []source.AliExpressRecord {
	if p.cfg.AliExpressFile == "" {
		p.logger.Info("using built-in sample aliexpress data")
		return source.SampleAliExpress()
	}
	records, err := source.LoadAliExpress(p.cfg.AliExpressFile)
	if err != nil {
		p.logger.Error("failed to load aliexpress records", "path", p.cfg.AliExpressFile, "error", err)
		return nil
	}
	return records
}

func (p *Pipeline) collectAmazon() []source.AmazonRecord {
	if p.cfg.AmazonFile == "" {
		p.logger.Info("using built-in sample amazon data")
		return source.SampleAmazon()
	}
	records, err := source.LoadAmazon(p.cfg.AmazonFile)
	if err != nil {
		p.logger.Error("failed to load amazon records", "path", p.cfg.AmazonFile, "error", err)
		return nil
	}
	return records
}

func (p *Pipeline) collectTikTok() []source.TikTokRecord {
	if p.cfg.TikTokFile == "" {
		p.logger.Info("using built-in sample tiktok data")
		return source.SampleTikTok()
	}
	records, err := source.LoadTikTok(p.cfg.TikTokFile)
	if err != nil {
		p.logger.Error("failed to load tiktok records", "path", p.cfg.TikTokFile, "error", err)
		return nil
	}
	return records
}
