package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/driftlab/trendfuse/internal/archive"
	"github.com/driftlab/trendfuse/internal/config"
	"github.com/driftlab/trendfuse/internal/export"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Env:        "test",
		OutputJSON: filepath.Join(dir, "results.json"),
		OutputCSV:  filepath.Join(dir, "scored.csv"),
		TopN:       20,
		ExportTopN: 50,
	}
}

func TestRun_WithSampleData(t *testing.T) {
	cfg := testConfig(t)
	repo := archive.NewInMemoryRunRepository()
	p := New(Options{Config: cfg, Logger: testLogger(), Archive: repo})

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.TotalProducts == 0 {
		t.Fatal("expected products from the built-in samples")
	}
	if result.Stats.WithMultipleSources == 0 {
		t.Error("sample datasets overlap; expected multi-source products")
	}
	if len(result.Top) == 0 {
		t.Fatal("expected ranked display records")
	}
	for i := 1; i < len(result.Top); i++ {
		if result.Top[i].Score > result.Top[i-1].Score {
			t.Errorf("records out of order at %d: %v > %v",
				i, result.Top[i].Score, result.Top[i-1].Score)
		}
	}

	if !result.JSONWritten || !result.CSVWritten {
		t.Errorf("expected both artifacts written: json=%v csv=%v",
			result.JSONWritten, result.CSVWritten)
	}

	data, err := os.ReadFile(cfg.OutputJSON)
	if err != nil {
		t.Fatalf("failed to read results file: %v", err)
	}
	var results export.Results
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("results file is not valid JSON: %v", err)
	}
	if results.TotalCount != len(result.Top) {
		t.Errorf("results total_count = %d, want %d", results.TotalCount, len(result.Top))
	}

	saved, err := repo.GetRun(context.Background(), result.RunID)
	if err != nil {
		t.Fatalf("expected the run to be archived: %v", err)
	}
	if saved.TotalProducts != result.Stats.TotalProducts {
		t.Errorf("archived total = %d, want %d", saved.TotalProducts, result.Stats.TotalProducts)
	}
}

func TestRun_Deterministic(t *testing.T) {
	first, err := New(Options{Config: testConfig(t), Logger: testLogger()}).Run(context.Background())
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	second, err := New(Options{Config: testConfig(t), Logger: testLogger()}).Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if len(first.Top) != len(second.Top) {
		t.Fatalf("record counts differ: %d vs %d", len(first.Top), len(second.Top))
	}
	for i := range first.Top {
		if first.Top[i].ProductName != second.Top[i].ProductName ||
			first.Top[i].Score != second.Top[i].Score {
			t.Errorf("run output differs at %d: %q %v vs %q %v",
				i, first.Top[i].ProductName, first.Top[i].Score,
				second.Top[i].ProductName, second.Top[i].Score)
		}
	}
}

func TestRun_SingleProductTwoSources(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()

	trends := filepath.Join(dir, "trends.json")
	if err := os.WriteFile(trends, []byte(
		`[{"keyword": "wireless earbuds", "momentum": 1.2, "avg_interest": 45}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	ali := filepath.Join(dir, "ali.json")
	if err := os.WriteFile(ali, []byte(
		`[{"name": "Wireless Earbuds", "orders": 12500, "reviews": 856}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.TrendsFile = trends
	cfg.AliExpressFile = ali
	cfg.AmazonFile = empty
	cfg.TikTokFile = empty

	result, err := New(Options{Config: cfg, Logger: testLogger()}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.TotalProducts != 1 {
		t.Fatalf("expected the two records to fuse into 1 product, got %d", result.Stats.TotalProducts)
	}
	if result.Stats.WithTrendData != 1 || result.Stats.WithAliData != 1 || result.Stats.WithAmzData != 0 {
		t.Errorf("unexpected source coverage: %+v", result.Stats)
	}

	rec := result.Top[0]
	// trend = 0.7*norm(1.2 over [-2,2]) + 0.3*norm(45 over [0,100])
	if rec.TrendScore != 0.695 {
		t.Errorf("trend score = %v, want 0.695", rec.TrendScore)
	}
	// velocity 0.21848, popularity 0.5 (no rank data), virality 0,
	// competition 0.0856; composite rounds to 0.364.
	if rec.Score != 0.364 {
		t.Errorf("composite score = %v, want 0.364", rec.Score)
	}
}

func TestRun_LoadFailureDegradesSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.TrendsFile = filepath.Join(t.TempDir(), "absent.json")

	result, err := New(Options{Config: cfg, Logger: testLogger()}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.WithTrendData != 0 {
		t.Errorf("expected no trend contributions, got %d", result.Stats.WithTrendData)
	}
	if result.Stats.TotalProducts == 0 {
		t.Error("other sources must still contribute products")
	}
}

func TestRun_EmptySourcesSkipExports(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	for i, name := range []string{"trends.json", "ali.json", "amz.json", "tiktok.json"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			t.Fatal(err)
		}
		switch i {
		case 0:
			cfg.TrendsFile = path
		case 1:
			cfg.AliExpressFile = path
		case 2:
			cfg.AmazonFile = path
		case 3:
			cfg.TikTokFile = path
		}
	}

	result, err := New(Options{Config: cfg, Logger: testLogger()}).Run(context.Background())
	if err != nil {
		t.Fatalf("an empty batch is not a failed run: %v", err)
	}
	if result.Stats.TotalProducts != 0 {
		t.Errorf("expected 0 products, got %d", result.Stats.TotalProducts)
	}
	if result.JSONWritten || result.CSVWritten {
		t.Error("empty batches must not write artifacts")
	}
	if _, statErr := os.Stat(cfg.OutputJSON); !os.IsNotExist(statErr) {
		t.Error("no results file expected for an empty batch")
	}
}

func TestRun_InvalidWeightCalibrationFails(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, []byte(`{"weights": {"trend": 5.0}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.WeightsCalibration = path

	if _, err := New(Options{Config: cfg, Logger: testLogger()}).Run(context.Background()); err == nil {
		t.Error("an invalid weight configuration must fail the run")
	}
}

func TestRun_MissingCalibrationFileDegrades(t *testing.T) {
	cfg := testConfig(t)
	cfg.WeightsCalibration = filepath.Join(t.TempDir(), "absent.json")
	cfg.MetricsCalibration = filepath.Join(t.TempDir(), "absent.json")

	result, err := New(Options{Config: cfg, Logger: testLogger()}).Run(context.Background())
	if err != nil {
		t.Fatalf("missing calibration files must degrade to defaults: %v", err)
	}
	if result.Stats.TotalProducts == 0 {
		t.Error("expected a normal run on default calibration")
	}
}
