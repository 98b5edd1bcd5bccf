package normalize

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/driftlab/trendfuse/internal/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		r     Range
		want  float64
	}{
		{"midpoint", 50, Range{Min: 0, Max: 100}, 0.5},
		{"minimum", 0, Range{Min: 0, Max: 100}, 0.0},
		{"maximum", 100, Range{Min: 0, Max: 100}, 1.0},
		{"below range clips to zero", -10, Range{Min: 0, Max: 100}, 0.0},
		{"above range clips to one", 250, Range{Min: 0, Max: 100}, 1.0},
		{"negative min", 1.2, Range{Min: -2, Max: 2}, 0.8},
		{"degenerate range is half", 42, Range{Min: 7, Max: 7}, 0.5},
		{"reverse inverts scale", 1, Range{Min: 1, Max: 1000, Reverse: true}, 1.0},
		{"reverse at max", 1000, Range{Min: 1, Max: 1000, Reverse: true}, 0.0},
		{"reverse below range clips to one", 0, Range{Min: 1, Max: 1000, Reverse: true}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeValue(tt.value, tt.r)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("normalizeValue(%v, %+v) = %v, want %v", tt.value, tt.r, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	products := []*catalog.Product{
		{
			Name:             "wireless earbuds",
			TrendMomentum:    1.2,
			TrendAvgInterest: 45,
			AliOrders:        15000,
			AmzBSR:           120,
		},
	}

	rows := Normalize(products, DefaultConfig(), testLogger())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	norm := rows[0].Norm
	checks := map[string]float64{
		MetricTrendMomentum:    0.8,
		MetricTrendAvgInterest: 0.45,
		MetricAliOrders:        0.3,
		MetricAmzBSR:           1 - (120-1)/999.0,
		MetricTikTokViews:      0.0,
	}
	for metric, want := range checks {
		if got := norm[metric]; math.Abs(got-want) > 0.001 {
			t.Errorf("norm[%s] = %v, want %v", metric, got, want)
		}
	}
}

func TestNormalize_MissingBSRReadsAsBestRank(t *testing.T) {
	// A product that never saw an Amazon record has rank zero, which the
	// reverse scale clips to the most favorable value.
	products := []*catalog.Product{{Name: "galaxy projector"}}

	rows := Normalize(products, DefaultConfig(), testLogger())
	if got := rows[0].Norm[MetricAmzBSR]; got != 1.0 {
		t.Errorf("norm[%s] = %v, want 1.0", MetricAmzBSR, got)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	rows := Normalize(nil, DefaultConfig(), testLogger())
	if rows == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestNormalize_CopiesProduct(t *testing.T) {
	p := &catalog.Product{Name: "wireless earbuds", AliOrders: 100}
	rows := Normalize([]*catalog.Product{p}, DefaultConfig(), testLogger())

	p.AliOrders = 999
	if rows[0].Product.AliOrders != 100 {
		t.Error("expected row to hold a defensive copy of the product")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults are valid", DefaultConfig(), false},
		{"unknown metric", Config{"bogus_metric": {Min: 0, Max: 1}}, true},
		{"max below min", Config{MetricAliOrders: {Min: 10, Max: 5}}, true},
		{"max equal min allowed", Config{MetricAliOrders: {Min: 5, Max: 5}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
