// Package normalize rescales heterogeneous product metrics onto a
// common [0,1] scale using per-metric range configuration.
package normalize

import (
	"fmt"
	"log/slog"

	"github.com/driftlab/trendfuse/internal/catalog"
)

// Metric names. These key both the range configuration and the
// normalized values on each row.
const (
	MetricTrendMomentum    = "trend_momentum"
	MetricTrendAvgInterest = "trend_avg_interest"
	MetricAliOrders        = "ali_orders"
	MetricAliReviews       = "ali_reviews"
	MetricAmzReviews       = "amz_reviews"
	MetricAmzBSR           = "amz_bsr"
	MetricTikTokViews      = "tiktok_total_views"
	MetricTikTokVideos     = "tiktok_video_count"
)

// Range is the normalization window for one metric. When Reverse is
// set, a smaller raw value is more favorable and the scale is inverted.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Reverse bool    `json:"reverse,omitempty"`
}

// Config maps metric names to their normalization ranges. It is passed
// explicitly into Normalize; the algorithm never reads process-wide
// defaults.
type Config map[string]Range

// DefaultConfig returns the calibrated metric ranges. Ranges reflect
// realistic magnitudes per source rather than observed batch extremes,
// so scores are comparable across runs.
func DefaultConfig() Config {
	return Config{
		MetricTrendMomentum:    {Min: -2, Max: 2},
		MetricTrendAvgInterest: {Min: 0, Max: 100},
		MetricAliOrders:        {Min: 0, Max: 50000},
		MetricAliReviews:       {Min: 0, Max: 5000},
		MetricAmzReviews:       {Min: 0, Max: 50000},
		MetricAmzBSR:           {Min: 1, Max: 1000, Reverse: true},
		MetricTikTokViews:      {Min: 0, Max: 10000000},
		MetricTikTokVideos:     {Min: 0, Max: 100},
	}
}

// knownMetrics is the set of metric names the normalizer can read off a
// Product.
var knownMetrics = map[string]bool{
	MetricTrendMomentum:    true,
	MetricTrendAvgInterest: true,
	MetricAliOrders:        true,
	MetricAliReviews:       true,
	MetricAmzReviews:       true,
	MetricAmzBSR:           true,
	MetricTikTokViews:      true,
	MetricTikTokVideos:     true,
}

// Validate checks the configuration for contract violations. It is
// meant to run at configuration-load time so a bad range fails fast
// rather than mid-pipeline.
func (c Config) Validate() error {
	for name, r := range c {
		if !knownMetrics[name] {
			return fmt.Errorf("unknown metric %q in normalization config", name)
		}
		if r.Max < r.Min {
			return fmt.Errorf("metric %q has max %v below min %v", name, r.Max, r.Min)
		}
	}
	return nil
}

// Row is a read-only derived view: a defensive copy of a Product plus
// one normalized value per configured metric, each in [0,1].
type Row struct {
	Product catalog.Product
	Norm    map[string]float64
}

// Normalize rescales every configured metric of every product onto
// [0,1]. A missing metric value reads as zero. When a range has
// max == min the normalized value is exactly 0.5: there is no
// information to discriminate on, and the constant also avoids a
// division by zero.
func Normalize(products []*catalog.Product, cfg Config, logger *slog.Logger) []Row {
	if logger == nil {
		logger = slog.Default()
	}
	if len(products) == 0 {
		logger.Warn("no products to normalize")
		return []Row{}
	}

	rows := make([]Row, 0, len(products))
	for _, p := range products {
		row := Row{
			Product: *p,
			Norm:    make(map[string]float64, len(cfg)),
		}
		for name, r := range cfg {
			row.Norm[name] = normalizeValue(metricValue(p, name), r)
		}
		rows = append(rows, row)
	}

	logger.Info("normalized product metrics", "products", len(rows), "metrics", len(cfg))
	return rows
}

// normalizeValue maps one raw value onto [0,1] per its range.
func normalizeValue(value float64, r Range) float64 {
	if r.Max == r.Min {
		return 0.5
	}
	scaled := (value - r.Min) / (r.Max - r.Min)
	if r.Reverse {
		scaled = 1 - scaled
	}
	return clip01(scaled)
}

// metricValue reads the raw value of a named metric off a Product.
// Unknown names read as zero; Validate rejects them up front.
func metricValue(p *catalog.Product, name string) float64 {
	switch name {
	case MetricTrendMomentum:
		return p.TrendMomentum
	case MetricTrendAvgInterest:
		return p.TrendAvgInterest
	case MetricAliOrders:
		return float64(p.AliOrders)
	case MetricAliReviews:
		return float64(p.AliReviews)
	case MetricAmzReviews:
		return float64(p.AmzReviews)
	case MetricAmzBSR:
		return float64(p.AmzBSR)
	case MetricTikTokViews:
		return float64(p.TikTokTotalViews)
	case MetricTikTokVideos:
		return float64(p.TikTokVideoCount)
	default:
		return 0
	}
}

// clip01 clamps v to [0,1].
func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
