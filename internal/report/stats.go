package report

import (
	"github.com/driftlab/trendfuse/internal/ranking"
)

// SummaryStats describes one fusion run: coverage per source, how many
// products were corroborated by multiple sources, and the score spread.
type SummaryStats struct {
	TotalProducts       int     `json:"total_products"`
	WithTrendData       int     `json:"products_with_trend_data"`
	WithAliData         int     `json:"products_with_ali_data"`
	WithAmzData         int     `json:"products_with_amz_data"`
	WithTikTokData      int     `json:"products_with_tiktok_data"`
	WithMultipleSources int     `json:"products_with_multiple_sources"`
	AvgCompositeScore   float64 `json:"avg_composite_score"`
	TopScore            float64 `json:"top_score"`
}

// Summarize computes summary statistics over a scored table.
func Summarize(rows []ranking.ScoredRow) SummaryStats {
	stats := SummaryStats{TotalProducts: len(rows)}
	if len(rows) == 0 {
		return stats
	}

	var sum, top float64
	for _, row := range rows {
		p := row.Product
		if p.HasTrendData {
			stats.WithTrendData++
		}
		if p.HasAliData {
			stats.WithAliData++
		}
		if p.HasAmzData {
			stats.WithAmzData++
		}
		if p.HasTikTokData {
			stats.WithTikTokData++
		}
		if p.SourceCount() >= 2 {
			stats.WithMultipleSources++
		}
		sum += row.CompositeScore
		if row.CompositeScore > top {
			top = row.CompositeScore
		}
	}

	stats.AvgCompositeScore = Round(sum/float64(len(rows)), 3)
	stats.TopScore = Round(top, 3)
	return stats
}
