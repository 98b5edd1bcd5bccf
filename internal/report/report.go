// Package report turns scored rows into display records for export:
// rounded scores, human-readable counters, and source attribution.
package report

import (
	"fmt"
	"math"

	"github.com/driftlab/trendfuse/internal/catalog"
	"github.com/driftlab/trendfuse/internal/ranking"
)

// Source attribution display names, in their fixed output order.
const (
	SourceTrends     = "Google Trends"
	SourceAliExpress = "AliExpress"
	SourceAmazon     = "Amazon"
	SourceTikTok     = "TikTok"
)

// DisplayRecord is one ranked product prepared for the JSON results
// file and the CSV export. Several fields are aliases kept for
// downstream consumers that predate the current naming.
type DisplayRecord struct {
	ProductName   string  `json:"product_name"`
	Score         float64 `json:"score"`
	TrendScore    float64 `json:"trend_score"`
	VelocityScore float64 `json:"velocity_score"`
	Popularity    float64 `json:"popularity_score"`
	Virality      float64 `json:"virality_score"`

	TrendMomentum float64 `json:"trend_momentum"`
	TrendSlope    float64 `json:"trend_slope"` // Alias of trend_momentum

	AliOrders int `json:"ali_orders"`
	Orders    int `json:"orders"` // Alias of ali_orders

	AliReviews int `json:"ali_reviews"`
	AmzReviews int `json:"amz_reviews"`
	Reviews    int `json:"reviews"` // Alias of amz_reviews

	TikTokTotalViews int64  `json:"tiktok_total_views"`
	TikTokViews      string `json:"tiktok_views"` // Formatted magnitude
	TikTokVideos     int    `json:"tiktok_videos"`

	AliPrice  float64 `json:"ali_price"`
	AmzPrice  float64 `json:"amz_price"`
	AliRating float64 `json:"ali_rating"`
	AmzRating float64 `json:"amz_rating"`

	AliURL     string `json:"ali_url"`
	LinkAli    string `json:"link_ali"` // Alias of ali_url
	AmzURL     string `json:"amz_url"`
	LinkAmazon string `json:"link_amazon"` // Alias of amz_url
	TikTokURL  string `json:"tiktok_url"`
	LinkTikTok string `json:"link_tiktok"` // Alias of tiktok_url

	RelatedQueries []string `json:"related_queries"`
	DataSources    []string `json:"data_sources"`
}

// TopN converts up to n highest-ranked rows into display records. The
// input is expected to be sorted already (ranking.Rank output).
func TopN(rows []ranking.ScoredRow, n int) []DisplayRecord {
	if n > len(rows) {
		n = len(rows)
	}
	if n < 0 {
		n = 0
	}

	records := make([]DisplayRecord, 0, n)
	for _, row := range rows[:n] {
		p := row.Product
		records = append(records, DisplayRecord{
			ProductName:   p.Name,
			Score:         Round(row.CompositeScore, 3),
			TrendScore:    Round(row.TrendScore, 3),
			VelocityScore: Round(row.VelocityScore, 3),
			Popularity:    Round(row.PopularityScore, 3),
			Virality:      Round(row.ViralityScore, 3),

			TrendMomentum: Round(p.TrendMomentum, 3),
			TrendSlope:    Round(p.TrendMomentum, 2),

			AliOrders: p.AliOrders,
			Orders:    p.AliOrders,

			AliReviews: p.AliReviews,
			AmzReviews: p.AmzReviews,
			Reviews:    p.AmzReviews,

			TikTokTotalViews: p.TikTokTotalViews,
			TikTokViews:      FormatCount(p.TikTokTotalViews),
			TikTokVideos:     p.TikTokVideoCount,

			AliPrice:  Round(p.AliPrice, 2),
			AmzPrice:  Round(p.AmzPrice, 2),
			AliRating: Round(p.AliRating, 1),
			AmzRating: Round(p.AmzRating, 1),

			AliURL:     p.AliURL,
			LinkAli:    p.AliURL,
			AmzURL:     p.AmzURL,
			LinkAmazon: p.AmzURL,
			TikTokURL:  p.TikTokURL,
			LinkTikTok: p.TikTokURL,

			RelatedQueries: p.RelatedQueries,
			DataSources:    DataSources(&p),
		})
	}
	return records
}

// DataSources returns the attribution list for a product, derived from
// its presence flags, in fixed order.
func DataSources(p *catalog.Product) []string {
	sources := []string{}
	if p.HasTrendData {
		sources = append(sources, SourceTrends)
	}
	if p.HasAliData {
		sources = append(sources, SourceAliExpress)
	}
	if p.HasAmzData {
		sources = append(sources, SourceAmazon)
	}
	if p.HasTikTokData {
		sources = append(sources, SourceTikTok)
	}
	return sources
}

// FormatCount renders a large counter as a compact magnitude string:
// 1,200,000 becomes "1.2M", 4,500 becomes "4.5K", smaller values print
// as plain integers.
func FormatCount(n int64) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
