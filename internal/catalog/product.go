// Package catalog holds the canonical Product entities fused from all
// sources and the resolver that matches incoming records to them
// without a shared key.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/driftlab/trendfuse/internal/source"
)

// Product is the canonical fused entity. Each source contributes only
// its own named fields; fields are additive across sources and
// last-write-wins within a source.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Presence flags, set exactly once a matching source contributes.
	HasTrendData  bool `json:"has_trend_data"`
	HasAliData    bool `json:"has_ali_data"`
	HasAmzData    bool `json:"has_amz_data"`
	HasTikTokData bool `json:"has_tiktok_data"`

	// Trend fields.
	TrendMomentum    float64  `json:"trend_momentum"`
	TrendAvgInterest float64  `json:"trend_avg_interest"`
	TrendMaxInterest float64  `json:"trend_max_interest"`
	RelatedQueries   []string `json:"related_queries"`

	// AliExpress fields.
	AliOrders  int     `json:"ali_orders"`
	AliReviews int     `json:"ali_reviews"`
	AliRating  float64 `json:"ali_rating"`
	AliPrice   float64 `json:"ali_price"`
	AliURL     string  `json:"ali_url"`

	// Amazon fields.
	AmzReviews int     `json:"amz_reviews"`
	AmzRating  float64 `json:"amz_rating"`
	AmzPrice   float64 `json:"amz_price"`
	AmzBSR     int     `json:"amz_bsr"`
	AmzIsPrime bool    `json:"amz_is_prime"`
	AmzURL     string  `json:"amz_url"`

	// TikTok fields, aggregated per keyword across videos.
	TikTokVideoCount    int                   `json:"tiktok_video_count"`
	TikTokTotalViews    int64                 `json:"tiktok_total_views"`
	TikTokTotalLikes    int64                 `json:"tiktok_total_likes"`
	TikTokTotalComments int64                 `json:"tiktok_total_comments"`
	TikTokTotalShares   int64                 `json:"tiktok_total_shares"`
	TikTokAvgViews      float64               `json:"tiktok_avg_views"`
	TikTokURL           string                `json:"tiktok_url"`
	TikTokSampleVideos  []source.TikTokRecord `json:"tiktok_sample_videos,omitempty"`
}

// SourceCount returns the number of sources that have contributed data.
func (p *Product) SourceCount() int {
	n := 0
	for _, has := range []bool{p.HasTrendData, p.HasAliData, p.HasAmzData, p.HasTikTokData} {
		if has {
			n++
		}
	}
	return n
}
