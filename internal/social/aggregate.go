package social

import (
	"github.com/driftlab/trendfuse/internal/source"
)

// Aggregate is the per-keyword engagement total across all videos that
// mentioned the keyword. It is pushed through the entity resolver
// exactly once per keyword, not once per video.
type Aggregate struct {
	Keyword       string
	VideoCount    int
	TotalViews    int64
	TotalLikes    int64
	TotalComments int64
	TotalShares   int64
	AvgViews      float64
	SampleURL     string
	SampleVideos  []source.TikTokRecord
}

// AggregateVideos groups videos by the product keywords extracted from
// their titles and hashtags, summing engagement per keyword. Aggregates
// are returned in first-mention order so downstream resolution is
// deterministic. The first non-empty video URL per keyword becomes the
// representative link, and up to MaxSampleVideos videos are retained.
func AggregateVideos(videos []source.TikTokRecord) []Aggregate {
	byKeyword := make(map[string]*Aggregate)
	var order []string

	for _, video := range videos {
		keywords := ExtractCandidateKeywords(video.Title, video.Hashtags)
		for _, keyword := range keywords {
			agg, ok := byKeyword[keyword]
			if !ok {
				agg = &Aggregate{Keyword: keyword}
				byKeyword[keyword] = agg
				order = append(order, keyword)
			}

			agg.VideoCount++
			agg.TotalViews += video.Views
			agg.TotalLikes += video.Likes
			agg.TotalComments += video.Comments
			agg.TotalShares += video.Shares
			if agg.SampleURL == "" && video.URL != "" {
				agg.SampleURL = video.URL
			}
			if len(agg.SampleVideos) < MaxSampleVideos {
				agg.SampleVideos = append(agg.SampleVideos, video)
			}
		}
	}

	aggregates := make([]Aggregate, 0, len(order))
	for _, keyword := range order {
		agg := byKeyword[keyword]
		divisor := agg.VideoCount
		if divisor < 1 {
			divisor = 1
		}
		agg.AvgViews = float64(agg.TotalViews) / float64(divisor)
		aggregates = append(aggregates, *agg)
	}
	return aggregates
}
