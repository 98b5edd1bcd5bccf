package ranking

import (
	"sort"

	"github.com/driftlab/trendfuse/internal/normalize"
)

// TrendScore computes the search-interest sub-score from normalized
// momentum and average interest.
func TrendScore(momentumNorm, avgInterestNorm float64) float64 {
	return momentumNorm*0.7 + avgInterestNorm*0.3
}

// VelocityScore computes the sales-velocity sub-score from normalized
// AliExpress order and review counts.
func VelocityScore(ordersNorm, reviewsNorm float64) float64 {
	return ordersNorm*0.6 + reviewsNorm*0.4
}

// PopularityScore computes the marketplace-popularity sub-score from
// normalized Amazon review count and best-sellers rank. The rank is
// already inverted during normalization, so a higher input is better here.
func PopularityScore(reviewsNorm, bsrNorm float64) float64 {
	return reviewsNorm*0.5 + bsrNorm*0.5
}

// ViralityScore computes the social-virality sub-score from normalized
// total views and video count.
func ViralityScore(viewsNorm, videoCountNorm float64) float64 {
	return viewsNorm*0.7 + videoCountNorm*0.3
}

// CompetitionScore averages the two marketplaces' normalized review
// counts as a proxy for market saturation. It enters the composite with
// a negative weight.
func CompetitionScore(amzReviewsNorm, aliReviewsNorm float64) float64 {
	return (amzReviewsNorm + aliReviewsNorm) / 2
}

// ScoredRow is a normalized row plus its sub-scores and the final
// composite score, all in [0,1].
type ScoredRow struct {
	normalize.Row

	TrendScore       float64
	VelocityScore    float64
	PopularityScore  float64
	ViralityScore    float64
	CompetitionScore float64
	CompositeScore   float64
}

// Score computes every sub-score and the weighted composite for one
// normalized row. A nil weights pointer uses the defaults.
func Score(row normalize.Row, weights *Weights) ScoredRow {
	if weights == nil {
		weights = DefaultWeights()
	}

	scored := ScoredRow{
		Row:              row,
		TrendScore:       TrendScore(row.Norm[normalize.MetricTrendMomentum], row.Norm[normalize.MetricTrendAvgInterest]),
		VelocityScore:    VelocityScore(row.Norm[normalize.MetricAliOrders], row.Norm[normalize.MetricAliReviews]),
		PopularityScore:  PopularityScore(row.Norm[normalize.MetricAmzReviews], row.Norm[normalize.MetricAmzBSR]),
		ViralityScore:    ViralityScore(row.Norm[normalize.MetricTikTokViews], row.Norm[normalize.MetricTikTokVideos]),
		CompetitionScore: CompetitionScore(row.Norm[normalize.MetricAmzReviews], row.Norm[normalize.MetricAliReviews]),
	}

	composite := scored.TrendScore*weights.Trend +
		scored.VelocityScore*weights.Velocity +
		scored.ViralityScore*weights.Virality +
		scored.PopularityScore*weights.Popularity +
		scored.CompetitionScore*weights.CompetitionPenalty

	scored.CompositeScore = clip01(composite)
	return scored
}

// Rank scores every row and sorts the result by composite score,
// highest first. The sort is stable: rows with equal scores keep their
// original relative order.
func Rank(rows []normalize.Row, weights *Weights) []ScoredRow {
	scored := make([]ScoredRow, 0, len(rows))
	for _, row := range rows {
		scored = append(scored, Score(row, weights))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].CompositeScore > scored[j].CompositeScore
	})
	return scored
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
