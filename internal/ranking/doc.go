// Package ranking combines normalized product metrics into sub-scores
// and a weighted composite desirability score, with calibration support.
//
// Basic Usage:
//
//	// Load calibration (typically at startup)
//	weights, err := ranking.LoadCalibration("examples/weights_calibration.json")
//	if err != nil {
//		log.Warn("using default weights", "error", err)
//	}
//
//	// Score and rank a normalized table
//	rows := normalize.Normalize(products, metricConfig, logger)
//	ranked := ranking.Rank(rows, weights)
//
// Sub-scores:
//
// Every sub-score is a convex combination of normalized metrics, so each
// is in [0, 1] by construction. The composite applies the configured
// weights (the competition weight is negative: it is a market-saturation
// penalty) and clips the result back to [0, 1].
//
// Calibration:
//
// The calibration system allows deploy-time tuning of scoring weights via
// a JSON configuration file loaded at startup, without code changes. The
// weights are a deliberate heuristic: their magnitudes do not sum to 1.
package ranking
