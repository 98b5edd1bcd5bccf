package ranking

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Weights holds the composite-score weight configuration. The
// CompetitionPenalty is configured negative: saturated markets pull the
// composite down.
type Weights struct {
	Trend              float64 `json:"trend"`               // Weight for search-interest trend (default: 0.35)
	Velocity           float64 `json:"velocity"`            // Weight for AliExpress sales velocity (default: 0.25)
	Virality           float64 `json:"virality"`            // Weight for TikTok virality (default: 0.20)
	Popularity         float64 `json:"popularity"`          // Weight for Amazon popularity (default: 0.15)
	CompetitionPenalty float64 `json:"competition_penalty"` // Penalty for market saturation (default: -0.10)
}

// CalibrationConfig represents the JSON structure of the calibration file.
type CalibrationConfig struct {
	Version string  `json:"version"` // Config version for future compatibility
	Weights Weights `json:"weights"` // Weight configuration
}

// DefaultWeights returns the default composite weight configuration.
//
// Formula: composite = trend*0.35 + velocity*0.25 + virality*0.20 +
// popularity*0.15 + competition*(-0.10), clipped to [0, 1].
// The magnitudes deliberately do not sum to 1; this is a heuristic
// weighting, not a probability distribution.
func DefaultWeights() *Weights {
	return &Weights{
		Trend:              0.35,
		Velocity:           0.25,
		Virality:           0.20,
		Popularity:         0.15,
		CompetitionPenalty: -0.10,
	}
}

// Validate checks the weight configuration for contract violations.
// Positive-signal weights must lie in [0, 1]; the competition penalty
// must not be positive. Meant to fail fast at configuration-load time.
func (w *Weights) Validate() error {
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"trend", w.Trend},
		{"velocity", w.Velocity},
		{"virality", w.Virality},
		{"popularity", w.Popularity},
	} {
		if check.value < 0 || check.value > 1 {
			return fmt.Errorf("weight %q must be in [0, 1], got %v", check.name, check.value)
		}
	}
	if w.CompetitionPenalty > 0 {
		return fmt.Errorf("competition_penalty must not be positive, got %v", w.CompetitionPenalty)
	}
	return nil
}

// LoadCalibration loads scoring weights from a JSON calibration file.
// If the file doesn't exist or can't be read, returns default weights
// with an error so callers can degrade gracefully. Partial
// configurations are merged with defaults. A merged configuration that
// fails validation is a contract violation and returns no usable
// weights.
func LoadCalibration(filePath string) (*Weights, error) {
	if filePath == "" {
		return DefaultWeights(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		slog.Warn("failed to read weight calibration file, using defaults",
			"path", filePath,
			"error", err)
		return DefaultWeights(), fmt.Errorf("failed to read weight calibration file: %w", err)
	}

	var config CalibrationConfig
	if err := json.Unmarshal(data, &config); err != nil {
		slog.Warn("failed to parse weight calibration file, using defaults",
			"path", filePath,
			"error", err)
		return DefaultWeights(), fmt.Errorf("failed to parse weight calibration file: %w", err)
	}

	merged := MergeCalibration(DefaultWeights(), &config.Weights)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weight calibration: %w", err)
	}
	logCalibrationOverrides(DefaultWeights(), merged)

	return merged, nil
}

// MergeCalibration merges override weights with base weights. Only
// non-zero values from the override are applied, which allows partial
// overrides in the calibration file. A zero weight therefore cannot be
// expressed via calibration; use a vanishingly small value instead.
func MergeCalibration(base *Weights, override *Weights) *Weights {
	if base == nil {
		return DefaultWeights()
	}
	if override == nil {
		result := *base
		return &result
	}

	result := *base

	if override.Trend != 0 {
		result.Trend = override.Trend
	}
	if override.Velocity != 0 {
		result.Velocity = override.Velocity
	}
	if override.Virality != 0 {
		result.Virality = override.Virality
	}
	if override.Popularity != 0 {
		result.Popularity = override.Popularity
	}
	if override.CompetitionPenalty != 0 {
		result.CompetitionPenalty = override.CompetitionPenalty
	}

	return &result
}

// logCalibrationOverrides logs which weights were overridden from defaults.
func logCalibrationOverrides(defaults *Weights, loaded *Weights) {
	var overrides []string

	if loaded.Trend != defaults.Trend {
		overrides = append(overrides, fmt.Sprintf("trend: %.2f -> %.2f", defaults.Trend, loaded.Trend))
	}
	if loaded.Velocity != defaults.Velocity {
		overrides = append(overrides, fmt.Sprintf("velocity: %.2f -> %.2f", defaults.Velocity, loaded.Velocity))
	}
	if loaded.Virality != defaults.Virality {
		overrides = append(overrides, fmt.Sprintf("virality: %.2f -> %.2f", defaults.Virality, loaded.Virality))
	}
	if loaded.Popularity != defaults.Popularity {
		overrides = append(overrides, fmt.Sprintf("popularity: %.2f -> %.2f", defaults.Popularity, loaded.Popularity))
	}
	if loaded.CompetitionPenalty != defaults.CompetitionPenalty {
		overrides = append(overrides, fmt.Sprintf("competition_penalty: %.2f -> %.2f",
			defaults.CompetitionPenalty, loaded.CompetitionPenalty))
	}

	if len(overrides) > 0 {
		slog.Info("loaded weight calibration with overrides", "overrides", overrides)
	} else {
		slog.Info("loaded weight calibration (using all defaults)")
	}
}
