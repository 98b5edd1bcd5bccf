package normalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// CalibrationConfig is the JSON structure of the metric calibration
// file.
type CalibrationConfig struct {
	Version string `json:"version"` // Config version for future compatibility
	Metrics Config `json:"metrics"` // Range overrides by metric name
}

// LoadCalibration loads metric ranges from a JSON calibration file and
// merges them over the defaults, so partial files only override the
// ranges they name. An empty path returns the defaults. On read or
// parse failure the defaults are returned alongside the error for
// graceful degradation; an invalid merged configuration is returned as
// an error with no usable config, since a bad range is a contract
// violation rather than missing data.
func LoadCalibration(filePath string) (Config, error) {
	defaults := DefaultConfig()
	if filePath == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		slog.Warn("failed to read metric calibration file, using defaults",
			"path", filePath,
			"error", err)
		return defaults, fmt.Errorf("failed to read metric calibration file: %w", err)
	}

	var calibration CalibrationConfig
	if err := json.Unmarshal(data, &calibration); err != nil {
		slog.Warn("failed to parse metric calibration file, using defaults",
			"path", filePath,
			"error", err)
		return defaults, fmt.Errorf("failed to parse metric calibration file: %w", err)
	}

	merged := defaults
	for name, r := range calibration.Metrics {
		if _, ok := merged[name]; ok {
			slog.Info("metric range override",
				"metric", name,
				"min", r.Min,
				"max", r.Max,
				"reverse", r.Reverse)
		}
		merged[name] = r
	}

	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid metric calibration: %w", err)
	}
	return merged, nil
}
