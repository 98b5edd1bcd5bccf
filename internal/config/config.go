// Package config provides configuration loading and validation for the
// fusion pipeline. It uses koanf to merge environment variables with
// optional file overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for a pipeline run.
type Config struct {
	Env string `koanf:"env"`

	// Collector output files. An empty path means the built-in sample
	// dataset is used for that source.
	TrendsFile     string `koanf:"trends_file"`
	AliExpressFile string `koanf:"aliexpress_file"`
	AmazonFile     string `koanf:"amazon_file"`
	TikTokFile     string `koanf:"tiktok_file"`

	// Output artifacts.
	OutputJSON string `koanf:"output_json"`
	OutputCSV  string `koanf:"output_csv"`
	TopN       int    `koanf:"top_n"`        // Products in the JSON results
	ExportTopN int    `koanf:"export_top_n"` // Products in the CSV export

	// Calibration files (optional; defaults apply when empty).
	WeightsCalibration string `koanf:"weights_calibration"`
	MetricsCalibration string `koanf:"metrics_calibration"`

	// Run archive (optional). When DATABASE_URL is empty, archiving is
	// disabled.
	DatabaseURL string `koanf:"database_url"`

	// R2 (Cloudflare Object Storage) mirror for exported artifacts
	// (optional, all-or-none).
	R2BucketName      string `koanf:"r2_bucket_name"`
	R2AccessKeyID     string `koanf:"r2_access_key_id"`
	R2SecretAccessKey string `koanf:"r2_secret_access_key"`
	R2Endpoint        string `koanf:"r2_endpoint"`
}

// Configuration validation errors.
var (
	ErrMissingR2BucketName      = errors.New("R2_BUCKET_NAME is required")
	ErrMissingR2AccessKeyID     = errors.New("R2_ACCESS_KEY_ID is required")
	ErrMissingR2SecretAccessKey = errors.New("R2_SECRET_ACCESS_KEY is required")
	ErrMissingR2Endpoint        = errors.New("R2_ENDPOINT is required")
	ErrInvalidTopN              = errors.New("TRENDFUSE_TOP_N must be a positive integer")
	ErrInvalidExportTopN        = errors.New("TRENDFUSE_EXPORT_TOP_N must be a positive integer")
)

// Default values for non-secret configuration.
const (
	DefaultEnv        = "development"
	DefaultOutputJSON = "products_results.json"
	DefaultOutputCSV  = "products_scored.csv"
	DefaultTopN       = 20
	DefaultExportTopN = 50
)

// Load reads configuration from environment variables and an optional
// YAML config file. Environment variables take precedence over file
// values. Returns the loaded config and a slice of validation errors
// (empty if valid). If a config file path is provided and the file
// cannot be loaded, an error is returned.
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")
	var loadErrs []error

	// Load from YAML file first if provided (lower precedence)
	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
	}

	topN, err := getEnvIntOrDefault("TRENDFUSE_TOP_N", k.Int("top_n"), DefaultTopN, ErrInvalidTopN)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}
	exportTopN, err := getEnvIntOrDefault("TRENDFUSE_EXPORT_TOP_N", k.Int("export_top_n"), DefaultExportTopN, ErrInvalidExportTopN)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	cfg := &Config{
		Env:            getEnvOrDefault("TRENDFUSE_ENV", k.String("env"), DefaultEnv),
		TrendsFile:     getEnvOrKoanf("TRENDFUSE_TRENDS_FILE", k, "trends_file"),
		AliExpressFile: getEnvOrKoanf("TRENDFUSE_ALIEXPRESS_FILE", k, "aliexpress_file"),
		AmazonFile:     getEnvOrKoanf("TRENDFUSE_AMAZON_FILE", k, "amazon_file"),
		TikTokFile:     getEnvOrKoanf("TRENDFUSE_TIKTOK_FILE", k, "tiktok_file"),

		OutputJSON: getEnvOrDefault("TRENDFUSE_OUTPUT_JSON", k.String("output_json"), DefaultOutputJSON),
		OutputCSV:  getEnvOrDefault("TRENDFUSE_OUTPUT_CSV", k.String("output_csv"), DefaultOutputCSV),
		TopN:       topN,
		ExportTopN: exportTopN,

		WeightsCalibration: getEnvOrKoanf("TRENDFUSE_WEIGHTS_CALIBRATION", k, "weights_calibration"),
		MetricsCalibration: getEnvOrKoanf("TRENDFUSE_METRICS_CALIBRATION", k, "metrics_calibration"),

		DatabaseURL: getEnvOrKoanf("DATABASE_URL", k, "database_url"),

		R2BucketName:      getEnvOrKoanf("R2_BUCKET_NAME", k, "r2_bucket_name"),
		R2AccessKeyID:     getEnvOrKoanf("R2_ACCESS_KEY_ID", k, "r2_access_key_id"),
		R2SecretAccessKey: getEnvOrKoanf("R2_SECRET_ACCESS_KEY", k, "r2_secret_access_key"),
		R2Endpoint:        getEnvOrKoanf("R2_ENDPOINT", k, "r2_endpoint"),
	}

	errs := cfg.Validate()
	errs = append(loadErrs, errs...)

	return cfg, errs
}

// getEnvOrKoanf returns the environment variable value if set, otherwise the koanf value.
func getEnvOrKoanf(envKey string, k *koanf.Koanf, koanfKey string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return k.String(koanfKey)
}

// getEnvOrDefault returns the environment variable value if set, otherwise the koanf value, or default.
func getEnvOrDefault(envKey string, koanfVal string, defaultVal string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	if koanfVal != "" {
		return koanfVal
	}
	return defaultVal
}

// getEnvIntOrDefault returns the environment variable as int if set,
// otherwise the koanf value, or default. Returns sentinel if the
// environment variable is set but cannot be parsed as an integer.
func getEnvIntOrDefault(envKey string, koanfVal int, defaultVal int, sentinel error) (int, error) {
	if val := os.Getenv(envKey); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("%s must be a valid integer: %w", envKey, sentinel)
		}
		return i, nil
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}

// Validate checks the configuration for contract violations.
// Returns a slice of validation errors (empty if valid).
func (c *Config) Validate() []error {
	var errs []error

	if c.TopN <= 0 {
		errs = append(errs, ErrInvalidTopN)
	}
	if c.ExportTopN <= 0 {
		errs = append(errs, ErrInvalidExportTopN)
	}

	// R2 configuration is optional. Only validate fields if any R2 value is set.
	if c.R2BucketName != "" || c.R2AccessKeyID != "" || c.R2SecretAccessKey != "" || c.R2Endpoint != "" {
		if c.R2BucketName == "" {
			errs = append(errs, ErrMissingR2BucketName)
		}
		if c.R2AccessKeyID == "" {
			errs = append(errs, ErrMissingR2AccessKeyID)
		}
		if c.R2SecretAccessKey == "" {
			errs = append(errs, ErrMissingR2SecretAccessKey)
		}
		if c.R2Endpoint == "" {
			errs = append(errs, ErrMissingR2Endpoint)
		}
	}

	return errs
}

// ArchiveEnabled reports whether the run archive is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

// R2Enabled reports whether the object-storage mirror is configured.
func (c *Config) R2Enabled() bool {
	return c.R2BucketName != ""
}

// LogSummary returns a summary of the configuration suitable for logging.
// All secrets are masked to prevent accidental exposure.
func (c *Config) LogSummary() map[string]string {
	return map[string]string{
		"env":                  c.Env,
		"trends_file":          orSample(c.TrendsFile),
		"aliexpress_file":      orSample(c.AliExpressFile),
		"amazon_file":          orSample(c.AmazonFile),
		"tiktok_file":          orSample(c.TikTokFile),
		"output_json":          c.OutputJSON,
		"output_csv":           c.OutputCSV,
		"top_n":                fmt.Sprintf("%d", c.TopN),
		"export_top_n":         fmt.Sprintf("%d", c.ExportTopN),
		"weights_calibration":  c.WeightsCalibration,
		"metrics_calibration":  c.MetricsCalibration,
		"database_url":         maskDatabaseURL(c.DatabaseURL),
		"r2_bucket_name":       c.R2BucketName,
		"r2_access_key_id":     maskSecret(c.R2AccessKeyID),
		"r2_secret_access_key": maskSecret(c.R2SecretAccessKey),
		"r2_endpoint":          c.R2Endpoint,
	}
}

// orSample labels an unset collector file as using built-in samples.
func orSample(path string) string {
	if path == "" {
		return "<built-in samples>"
	}
	return path
}

// maskSecret masks a secret value, showing only the first 4 characters
// followed by ****. If the secret is shorter than 8 characters, it's
// fully masked.
func maskSecret(s string) string {
	if s == "" {
		return "<not set>"
	}
	if len(s) < 8 {
		return "****"
	}
	return s[:4] + "****"
}

// maskDatabaseURL masks the password in a database URL.
func maskDatabaseURL(s string) string {
	if s == "" {
		return "<not set>"
	}

	schemeEnd := strings.Index(s, "://")
	if schemeEnd == -1 {
		return maskSecret(s)
	}

	rest := s[schemeEnd+3:]
	atIndex := strings.Index(rest, "@")
	if atIndex == -1 {
		return s // No credentials in URL
	}

	colonIndex := strings.Index(rest[:atIndex], ":")
	if colonIndex == -1 {
		return s // No password (only username)
	}

	scheme := s[:schemeEnd+3]
	user := rest[:colonIndex]
	hostAndPath := rest[atIndex:]

	return scheme + user + ":****" + hostAndPath
}
