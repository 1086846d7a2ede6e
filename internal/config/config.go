// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New builds a Config with defaults; Load layers a YAML file and env vars on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/okian/pitchgen/internal/domain/datasets"
	"golang.org/x/text/language"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Seed is used when a request does not name one.
	Seed int64 `koanf:"seed"`

	SessionCount   int     `koanf:"session_count"`
	EventCount     int     `koanf:"event_count"`
	TrackingFrames int     `koanf:"tracking_frames"`
	TrackingHz     float64 `koanf:"tracking_hz"`
	WellnessDays   int     `koanf:"wellness_days"`

	// CacheSize bounds the number of generated tables kept in memory.
	// Zero or less keeps everything.
	CacheSize int `koanf:"cache_size"`

	// PreviewRows is the row count printed by the diagnostic report.
	PreviewRows int `koanf:"preview_rows"`

	// Locale is a BCP 47 tag used to format counts, e.g. "en" or "de".
	Locale string `koanf:"locale"`

	// MetricsNamespace prefixes every Prometheus metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`

	// MetricsLabels are constant labels on every series. YAML only.
	MetricsLabels map[string]string `koanf:"metrics_labels"`

	// MetricsBuckets overrides the latency histogram buckets in milliseconds.
	// YAML only; must be strictly increasing.
	MetricsBuckets []float64 `koanf:"metrics_buckets"`
}

var metricName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		Seed:           datasets.DefaultSeed,
		SessionCount:   datasets.DefaultSessionCount,
		EventCount:     datasets.DefaultEventCount,
		TrackingFrames: datasets.DefaultFrames,
		TrackingHz:     datasets.DefaultSampleRateHz,
		WellnessDays:   datasets.DefaultWellnessDays,
		CacheSize:      64,
		PreviewRows:    3,
		Locale:         "en",

		MetricsNamespace: "pitchgen",
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	positive := []struct {
		name string
		v    int
	}{
		{"session_count", c.SessionCount},
		{"event_count", c.EventCount},
		{"tracking_frames", c.TrackingFrames},
		{"wellness_days", c.WellnessDays},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.TrackingHz <= 0 {
		return fmt.Errorf("%w: tracking_hz must be positive, got %g", ErrInvalidConfig, c.TrackingHz)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("%w: preview_rows must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return c.validateMetrics()
}

func (c *Config) validateMetrics() error {
	if !metricName.MatchString(c.MetricsNamespace) {
		return fmt.Errorf("%w: metrics_namespace %q is not a valid metric name", ErrInvalidConfig, c.MetricsNamespace)
	}
	for name := range c.MetricsLabels {
		if !metricName.MatchString(name) || strings.HasPrefix(name, "__") {
			return fmt.Errorf("%w: metrics_labels key %q is not a valid label name", ErrInvalidConfig, name)
		}
	}
	for i := 1; i < len(c.MetricsBuckets); i++ {
		if c.MetricsBuckets[i] <= c.MetricsBuckets[i-1] {
			return fmt.Errorf("%w: metrics_buckets must be strictly increasing", ErrInvalidConfig)
		}
	}
	return nil
}

// Language parses Locale.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	return tag, nil
}
