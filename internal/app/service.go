// Package service ties the dataset generators to the cache, metrics and
// logging, and implements the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"time"

	repository "github.com/okian/pitchgen/internal/adapters/repository"
	"github.com/okian/pitchgen/internal/domain/datasets"
	"github.com/okian/pitchgen/internal/domain/table"
	"github.com/okian/pitchgen/pkg/logger"
	"github.com/okian/pitchgen/pkg/metrics"
)

// Service generates dataset tables on demand and caches them by seed.
type Service struct {
	store repository.Store

	// Configuration
	seed           int64
	sessionCount   int
	eventCount     int
	trackingFrames int
	trackingHz     float64
	wellnessDays   int
	cacheSize      int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed sets the seed used when a request names none.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithSessionCount sets the number of generated sessions.
func WithSessionCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sessionCount = n
		}
	}
}

// WithEventCount sets the number of generated events.
func WithEventCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.eventCount = n
		}
	}
}

// WithTracking sets the frame count and sampling rate of the tracking table.
func WithTracking(frames int, hz float64) Option {
	return func(s *Service) {
		if frames > 0 {
			s.trackingFrames = frames
		}
		if hz > 0 {
			s.trackingHz = hz
		}
	}
}

// WithWellnessDays sets the questionnaire window.
func WithWellnessDays(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.wellnessDays = n
		}
	}
}

// WithCacheSize bounds the table cache. Zero or negative means unbounded.
func WithCacheSize(n int) Option {
	return func(s *Service) {
		s.cacheSize = n
	}
}

// WithStore replaces the table cache.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		seed:           datasets.DefaultSeed,
		sessionCount:   datasets.DefaultSessionCount,
		eventCount:     datasets.DefaultEventCount,
		trackingFrames: datasets.DefaultFrames,
		trackingHz:     datasets.DefaultSampleRateHz,
		wellnessDays:   datasets.DefaultWellnessDays,
		cacheSize:      repository.DefaultMaxEntries,
		logger:         logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithMaxEntries(s.cacheSize))
	}
	return s
}

// DefaultSeed returns the seed used when a caller has none.
func (s *Service) DefaultSeed() int64 {
	return s.seed
}

// Names lists every dataset in report order.
func (s *Service) Names() []string {
	return Names()
}

// Title returns the report heading for a dataset.
func (s *Service) Title(name string) (string, error) {
	g, err := lookup(name)
	if err != nil {
		return "", err
	}
	return g.title(s.trackingHz), nil
}

// Dataset returns the named table generated with seed, from the cache when
// it was built before.
func (s *Service) Dataset(ctx context.Context, name string, seed int64) (table.Table, error) {
	g, err := lookup(name)
	if err != nil {
		metrics.RecordErrorByComponent("service", "unknown_dataset")
		return table.Table{}, err
	}

	key := repository.Key{Dataset: name, Seed: seed}
	t, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		metrics.RecordCacheHit(name)
		s.logger.Debug(ctx, "dataset served from cache", logger.String("dataset", name), logger.Int64("seed", seed))
		return t, nil
	case !errors.Is(err, repository.ErrNotFound):
		metrics.RecordErrorByComponent("repository", "get")
		return table.Table{}, err
	}
	metrics.RecordCacheMiss(name)

	start := time.Now()
	t = g.build(s.generatorOptions(seed))
	elapsed := time.Since(start)

	metrics.RecordGenerated(name, t.NumRows())
	metrics.RecordGenerationLatency(name, float64(elapsed.Microseconds())/1000)
	s.logger.Info(ctx, "dataset generated",
		logger.String("dataset", name),
		logger.Int64("seed", seed),
		logger.Int("rows", t.NumRows()),
		logger.Int("columns", t.NumCols()),
		logger.Any("duration", elapsed),
	)

	if err := s.store.Put(ctx, key, t); err != nil {
		metrics.RecordErrorByComponent("repository", "put")
		s.logger.Warn(ctx, "failed to cache dataset", logger.String("dataset", name), logger.Error(err))
		return t, nil
	}
	metrics.UpdateCacheSize(s.store.Len(ctx))
	return t, nil
}

func (s *Service) generatorOptions(seed int64) []datasets.Option {
	return []datasets.Option{
		datasets.WithSeed(seed),
		datasets.WithSessionCount(s.sessionCount),
		datasets.WithEventCount(s.eventCount),
		datasets.WithFrames(s.trackingFrames),
		datasets.WithSampleRate(s.trackingHz),
		datasets.WithWellnessDays(s.wellnessDays),
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	cached := s.store.Len(context.Background())
	metrics.UpdateCacheSize(cached)

	return map[string]interface{}{
		"datasets":       Names(),
		"defaultSeed":    s.seed,
		"sessionCount":   s.sessionCount,
		"eventCount":     s.eventCount,
		"trackingFrames": s.trackingFrames,
		"trackingHz":     s.trackingHz,
		"wellnessDays":   s.wellnessDays,
		"cacheSize":      s.cacheSize,
		"cachedTables":   cached,
	}
}
