// Package datasets generates the synthetic course tables: athlete
// profiles, GPS sessions, positional tracking, match events and wellness
// questionnaires. Every generator owns a random source seeded at call
// time, so the output depends only on the options passed in.
package datasets

import "time"

// Default generation parameters.
const (
	DefaultSeed         int64   = 42
	DefaultSessionCount         = 60
	DefaultSessionDays          = 30
	DefaultEventCount           = 150
	DefaultFrames               = 300 // 30 s at 10 Hz
	DefaultSampleRateHz float64 = 10
	DefaultWellnessDays         = 14
)

// DefaultStartDate is the first calendar day of every date range.
var DefaultStartDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Option applies a configuration option to a generator call.
type Option func(*settings)

type settings struct {
	seed         int64
	sessionCount int
	sessionDays  int
	eventCount   int
	frames       int
	sampleRateHz float64
	wellnessDays int
	startDate    time.Time
}

func newSettings(opts []Option) settings {
	s := settings{
		seed:         DefaultSeed,
		sessionCount: DefaultSessionCount,
		sessionDays:  DefaultSessionDays,
		eventCount:   DefaultEventCount,
		frames:       DefaultFrames,
		sampleRateHz: DefaultSampleRateHz,
		wellnessDays: DefaultWellnessDays,
		startDate:    DefaultStartDate,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithSeed sets the seed of the call's random source.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

// WithSessionCount sets how many sessions Sessions produces.
func WithSessionCount(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.sessionCount = n
		}
	}
}

// WithSessionDays sets the width of the date range sessions are drawn from.
func WithSessionDays(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.sessionDays = n
		}
	}
}

// WithEventCount sets how many events Events produces.
func WithEventCount(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.eventCount = n
		}
	}
}

// WithFrames sets the number of tracking frames per athlete.
func WithFrames(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.frames = n
		}
	}
}

// WithSampleRate sets the tracking sampling rate in Hz.
func WithSampleRate(hz float64) Option {
	return func(s *settings) {
		if hz > 0 {
			s.sampleRateHz = hz
		}
	}
}

// WithWellnessDays sets the number of questionnaire days.
func WithWellnessDays(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.wellnessDays = n
		}
	}
}

// WithStartDate sets the first day of the session and wellness date ranges.
func WithStartDate(t time.Time) Option {
	return func(s *settings) {
		if !t.IsZero() {
			s.startDate = t.UTC().Truncate(24 * time.Hour)
		}
	}
}

// dayRange returns n consecutive days starting at start.
func dayRange(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
