package datasets

import (
	"github.com/okian/pitchgen/internal/domain/model"
	"github.com/okian/pitchgen/internal/domain/sampling"
)

// WellnessAthletes answer the daily questionnaire.
var WellnessAthletes = []string{"ATL_001", "ATL_002", "ATL_003", "ATL_005", "ATL_008"}

// Questionnaire ranges. Scores are half-open, so ScoreRange covers 1..5.
var (
	ScoreRange = sampling.IntRange{Lo: 1, Hi: 6}
	HRVRange   = sampling.IntRange{Lo: 45, Hi: 85}
)

const (
	minSleepHours    = 6.0
	maxSleepHours    = 9.0
	sleepHoursPlaces = 1
)

// Wellness generates one questionnaire per athlete per day, day-major.
func Wellness(opts ...Option) []model.WellnessEntry {
	s := newSettings(opts)
	src := sampling.NewSource(s.seed)

	out := make([]model.WellnessEntry, 0, s.wellnessDays*len(WellnessAthletes))
	for _, day := range dayRange(s.startDate, s.wellnessDays) {
		for _, athlete := range WellnessAthletes {
			out = append(out, model.WellnessEntry{
				Date:         day,
				AthleteID:    athlete,
				SleepQuality: src.Int(ScoreRange),
				SleepHours:   sampling.Round(src.Uniform(minSleepHours, maxSleepHours), sleepHoursPlaces),
				Fatigue:      src.Int(ScoreRange),
				Stress:       src.Int(ScoreRange),
				Soreness:     src.Int(ScoreRange),
				Mood:         src.Int(ScoreRange),
				HRVMs:        src.Int(HRVRange),
			})
		}
	}
	return out
}
