package datasets

import (
	"fmt"

	"github.com/okian/pitchgen/internal/domain/model"
	"github.com/okian/pitchgen/internal/domain/sampling"
)

// SessionAthletes are the athletes wearing GPS units.
var SessionAthletes = []string{
	"ATL_001", "ATL_002", "ATL_003", "ATL_004", "ATL_005", "ATL_008", "ATL_012", "ATL_015",
}

// SessionTypeWeights is the categorical distribution of session types.
var SessionTypeWeights = sampling.MustWeighted(
	sampling.W(model.Training, 0.60),
	sampling.W(model.Match, 0.25),
	sampling.W(model.Recovery, 0.15),
)

// SessionBounds are the per-type ranges of the primary session metrics.
// All ranges are half-open.
type SessionBounds struct {
	DistanceM   sampling.IntRange
	HSRM        sampling.IntRange
	SprintM     sampling.IntRange
	DurationMin sampling.IntRange
	RPE         sampling.IntRange
}

// BoundsFor returns the metric ranges for session type t.
func BoundsFor(t model.SessionType) SessionBounds {
	switch t {
	case model.Match:
		return SessionBounds{
			DistanceM:   sampling.IntRange{Lo: 9000, Hi: 12500},
			HSRM:        sampling.IntRange{Lo: 600, Hi: 1100},
			SprintM:     sampling.IntRange{Lo: 200, Hi: 450},
			DurationMin: sampling.IntRange{Lo: 85, Hi: 98},
			RPE:         sampling.IntRange{Lo: 7, Hi: 10},
		}
	case model.Training:
		return SessionBounds{
			DistanceM:   sampling.IntRange{Lo: 4000, Hi: 7500},
			HSRM:        sampling.IntRange{Lo: 100, Hi: 500},
			SprintM:     sampling.IntRange{Lo: 30, Hi: 180},
			DurationMin: sampling.IntRange{Lo: 60, Hi: 90},
			RPE:         sampling.IntRange{Lo: 4, Hi: 8},
		}
	case model.Recovery:
		return SessionBounds{
			DistanceM:   sampling.IntRange{Lo: 2000, Hi: 4000},
			HSRM:        sampling.IntRange{Lo: 0, Hi: 100},
			SprintM:     sampling.IntRange{Lo: 0, Hi: 30},
			DurationMin: sampling.IntRange{Lo: 30, Hi: 50},
			RPE:         sampling.IntRange{Lo: 2, Hi: 4},
		}
	}
	panic(fmt.Sprintf("datasets: no bounds for session type %d", int(t)))
}

// Secondary session metric ranges, shared by every session type.
var (
	sprintCountJitter = sampling.IntRange{Lo: 0, Hi: 5}
	accelerationRange = sampling.IntRange{Lo: 20, Hi: 80}
	decelerationRange = sampling.IntRange{Lo: 18, Hi: 75}
	hrAvgRange        = sampling.IntRange{Lo: 130, Hi: 170}
	hrMaxRange        = sampling.IntRange{Lo: 175, Hi: 198}
)

const (
	metersPerSprint     = 25
	playerLoadPerMeter  = 0.08
	playerLoadNoise     = 50.0
	hrZone5MinPct       = 5.0
	hrZone5MaxPct       = 25.0
	sessionIDFormat     = "SES_%04d"
	sessionMetricPlaces = 1
)

// Sessions generates GPS session rows. Each row draws an athlete, a session
// type and a date, then the type-dependent metrics and the derived ones.
func Sessions(opts ...Option) []model.Session {
	s := newSettings(opts)
	src := sampling.NewSource(s.seed)
	days := dayRange(s.startDate, s.sessionDays)

	out := make([]model.Session, 0, s.sessionCount)
	for i := 0; i < s.sessionCount; i++ {
		athlete := sampling.Choice(src, SessionAthletes)
		typ := SessionTypeWeights.Pick(src)
		day := sampling.Choice(src, days)

		b := BoundsFor(typ)
		dist := src.Int(b.DistanceM)
		hsr := src.Int(b.HSRM)
		sprint := src.Int(b.SprintM)
		duration := src.Int(b.DurationMin)
		rpe := src.Int(b.RPE)

		out = append(out, model.Session{
			ID:             fmt.Sprintf(sessionIDFormat, i+1),
			AthleteID:      athlete,
			Date:           day,
			Type:           typ,
			DurationMin:    duration,
			TotalDistanceM: dist,
			HSRM:           hsr,
			SprintM:        sprint,
			SprintCount:    sprint/metersPerSprint + src.Int(sprintCountJitter),
			Accelerations:  src.Int(accelerationRange),
			Decelerations:  src.Int(decelerationRange),
			PlayerLoad:     sampling.Round(float64(dist)*playerLoadPerMeter+src.Uniform(-playerLoadNoise, playerLoadNoise), sessionMetricPlaces),
			RPE:            rpe,
			HRAvg:          src.Int(hrAvgRange),
			HRMax:          src.Int(hrMaxRange),
			HRZone5Pct:     sampling.Round(src.Uniform(hrZone5MinPct, hrZone5MaxPct), sessionMetricPlaces),
		})
	}
	return out
}
