package datasets

import (
	"iter"
	"math"
	"slices"

	"github.com/okian/pitchgen/internal/domain/model"
	"github.com/okian/pitchgen/internal/domain/sampling"
)

// Pitch dimensions in meters.
const (
	PitchLength = 105.0
	PitchWidth  = 68.0
)

// Shared identifiers for the single simulated match.
const (
	MatchID  = "MATCH_001"
	HomeTeam = "Home"
)

// TrackingAthletes are the athletes with positional data.
var TrackingAthletes = []string{"ATL_001", "ATL_002", "ATL_003", "ATL_008"}

const (
	trackStartMinX  = 20.0
	trackStartMaxX  = 85.0
	trackStartMinY  = 10.0
	trackStartMaxY  = 58.0
	trackStepSigmaX = 0.5
	trackStepSigmaY = 0.3
	trackAccelSigma = 1.0
	trackPlaces     = 2
	trackTimePlaces = 1
)

// TrackingSeq yields positional samples in (athlete, frame) order. Each
// iteration starts a fresh source from the seed, so re-ranging the sequence
// replays the same rows.
//
// Speed is derived from the drawn step, while acceleration is independent
// noise that does not follow from consecutive speeds.
func TrackingSeq(opts ...Option) iter.Seq[model.TrackingSample] {
	s := newSettings(opts)
	return func(yield func(model.TrackingSample) bool) {
		src := sampling.NewSource(s.seed)
		for _, athlete := range TrackingAthletes {
			x := src.Uniform(trackStartMinX, trackStartMaxX)
			y := src.Uniform(trackStartMinY, trackStartMaxY)

			for frame := 0; frame < s.frames; frame++ {
				dx := src.Normal(0, trackStepSigmaX)
				dy := src.Normal(0, trackStepSigmaY)
				x = sampling.Clip(x+dx, 0, PitchLength)
				y = sampling.Clip(y+dy, 0, PitchWidth)
				speed := math.Hypot(dx, dy) * s.sampleRateHz
				accel := src.Normal(0, trackAccelSigma)

				sample := model.TrackingSample{
					Frame:     frame,
					TimeS:     sampling.Round(float64(frame)/s.sampleRateHz, trackTimePlaces),
					AthleteID: athlete,
					Team:      HomeTeam,
					X:         sampling.Round(x, trackPlaces),
					Y:         sampling.Round(y, trackPlaces),
					SpeedMS:   sampling.Round(math.Abs(speed), trackPlaces),
					AccelMS2:  sampling.Round(accel, trackPlaces),
					Period:    model.FirstHalf,
					MatchID:   MatchID,
				}
				if !yield(sample) {
					return
				}
			}
		}
	}
}

// Tracking collects TrackingSeq into a slice.
func Tracking(opts ...Option) []model.TrackingSample {
	return slices.Collect(TrackingSeq(opts...))
}
