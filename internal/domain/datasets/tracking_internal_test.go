package datasets

import (
	"math"
	"testing"

	"github.com/okian/pitchgen/internal/domain/sampling"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTrackingSpeedFromRawStep(t *testing.T) {
	Convey("Given a replay of the tracking draws", t, func() {
		const (
			seed   = 11
			frames = 30
			hz     = 10.0
		)
		samples := Tracking(WithSeed(seed), WithFrames(frames), WithSampleRate(hz))
		src := sampling.NewSource(seed)

		Convey("Then speed is the unclipped step scaled by the rate", func() {
			i := 0
			for range TrackingAthletes {
				src.Uniform(trackStartMinX, trackStartMaxX)
				src.Uniform(trackStartMinY, trackStartMaxY)
				for range frames {
					dx := src.Normal(0, trackStepSigmaX)
					dy := src.Normal(0, trackStepSigmaY)
					accel := src.Normal(0, trackAccelSigma)

					So(samples[i].SpeedMS, ShouldEqual, sampling.Round(math.Hypot(dx, dy)*hz, trackPlaces))
					So(samples[i].AccelMS2, ShouldEqual, sampling.Round(accel, trackPlaces))
					i++
				}
			}
			So(i, ShouldEqual, len(samples))
		})
	})
}
