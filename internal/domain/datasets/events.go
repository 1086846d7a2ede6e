package datasets

import (
	"fmt"

	"github.com/okian/pitchgen/internal/domain/model"
	"github.com/okian/pitchgen/internal/domain/sampling"
)

// EventAthletes are the athletes who appear in the event log.
var EventAthletes = []string{
	"ATL_001", "ATL_002", "ATL_003", "ATL_005", "ATL_008",
	"ATL_009", "ATL_012", "ATL_013", "ATL_014", "ATL_015",
}

// EventTypeWeights favours passes three to one over every other action.
var EventTypeWeights = sampling.MustWeighted(
	sampling.W(model.Pass, 3.0/8),
	sampling.W(model.Shot, 1.0/8),
	sampling.W(model.Duel, 1.0/8),
	sampling.W(model.Reception, 1.0/8),
	sampling.W(model.Carry, 1.0/8),
	sampling.W(model.Clearance, 1.0/8),
)

// ShotOutcomeWeights is the outcome distribution of shots.
var ShotOutcomeWeights = sampling.MustWeighted(
	sampling.W(model.Goal, 0.10),
	sampling.W(model.OnTarget, 0.30),
	sampling.W(model.OffTarget, 0.40),
	sampling.W(model.Blocked, 0.20),
)

// PlayOutcomeWeights is the outcome distribution of every non-shot action.
var PlayOutcomeWeights = sampling.MustWeighted(
	sampling.W(model.Successful, 0.75),
	sampling.W(model.Failed, 0.25),
)

// ShotBodyPartWeights allows headers; play actions are foot-only.
var (
	ShotBodyPartWeights = sampling.MustWeighted(
		sampling.W(model.RightFoot, 0.50),
		sampling.W(model.LeftFoot, 0.35),
		sampling.W(model.Head, 0.15),
	)
	PlayBodyPartWeights = sampling.MustWeighted(
		sampling.W(model.RightFoot, 0.60),
		sampling.W(model.LeftFoot, 0.40),
	)
)

// GoalCenter is where every shot ends.
var GoalCenter = model.Point{X: PitchLength, Y: PitchWidth / 2}

// Expected-goals bounds for shots.
const (
	MinXG = 0.02
	MaxXG = 0.35
)

const (
	shotMinX      = 85.0
	shotMaxX      = 105.0
	shotMinY      = 20.0
	shotMaxY      = 48.0
	playMinX      = 10.0
	playMaxX      = 95.0
	playMinY      = 5.0
	playMaxY      = 63.0
	playMinDX     = -20.0
	playMaxDX     = 30.0
	playMaxAbsDY  = 15.0
	xgPlaces      = 3
	coordPlaces   = 1
	halfTimeMin   = 45
	eventIDFormat = "EVT_%05d"
)

// clockStep is the range of seconds the match clock advances per event.
var clockStep = sampling.IntRange{Lo: 5, Hi: 45}

// draw is the branch-specific part of an event before flattening.
type draw interface {
	flatten(e *model.Event)
}

type shotDraw struct {
	start    model.Point
	outcome  model.Outcome
	xg       float64
	bodyPart model.BodyPart
}

func (d shotDraw) flatten(e *model.Event) {
	e.Start = d.start
	e.End = GoalCenter
	e.Outcome = d.outcome
	e.Shot = &model.ShotDetail{XG: d.xg}
	e.BodyPart = d.bodyPart
}

type playDraw struct {
	start    model.Point
	end      model.Point
	outcome  model.Outcome
	bodyPart model.BodyPart
}

func (d playDraw) flatten(e *model.Event) {
	e.Start = d.start
	e.End = d.end
	e.Outcome = d.outcome
	e.BodyPart = d.bodyPart
}

func drawFor(src *sampling.Source, t model.EventType) draw {
	switch t {
	case model.Shot:
		return shotDraw{
			start:    model.Point{X: src.Uniform(shotMinX, shotMaxX), Y: src.Uniform(shotMinY, shotMaxY)},
			outcome:  ShotOutcomeWeights.Pick(src),
			xg:       sampling.Round(src.Uniform(MinXG, MaxXG), xgPlaces),
			bodyPart: ShotBodyPartWeights.Pick(src),
		}
	case model.Pass, model.Duel, model.Reception, model.Carry, model.Clearance:
		start := model.Point{X: src.Uniform(playMinX, playMaxX), Y: src.Uniform(playMinY, playMaxY)}
		end := model.Point{
			X: start.X + src.Uniform(playMinDX, playMaxDX),
			Y: start.Y + src.Uniform(-playMaxAbsDY, playMaxAbsDY),
		}
		return playDraw{
			start:    start,
			end:      end,
			outcome:  PlayOutcomeWeights.Pick(src),
			bodyPart: PlayBodyPartWeights.Pick(src),
		}
	}
	panic(fmt.Sprintf("datasets: no draw for event type %d", int(t)))
}

// matchClock is a running minute:second clock that only moves forward.
type matchClock struct {
	minute int
	second int
}

// advance moves the clock by step seconds, rolling into the next minute.
func (c *matchClock) advance(step int) {
	c.second += step
	if c.second >= 60 {
		c.minute += c.second / 60
		c.second %= 60
	}
}

// period reports the half. There is no stoppage time: minute 45 onwards is
// the second half.
func (c matchClock) period() model.Period {
	if c.minute < halfTimeMin {
		return model.FirstHalf
	}
	return model.SecondHalf
}

// Events generates the match event log in clock order.
func Events(opts ...Option) []model.Event {
	s := newSettings(opts)
	src := sampling.NewSource(s.seed)

	var clock matchClock
	out := make([]model.Event, 0, s.eventCount)
	for i := 0; i < s.eventCount; i++ {
		typ := EventTypeWeights.Pick(src)
		athlete := sampling.Choice(src, EventAthletes)
		d := drawFor(src, typ)
		clock.advance(src.Int(clockStep))

		e := model.Event{
			ID:        fmt.Sprintf(eventIDFormat, i+1),
			MatchID:   MatchID,
			Type:      typ,
			Minute:    clock.minute,
			Second:    clock.second,
			AthleteID: athlete,
			Team:      HomeTeam,
			Period:    clock.period(),
		}
		d.flatten(&e)

		e.Start = model.Point{X: sampling.Round(e.Start.X, coordPlaces), Y: sampling.Round(e.Start.Y, coordPlaces)}
		e.End = model.Point{
			X: sampling.Round(sampling.Clip(e.End.X, 0, PitchLength), coordPlaces),
			Y: sampling.Round(sampling.Clip(e.End.Y, 0, PitchWidth), coordPlaces),
		}
		out = append(out, e)
	}
	return out
}
