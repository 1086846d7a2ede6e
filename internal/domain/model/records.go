package model

import (
	"strconv"
	"time"
)

// DateLayout is the calendar date format used in every table.
const DateLayout = "2006-01-02"

// Athlete is a static roster profile.
type Athlete struct {
	ID             string
	Name           string
	Position       Position
	Age            int
	HeightCm       int
	WeightKg       int
	VO2Max         float64
	HRMax          int
	HRRest         int
	MaxSpeedKmh    float64
	PowerW         int
	CMJCm          int     // countermovement jump height
	TTestS         float64 // agility T-test time
	YoYoIR1M       int     // Yo-Yo intermittent recovery level 1 distance
	BodyFatPct     float64
	ContractUntil  time.Time
	MarketValueEUR int
}

var athleteColumns = []string{
	"athlete_id", "name", "position", "age", "height_cm", "weight_kg", "vo2max",
	"hr_max", "hr_rest", "max_speed_kmh", "power_w", "cmj_cm", "t_test_s",
	"yoyo_ir1_m", "body_fat_pct", "contract_until", "market_value_eur",
}

// Columns returns the athlete table schema.
func (Athlete) Columns() []string { return athleteColumns }

// Values returns the athlete row in schema order.
func (a Athlete) Values() []string {
	return []string{
		a.ID, a.Name, a.Position.String(), itoa(a.Age), itoa(a.HeightCm), itoa(a.WeightKg),
		ftoa(a.VO2Max), itoa(a.HRMax), itoa(a.HRRest), ftoa(a.MaxSpeedKmh), itoa(a.PowerW),
		itoa(a.CMJCm), ftoa(a.TTestS), itoa(a.YoYoIR1M), ftoa(a.BodyFatPct),
		a.ContractUntil.Format(DateLayout), itoa(a.MarketValueEUR),
	}
}

// Session is one GPS-tracked training session or match for an athlete.
type Session struct {
	ID             string
	AthleteID      string
	Date           time.Time
	Type           SessionType
	DurationMin    int
	TotalDistanceM int
	HSRM           int // high-speed running above 21 km/h
	SprintM        int // sprinting above 25 km/h
	SprintCount    int
	Accelerations  int
	Decelerations  int
	PlayerLoad     float64
	RPE            int
	HRAvg          int
	HRMax          int
	HRZone5Pct     float64
}

var sessionColumns = []string{
	"session_id", "athlete_id", "date", "session_type", "duration_min",
	"total_distance_m", "hsr_m", "sprint_m", "sprint_count", "accelerations",
	"decelerations", "player_load", "rpe", "hr_avg", "hr_max", "hr_zone5_pct",
}

// Columns returns the session table schema.
func (Session) Columns() []string { return sessionColumns }

// Values returns the session row in schema order.
func (s Session) Values() []string {
	return []string{
		s.ID, s.AthleteID, s.Date.Format(DateLayout), s.Type.String(), itoa(s.DurationMin),
		itoa(s.TotalDistanceM), itoa(s.HSRM), itoa(s.SprintM), itoa(s.SprintCount),
		itoa(s.Accelerations), itoa(s.Decelerations), ftoa(s.PlayerLoad), itoa(s.RPE),
		itoa(s.HRAvg), itoa(s.HRMax), ftoa(s.HRZone5Pct),
	}
}

// TrackingSample is one positional frame for one athlete.
type TrackingSample struct {
	Frame     int
	TimeS     float64
	AthleteID string
	Team      string
	X         float64
	Y         float64
	SpeedMS   float64
	AccelMS2  float64
	Period    Period
	MatchID   string
}

var trackingColumns = []string{
	"frame", "time_s", "athlete_id", "team", "x", "y", "speed_ms", "accel_ms2", "period", "match_id",
}

// Columns returns the tracking table schema.
func (TrackingSample) Columns() []string { return trackingColumns }

// Values returns the tracking row in schema order.
func (t TrackingSample) Values() []string {
	return []string{
		itoa(t.Frame), ftoa(t.TimeS), t.AthleteID, t.Team, ftoa(t.X), ftoa(t.Y),
		ftoa(t.SpeedMS), ftoa(t.AccelMS2), itoa(int(t.Period)), t.MatchID,
	}
}

// Point is a pitch coordinate in meters.
type Point struct {
	X float64
	Y float64
}

// ShotDetail carries the fields only shots have.
type ShotDetail struct {
	XG float64 // expected goals
}

// Event is one on-ball action in the match log.
type Event struct {
	ID        string
	MatchID   string
	Type      EventType
	Minute    int
	Second    int
	AthleteID string
	Team      string
	Start     Point
	End       Point
	Outcome   Outcome
	Shot      *ShotDetail // set only when Type == Shot
	BodyPart  BodyPart
	Period    Period
}

// XG returns the expected-goals value and whether the event carries one.
func (e Event) XG() (float64, bool) {
	if e.Shot == nil {
		return 0, false
	}
	return e.Shot.XG, true
}

// ClockSeconds is the match clock expressed in seconds.
func (e Event) ClockSeconds() int { return e.Minute*60 + e.Second }

var eventColumns = []string{
	"event_id", "match_id", "type", "minute", "second", "athlete_id", "team",
	"start_x", "start_y", "end_x", "end_y", "outcome", "xg", "body_part", "period",
}

// Columns returns the event table schema.
func (Event) Columns() []string { return eventColumns }

// Values returns the event row in schema order. Non-shots leave xg empty.
func (e Event) Values() []string {
	xg := ""
	if v, ok := e.XG(); ok {
		xg = ftoa(v)
	}
	return []string{
		e.ID, e.MatchID, e.Type.String(), itoa(e.Minute), itoa(e.Second), e.AthleteID, e.Team,
		ftoa(e.Start.X), ftoa(e.Start.Y), ftoa(e.End.X), ftoa(e.End.Y), e.Outcome.String(),
		xg, e.BodyPart.String(), itoa(int(e.Period)),
	}
}

// WellnessEntry is one daily questionnaire for one athlete.
// Subjective scores are on a 1-5 scale.
type WellnessEntry struct {
	Date         time.Time
	AthleteID    string
	SleepQuality int
	SleepHours   float64
	Fatigue      int
	Stress       int
	Soreness     int
	Mood         int
	HRVMs        int
}

var wellnessColumns = []string{
	"date", "athlete_id", "sleep_quality", "sleep_hours", "fatigue", "stress", "soreness", "mood", "hrv_ms",
}

// Columns returns the wellness table schema.
func (WellnessEntry) Columns() []string { return wellnessColumns }

// Values returns the wellness row in schema order.
func (w WellnessEntry) Values() []string {
	return []string{
		w.Date.Format(DateLayout), w.AthleteID, itoa(w.SleepQuality), ftoa(w.SleepHours),
		itoa(w.Fatigue), itoa(w.Stress), itoa(w.Soreness), itoa(w.Mood), itoa(w.HRVMs),
	}
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
