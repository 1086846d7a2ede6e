package datasets

import (
	"fmt"
	"time"

	"github.com/okian/pitchgen/internal/domain/model"
)

// RosterSize is the number of athletes in the squad.
const RosterSize = 15

// The roster is kept as parallel columns so it reads like the source sheet.
var (
	rosterNames = []string{
		"García", "López", "Martínez", "Sánchez", "Fernández",
		"González", "Rodríguez", "Pérez", "Gómez", "Ruiz",
		"Díaz", "Moreno", "Álvarez", "Jiménez", "Romero",
	}
	rosterPositions = []model.Position{
		model.Forward, model.Midfielder, model.Defender, model.Goalkeeper, model.Forward,
		model.Midfielder, model.Defender, model.Forward, model.Midfielder, model.Defender,
		model.Goalkeeper, model.Forward, model.Midfielder, model.Defender, model.Winger,
	}
	rosterAges        = []int{25, 28, 23, 31, 22, 27, 29, 24, 26, 30, 33, 21, 25, 28, 23}
	rosterHeightCm    = []int{178, 175, 182, 188, 176, 180, 185, 173, 177, 184, 190, 172, 179, 183, 175}
	rosterWeightKg    = []int{75, 72, 80, 85, 70, 76, 82, 68, 74, 81, 87, 67, 73, 79, 71}
	rosterVO2Max      = []float64{58.5, 62.1, 55.0, 48.2, 60.5, 59.0, 54.5, 61.0, 57.5, 53.0, 46.0, 63.0, 58.0, 55.5, 59.5}
	rosterHRMax       = []int{195, 188, 192, 185, 198, 190, 186, 196, 191, 184, 180, 200, 193, 187, 197}
	rosterHRRest      = []int{52, 48, 55, 58, 50, 51, 54, 49, 53, 56, 60, 47, 52, 55, 50}
	rosterMaxSpeedKmh = []float64{32.5, 31.0, 30.2, 28.5, 33.8, 31.5, 29.8, 34.2, 30.5, 29.0, 27.5, 35.0, 31.2, 29.5, 33.0}
	rosterPowerW      = []int{850, 780, 920, 950, 720, 810, 890, 700, 790, 880, 920, 680, 800, 860, 740}
	rosterCMJCm       = []int{42, 38, 45, 48, 40, 41, 44, 39, 40, 43, 46, 37, 41, 44, 39}
	rosterTTestS      = []float64{9.2, 9.5, 9.8, 10.2, 9.0, 9.4, 9.7, 8.9, 9.3, 9.9, 10.5, 8.8, 9.3, 9.6, 9.1}
	rosterYoYoIR1M    = []int{2120, 2400, 1840, 1280, 2280, 2200, 1720, 2360, 2040, 1680, 1120, 2520, 2080, 1800, 2240}
	rosterBodyFatPct  = []float64{10.2, 9.8, 11.5, 13.2, 9.5, 10.0, 11.8, 9.2, 10.5, 12.0, 14.5, 8.8, 10.3, 11.2, 9.6}
	rosterContracts   = []time.Time{
		date(2026, 6, 30), date(2025, 6, 30), date(2027, 6, 30), date(2024, 6, 30), date(2028, 6, 30),
		date(2025, 12, 31), date(2026, 6, 30), date(2027, 12, 31), date(2025, 6, 30), date(2024, 12, 31),
		date(2024, 6, 30), date(2029, 6, 30), date(2026, 6, 30), date(2025, 6, 30), date(2027, 6, 30),
	}
	rosterMarketValueEUR = []int{
		5_000_000, 8_000_000, 3_500_000, 2_000_000, 12_000_000,
		6_500_000, 4_000_000, 15_000_000, 5_500_000, 3_000_000,
		1_500_000, 25_000_000, 7_000_000, 4_500_000, 10_000_000,
	}
)

// AthleteID formats the roster identifier for the 1-based sequence n.
func AthleteID(n int) string {
	return fmt.Sprintf("ATL_%03d", n)
}

// Athletes returns the fixed squad roster. It involves no randomness.
func Athletes() []model.Athlete {
	out := make([]model.Athlete, RosterSize)
	for i := range out {
		out[i] = model.Athlete{
			ID:             AthleteID(i + 1),
			Name:           rosterNames[i],
			Position:       rosterPositions[i],
			Age:            rosterAges[i],
			HeightCm:       rosterHeightCm[i],
			WeightKg:       rosterWeightKg[i],
			VO2Max:         rosterVO2Max[i],
			HRMax:          rosterHRMax[i],
			HRRest:         rosterHRRest[i],
			MaxSpeedKmh:    rosterMaxSpeedKmh[i],
			PowerW:         rosterPowerW[i],
			CMJCm:          rosterCMJCm[i],
			TTestS:         rosterTTestS[i],
			YoYoIR1M:       rosterYoYoIR1M[i],
			BodyFatPct:     rosterBodyFatPct[i],
			ContractUntil:  rosterContracts[i],
			MarketValueEUR: rosterMarketValueEUR[i],
		}
	}
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
