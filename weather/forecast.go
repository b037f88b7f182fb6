package weather

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/weatherpets/vmath"
)

// ForecastPoint is one synthesized forecast step
type ForecastPoint struct {
	Label     string
	TempC     float64
	Condition Condition
	Humidity  float64
}

// HistoryPoint is one synthesized past observation
type HistoryPoint struct {
	Date      time.Time
	TempC     float64
	Humidity  float64
	WindMPS   float64
	Condition Condition
}

var forecastLabels = []string{"Now", "3h", "6h", "9h", "12h", "15h", "18h", "21h", "24h"}

// Forecast synthesizes a 24 hour outlook in 3 hour steps around obs
func Forecast(obs Observation, rng *rand.Rand) []ForecastPoint {
	out := make([]ForecastPoint, len(forecastLabels))
	for i, label := range forecastLabels {
		noise := vmath.Signed(rng.Float64(), 4)
		hour := float64(i * 3)
		dayCycle := math.Sin(hour/24*2*math.Pi) * 3
		out[i] = ForecastPoint{
			Label:     label,
			TempC:     vmath.Clamp(obs.TempC+noise+dayCycle, -5, 40),
			Condition: obs.Condition,
			Humidity:  vmath.Clamp(float64(obs.Humidity)+vmath.Signed(rng.Float64(), 15), 30, 95),
		}
	}
	return out
}

// History synthesizes the observation daysAgo days before now
func History(obs Observation, daysAgo int, now time.Time, rng *rand.Rand) HistoryPoint {
	noise := vmath.Signed(rng.Float64(), 8)
	seasonal := math.Sin(float64(daysAgo)/365*2*math.Pi) * 5
	return HistoryPoint{
		Date:      now.Add(-time.Duration(daysAgo) * 24 * time.Hour),
		TempC:     vmath.Clamp(obs.TempC+noise+seasonal, -10, 45),
		Humidity:  vmath.Clamp(float64(obs.Humidity)+vmath.Signed(rng.Float64(), 20), 20, 100),
		WindMPS:   vmath.Clamp(obs.WindMPS+vmath.Signed(rng.Float64(), 5), 0, 20),
		Condition: obs.Condition,
	}
}

// HistorySeries returns one point per day for the last days days, oldest first
func HistorySeries(obs Observation, days int, now time.Time, rng *rand.Rand) []HistoryPoint {
	out := make([]HistoryPoint, 0, days)
	for d := days; d >= 1; d-- {
		out = append(out, History(obs, d, now, rng))
	}
	return out
}
