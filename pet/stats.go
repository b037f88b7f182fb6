package pet

import "github.com/lixenwraith/weatherpets/weather"

// Stats aggregates the active pets' weather
type Stats struct {
	Total       int
	AvgTempC    float64
	AvgHumidity float64
	AvgWindMPS  float64
	MostCommon  weather.Condition
	Happy       int
	Gloomy      int
	Hottest     Pet
	Coldest     Pet
}

// Summarize computes aggregate stats; ok is false for an empty list.
// Condition ties go to the condition seen first, temperature ties to the earlier pet
func Summarize(pets []Pet) (Stats, bool) {
	if len(pets) == 0 {
		return Stats{}, false
	}

	st := Stats{
		Total:   len(pets),
		Hottest: pets[0],
		Coldest: pets[0],
	}

	counts := make(map[weather.Condition]int)
	order := make([]weather.Condition, 0, len(pets))
	var temp, hum, wind float64

	for _, p := range pets {
		temp += p.Weather.TempC
		hum += float64(p.Weather.Humidity)
		wind += p.Weather.WindMPS

		if counts[p.Weather.Condition] == 0 {
			order = append(order, p.Weather.Condition)
		}
		counts[p.Weather.Condition]++

		if p.Mood == Happy {
			st.Happy++
		}
		if p.Weather.TempC > st.Hottest.Weather.TempC {
			st.Hottest = p
		}
		if p.Weather.TempC < st.Coldest.Weather.TempC {
			st.Coldest = p
		}
	}

	n := float64(len(pets))
	st.AvgTempC = temp / n
	st.AvgHumidity = hum / n
	st.AvgWindMPS = wind / n
	st.Gloomy = st.Total - st.Happy

	best := 0
	for _, c := range order {
		if counts[c] > best {
			best = counts[c]
			st.MostCommon = c
		}
	}
	return st, true
}
