package weather

// mockEntry pairs a country name with its seed observation; order is the catalog order
type mockEntry struct {
	country string
	obs     Observation
}

var mockData = []mockEntry{
	{"France", Observation{"Paris, France", 18, Clear, 45, 12, "Sunny skies"}},
	{"Japan", Observation{"Tokyo, Japan", 22, Rain, 80, 5, "Light showers"}},
	{"USA", Observation{"New York, USA", 15, PartlyCloudy, 60, 15, "Partly cloudy"}},
	{"UK", Observation{"London, UK", 12, Drizzle, 85, 10, "Light rain"}},
	{"Brazil", Observation{"Rio de Janeiro, Brazil", 28, Thunderstorm, 70, 8, "Thunderstorms"}},
	{"Australia", Observation{"Sydney, Australia", 24, Windy, 55, 20, "Breezy"}},
	{"Canada", Observation{"Toronto, Canada", -8, Snow, 40, 12, "Heavy snow"}},
	{"India", Observation{"Mumbai, India", 32, Haze, 90, 4, "Hazy"}},
	{"Egypt", Observation{"Cairo, Egypt", 35, Dust, 20, 10, "Dusty"}},
	{"Russia", Observation{"Moscow, Russia", 5, Overcast, 50, 15, "Overcast"}},
	{"Iceland", Observation{"Reykjavik, Iceland", 2, Fog, 95, 25, "Foggy"}},
	{"Norway", Observation{"Oslo, Norway", -5, Sleet, 75, 18, "Icy sleet"}},
	{"Spain", Observation{"Madrid, Spain", 26, PartlyCloudy, 35, 8, "Partly cloudy"}},
	{"Germany", Observation{"Berlin, Germany", 14, Drizzle, 70, 10, "Light drizzle"}},
	{"Mexico", Observation{"Mexico City, Mexico", 21, Haze, 55, 6, "Hazy conditions"}},
	{"Argentina", Observation{"Buenos Aires, Argentina", 19, Wind, 60, 30, "Very windy"}},
	{"China", Observation{"Beijing, China", 10, Dust, 30, 14, "Dusty"}},
	{"Italy", Observation{"Rome, Italy", 23, Clear, 48, 7, "Beautiful weather"}},
}

// MockSnapshot returns the seed dataset as version 0
func MockSnapshot() *Snapshot {
	names := make([]string, len(mockData))
	obs := make(map[string]Observation, len(mockData))
	for i, e := range mockData {
		names[i] = e.country
		obs[e.country] = e.obs
	}
	return NewSnapshot(names, obs, 0)
}
