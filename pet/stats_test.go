package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weatherpets/weather"
)

func TestSummarize_Empty(t *testing.T) {
	_, ok := Summarize(nil)
	assert.False(t, ok)
}

func TestSummarize_Aggregates(t *testing.T) {
	cat, snap := mockCatalog()
	// France 18 Clear, Japan 22 Rain, Canada -8 Snow, Egypt 35 Dust, Italy 23 Clear
	pets := Recompute([]string{"france", "japan", "canada", "egypt", "italy"}, cat, snap, nil)

	st, ok := Summarize(pets)
	require.True(t, ok)
	assert.Equal(t, 5, st.Total)
	assert.InDelta(t, 18.0, st.AvgTempC, 1e-9)
	assert.InDelta(t, float64(45+80+40+20+48)/5, st.AvgHumidity, 1e-9)
	assert.Equal(t, weather.Clear, st.MostCommon)
	assert.Equal(t, 2, st.Happy)
	assert.Equal(t, 3, st.Gloomy)
	assert.Equal(t, "egypt", st.Hottest.ID)
	assert.Equal(t, "canada", st.Coldest.ID)
}

func TestSummarize_TieGoesToFirstSeen(t *testing.T) {
	cat, snap := mockCatalog()
	pets := Recompute([]string{"japan", "france"}, cat, snap, nil)
	st, ok := Summarize(pets)
	require.True(t, ok)
	assert.Equal(t, weather.Rain, st.MostCommon)
}
