package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDisplayTemp(t *testing.T) {
	for _, c := range []float64{-40, -8, 0, 18.3, 100} {
		assert.Equal(t, c, ToDisplayTemp(c, Metric), "metric is identity")
	}
	assert.Equal(t, 32.0, ToDisplayTemp(0, Imperial))
	assert.Equal(t, 212.0, ToDisplayTemp(100, Imperial))
	assert.Equal(t, -40.0, ToDisplayTemp(-40, Imperial))
}

func TestToDisplayWind(t *testing.T) {
	assert.Equal(t, 12.0, ToDisplayWind(12, Metric))
	assert.InDelta(t, 22.37, ToDisplayWind(10, Imperial), 1e-9)
	assert.Equal(t, 0.0, ToDisplayWind(0, Imperial))
}

func TestUnitsAndToggles(t *testing.T) {
	s := Default()
	assert.Equal(t, "18.0°C", s.FormatTemp(18))
	assert.Equal(t, "5.0 m/s", s.FormatWind(5))

	s.ToggleUnits()
	assert.Equal(t, Imperial, s.Units)
	assert.Equal(t, "64.4°F", s.FormatTemp(18))
	assert.Equal(t, "mph", WindUnit(s.Units))

	s.ToggleUnits()
	assert.Equal(t, Metric, s.Units)

	s.ToggleFlags()
	assert.False(t, s.ShowFlags)
}

func TestParseUnitSystem(t *testing.T) {
	u, err := ParseUnitSystem("Imperial")
	require.NoError(t, err)
	assert.Equal(t, Imperial, u)

	u, err = ParseUnitSystem("")
	require.NoError(t, err)
	assert.Equal(t, Metric, u)

	_, err = ParseUnitSystem("kelvin")
	assert.Error(t, err)
}
