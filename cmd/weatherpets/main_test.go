package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weatherpets/config"
)

func TestApplyFlags_OnlyExplicitFlags(t *testing.T) {
	cfg := &config.Config{}
	cfg.Audio.Enabled = true
	cfg.Frame.Rate = 60
	cfg.Pets.Units = "metric"

	require.NoError(t, flag.CommandLine.Parse([]string{"-no-audio", "-units", "imperial", "-seed", "9"}))
	applyFlags(cfg)

	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "imperial", cfg.Pets.Units)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, 60, cfg.Frame.Rate, "unset flags keep configured values")
}

func TestNewRandSource_SeededStreams(t *testing.T) {
	a := newRandSource(42)
	b := newRandSource(42)
	assert.Equal(t, a(1).Uint64(), b(1).Uint64())
	assert.NotEqual(t, a(1).Uint64(), a(2).Uint64())
}
