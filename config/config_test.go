package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weatherpets/input"
	"github.com/lixenwraith/weatherpets/settings"
)

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 60, cfg.Frame.Rate)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
	assert.Equal(t, 10*time.Second, cfg.Feed.Interval)
	assert.Equal(t, []string{"france", "japan"}, cfg.Pets.Active)
	assert.Equal(t, settings.Default(), cfg.Settings())
	assert.True(t, cfg.Pets.AutoRotate)
	assert.Equal(t, DefaultGeoURL, cfg.Geo.URL)
	assert.Equal(t, 0, cfg.Geo.Retries)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 50, cfg.Audio.Volume)
	assert.Empty(t, cfg.DebugAddr)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("WEATHERPETS_LOG_LEVEL", "debug")
	t.Setenv("WEATHERPETS_LOG_FILE", "pets.log")
	t.Setenv("WEATHERPETS_PETS_ACTIVE", "iceland,mexico,brazil")
	t.Setenv("WEATHERPETS_PETS_UNITS", "imperial")
	t.Setenv("WEATHERPETS_PETS_SHOW_FLAGS", "false")
	t.Setenv("WEATHERPETS_GEO_TIMEOUT", "3s")
	t.Setenv("WEATHERPETS_SEED", "7")
	t.Setenv("WEATHERPETS_DEBUG_ADDR", "127.0.0.1:9090")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging().Level)
	assert.Equal(t, "pets.log", cfg.Logging().File)
	assert.Equal(t, []string{"iceland", "mexico", "brazil"}, cfg.Pets.Active)
	assert.Equal(t, settings.Settings{Units: settings.Imperial, ShowFlags: false}, cfg.Settings())
	assert.Equal(t, 3*time.Second, cfg.GeoClient("req").Timeout)
	assert.Equal(t, "req", cfg.GeoClient("req").RequestID)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "127.0.0.1:9090", cfg.DebugAddr)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("WEATHERPETS_AUDIO_VOLUME=80\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("WEATHERPETS_AUDIO_VOLUME") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Audio.Volume)
}

func TestLoad_EnvironmentOverridesEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("WEATHERPETS_AUDIO_VOLUME=80\n"), 0o600))
	t.Setenv("WEATHERPETS_AUDIO_VOLUME", "20")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Audio.Volume)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"volume", "WEATHERPETS_AUDIO_VOLUME", "150"},
		{"units", "WEATHERPETS_PETS_UNITS", "kelvin"},
		{"frame rate", "WEATHERPETS_FRAME_RATE", "0"},
		{"feed interval", "WEATHERPETS_FEED_INTERVAL", "1ms"},
		{"geo url", "WEATHERPETS_GEO_URL", "not a url"},
		{"debug addr", "WEATHERPETS_DEBUG_ADDR", "nowhere"},
		{"keymap", "WEATHERPETS_KEYMAP", "x=explode"},
		{"log format", "WEATHERPETS_LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(noEnvFile(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)

			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, KindValidation, cerr.Kind)

			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestLoad_ParsingError(t *testing.T) {
	t.Setenv("WEATHERPETS_FRAME_RATE", "fast")
	_, err := Load(noEnvFile(t))

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindParsing, cerr.Kind)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "PARSING_FAILED")
}

func TestValidate_AfterOverride(t *testing.T) {
	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	cfg.Audio.Volume = -1
	assert.ErrorIs(t, Validate(cfg), ErrInvalid)
}

func TestValidate_RegistrationFailureSurfaces(t *testing.T) {
	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	customValidations[""] = func(validator.FieldLevel) bool { return true }
	t.Cleanup(func() { delete(customValidations, "") })

	err = Validate(cfg)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindSetup, cerr.Kind)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestKeyTable_MergesOverrides(t *testing.T) {
	cfg := &Config{Keymap: "x=quit, b=none"}
	kt, err := cfg.KeyTable()
	require.NoError(t, err)

	assert.Equal(t, input.IntentQuit, kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.Equal(t, input.IntentNone, kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone)))
	assert.Equal(t, input.IntentRadioPlayPause, kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))

	_, err = (&Config{Keymap: "x"}).KeyTable()
	assert.ErrorIs(t, err, ErrInvalid)
}
