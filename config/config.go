// Package config loads runtime configuration from the environment.
//
// Loading order:
//  1. Optional .env files via godotenv; existing environment variables win.
//  2. WEATHERPETS_* variables via envconfig, with struct-tag defaults.
//  3. Struct validation via go-playground/validator.
//
// Command-line flags in cmd/weatherpets are applied on top of the result.
package config

import (
	"time"

	"github.com/lixenwraith/weatherpets/geo"
	"github.com/lixenwraith/weatherpets/input"
	"github.com/lixenwraith/weatherpets/logging"
	"github.com/lixenwraith/weatherpets/settings"
)

// Prefix is the environment variable prefix
const Prefix = "WEATHERPETS"

// DefaultGeoURL serves the world outline GeoJSON
const DefaultGeoURL = "https://raw.githubusercontent.com/holtzy/D3-graph-gallery/master/DATA/world.geojson"

// Config is the full runtime configuration. Nested groups add their tag to the
// variable name, e.g. WEATHERPETS_LOG_LEVEL
type Config struct {
	Log   LogConfig   `envconfig:"LOG"`
	Frame FrameConfig `envconfig:"FRAME"`
	Feed  FeedConfig  `envconfig:"FEED"`
	Pets  PetConfig   `envconfig:"PETS"`
	Geo   GeoConfig   `envconfig:"GEO"`
	Audio AudioConfig `envconfig:"AUDIO"`

	// Seed fixes every random source; zero seeds from the clock
	Seed uint64 `envconfig:"SEED"`
	// DebugAddr enables the introspection HTTP server when non-empty
	DebugAddr string `envconfig:"DEBUG_ADDR" validate:"omitempty,hostname_port"`
	// Keymap is a comma-separated key=action override list
	Keymap string `envconfig:"KEYMAP" validate:"keymap"`
}

// LogConfig locates the log file. An empty File disables logging
type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Dir    string `envconfig:"DIR" default:"logs"`
	File   string `envconfig:"FILE"`
}

type FrameConfig struct {
	Rate int `envconfig:"RATE" default:"60" validate:"min=1,max=240"`
}

type FeedConfig struct {
	Interval time.Duration `envconfig:"INTERVAL" default:"10s" validate:"min=100ms"`
}

// PetConfig holds the initial session state
type PetConfig struct {
	Active     []string `envconfig:"ACTIVE" default:"france,japan" validate:"dive,required"`
	Units      string   `envconfig:"UNITS" default:"metric" validate:"oneof=metric imperial"`
	ShowFlags  bool     `envconfig:"SHOW_FLAGS" default:"true"`
	AutoRotate bool     `envconfig:"AUTO_ROTATE" default:"true"`
}

// GeoConfig configures the world outline fetch. An empty URL leaves the globe loading
type GeoConfig struct {
	URL     string        `envconfig:"URL" default:"https://raw.githubusercontent.com/holtzy/D3-graph-gallery/master/DATA/world.geojson" validate:"omitempty,url"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"15s" validate:"min=1s"`
	Retries int           `envconfig:"RETRIES" default:"0" validate:"min=0,max=10"`
}

type AudioConfig struct {
	Enabled bool `envconfig:"ENABLED" default:"true"`
	Volume  int  `envconfig:"VOLUME" default:"50" validate:"min=0,max=100"`
}

// FrameInterval is the duration of one rendered frame
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Frame.Rate)
}

// Logging returns the logger configuration
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		Dir:    c.Log.Dir,
		File:   c.Log.File,
	}
}

// Settings returns the initial display settings
func (c *Config) Settings() settings.Settings {
	units, _ := settings.ParseUnitSystem(c.Pets.Units)
	return settings.Settings{Units: units, ShowFlags: c.Pets.ShowFlags}
}

// GeoClient returns the geography client configuration
func (c *Config) GeoClient(requestID string) geo.ClientConfig {
	return geo.ClientConfig{
		Timeout:   c.Geo.Timeout,
		Retry:     geo.RetryPolicy{MaxRetries: c.Geo.Retries, MinWait: 500 * time.Millisecond, MaxWait: 5 * time.Second},
		UserAgent: "weatherpets/1.0",
		RequestID: requestID,
	}
}

// KeyTable merges the keymap overrides onto the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.ParseBindings(c.Keymap)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: "keymap", Err: err}
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
