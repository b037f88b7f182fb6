package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/lixenwraith/weatherpets/input"
)

// ErrInvalid matches every configuration failure that a user can fix by editing values
var ErrInvalid = errors.New("invalid configuration")

// ErrorKind categorizes loading failures
type ErrorKind string

const (
	KindEnvFile    ErrorKind = "ENV_FILE"
	KindParsing    ErrorKind = "PARSING_FAILED"
	KindValidation ErrorKind = "VALIDATION_FAILED"
	KindSetup      ErrorKind = "SETUP_FAILED"
)

// Error is returned by Load
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports parsing and validation failures as ErrInvalid
func (e *Error) Is(target error) bool {
	return target == ErrInvalid && (e.Kind == KindParsing || e.Kind == KindValidation)
}

// Load reads the optional env files, then the environment, and validates the result.
// Missing env files are skipped
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: KindEnvFile, Message: "load " + f, Err: err}
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, &Error{Kind: KindParsing, Message: "failed to process environment", Err: err}
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg after loading or after flag overrides
func Validate(cfg *Config) error {
	v, err := newValidator()
	if err != nil {
		return &Error{Kind: KindSetup, Message: "validator setup failed", Err: err}
	}
	if err := v.Struct(cfg); err != nil {
		return &Error{Kind: KindValidation, Message: "configuration validation failed", Err: err}
	}
	return nil
}

// customValidations maps struct tags to their checks
var customValidations = map[string]validator.Func{
	"keymap": func(fl validator.FieldLevel) bool {
		_, err := input.ParseBindings(fl.Field().String())
		return err == nil
	},
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return v, nil
}
