package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults every subcommand falls back to when a flag is
// not given explicitly.
type Config struct {
	Kind     string  `yaml:"kind" validate:"oneof=distance similarity"`
	Linkage  string  `yaml:"linkage" validate:"oneof=single complete upgma wpgma average"`
	Measure  string  `yaml:"measure" validate:"oneof=euclidean manhattan cosine pearson dtw"`
	Window   int     `yaml:"dtw_window" validate:"gte=-1"`
	Cutoff   float64 `yaml:"cutoff"`
	Seed     uint64  `yaml:"seed"`
	Workers  int     `yaml:"workers" validate:"gte=0"`
	LogLevel string  `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Kind:     "distance",
		Linkage:  "single",
		Measure:  "euclidean",
		Window:   -1,
		Cutoff:   0,
		Seed:     1,
		Workers:  0,
		LogLevel: "warn",
	}
}

// ErrInvalidConfig is returned when a configuration value fails validation.
var ErrInvalidConfig = errors.New("config: invalid value")

var configValidate = newConfigValidator()

// newConfigValidator reports fields by their YAML names.
func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// LoadConfig reads a YAML file over the defaults and validates the result.
// An empty path yields the validated defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its tag and reports the first
// offending field by its YAML name.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s=%v (%s=%s)", ErrInvalidConfig, fe.Field(), fe.Value(), fe.Tag(), fe.Param())
	}

	return fmt.Errorf("config: %w", err)
}
