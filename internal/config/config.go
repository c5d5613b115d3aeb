// Package config loads settings for the calculator and converter commands
// from an optional .env file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Bounds of the calculator precision in bits. The validate tag on
// Config.Precision repeats them.
const (
	MinPrecision = 2
	MaxPrecision = 4096
)

// Config holds application configuration.
type Config struct {
	LogLevel       string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogDevelopment bool   `mapstructure:"LOG_DEVELOPMENT"`

	// Precision is the working precision of the calculator in bits.
	Precision uint `mapstructure:"CALC_PRECISION" validate:"min=2,max=4096"`
	// ErrorText replaces the display when an evaluation fails.
	ErrorText string `mapstructure:"CALC_ERROR_TEXT" validate:"required"`

	DefaultFrom string `mapstructure:"FX_DEFAULT_FROM" validate:"len=3,alpha,uppercase,nefield=DefaultTo"`
	DefaultTo   string `mapstructure:"FX_DEFAULT_TO" validate:"len=3,alpha,uppercase"`
	// FlagsDir is where currency flag images are looked up.
	FlagsDir string `mapstructure:"FX_FLAGS_DIR" validate:"required"`
}

var defaults = map[string]any{
	"LOG_LEVEL":       "info",
	"LOG_DEVELOPMENT": false,
	"CALC_PRECISION":  53,
	"CALC_ERROR_TEXT": "Error",
	"FX_DEFAULT_FROM": "INR",
	"FX_DEFAULT_TO":   "USD",
	"FX_FLAGS_DIR":    "flags",
}

// Load reads configuration from the environment. Values from the given env
// files, or from .env in the working directory if none are given, fill in
// variables that are not already set. A missing .env is not an error, but a
// named file that cannot be read is.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	cfg := &Config{
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogDevelopment: v.GetBool("LOG_DEVELOPMENT"),
		Precision:      v.GetUint("CALC_PRECISION"),
		ErrorText:      v.GetString("CALC_ERROR_TEXT"),
		DefaultFrom:    strings.ToUpper(strings.TrimSpace(v.GetString("FX_DEFAULT_FROM"))),
		DefaultTo:      strings.ToUpper(strings.TrimSpace(v.GetString("FX_DEFAULT_TO"))),
		FlagsDir:       v.GetString("FX_FLAGS_DIR"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
