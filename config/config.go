// Package config reads the tj settings from the environment.
//
// Variables are prefixed with TJ_ and may be set in a .env file; variables
// already present in the environment take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/etnz/tradejournal/source"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable.
const Prefix = "TJ"

// Config holds the tj settings. Command line flags override them.
type Config struct {
	TradesFile string `envconfig:"TRADES_FILE" default:"Trades.csv" validate:"required"`
	Sheet      string `envconfig:"SHEET"`
	Table      string `envconfig:"TABLE" default:"trades" validate:"required"`
	JSONPath   string `envconfig:"JSONPATH" default:"$[*]" validate:"required"`
	TopDays    int    `envconfig:"TOP_DAYS" default:"5" validate:"min=1"`
	Currency   string `envconfig:"CURRENCY" default:"USD" validate:"len=3,uppercase"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Trace      bool   `envconfig:"TRACE"`
}

// Load reads the given .env files (".env" if none), then the TJ_ variables,
// and validates the result. Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks every setting and reports all the invalid ones at once.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	name := Prefix + "_" + envName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "len", "uppercase":
		return fmt.Sprintf("%s must be a three letters ISO 4217 code, got %q", name, fe.Value())
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}

// envName returns the variable name of a Config field.
func envName(field string) string {
	switch field {
	case "TradesFile":
		return "TRADES_FILE"
	case "JSONPath":
		return "JSONPATH"
	case "TopDays":
		return "TOP_DAYS"
	case "LogLevel":
		return "LOG_LEVEL"
	default:
		return strings.ToUpper(field)
	}
}

// SourceOptions are the format specific options of the trades file.
func (c *Config) SourceOptions() source.Options {
	return source.Options{Sheet: c.Sheet, Table: c.Table, JSONPath: c.JSONPath}
}

// Level is the configured log level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
