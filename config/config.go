// Package config reads engine settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/rulego/chartdata/logger"
	"hermannm.dev/wrap"
)

// Log output formats
const (
	LogFormatText = "text"
	LogFormatDev  = "dev"
)

type Config struct {
	Timezone       string `env:"CHARTDATA_TIMEZONE" envDefault:"UTC"`
	LogLevel       string `env:"CHARTDATA_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"CHARTDATA_LOG_FORMAT" envDefault:"text"`
	TableChunkSize int    `env:"CHARTDATA_TABLE_CHUNK_SIZE" envDefault:"1000"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Timezone:       "UTC",
		LogLevel:       "info",
		LogFormat:      LogFormatText,
		TableChunkSize: 1000,
	}
}

// ReadFromEnv loads .env when present and parses the environment.
func ReadFromEnv() (Config, error) {
	return Load()
}

// Load reads the given env files, or .env when none are given. Missing files
// are ignored.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, wrap.Error(err, "failed to load .env file")
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, wrap.Error(err, "failed to parse environment")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatDev, "":
	default:
		errs = append(errs, fmt.Errorf("unsupported value '%s' for CHARTDATA_LOG_FORMAT, must be one of: '%s', '%s'", c.LogFormat, LogFormatText, LogFormatDev))
	}
	if c.TableChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("CHARTDATA_TABLE_CHUNK_SIZE must be positive, got %d", c.TableChunkSize))
	}
	if len(errs) > 0 {
		return wrap.Errors("invalid chartdata configuration", errs...)
	}
	return nil
}

func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, wrap.Errorf(err, "invalid CHARTDATA_TIMEZONE '%s'", c.Timezone)
	}
	return loc, nil
}

func (c Config) Level() (logger.Level, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return level, wrap.Error(err, "invalid CHARTDATA_LOG_LEVEL")
	}
	return level, nil
}

// NewLogger builds the logger described by the config, writing to w.
func (c Config) NewLogger(w io.Writer) logger.Logger {
	level, _ := c.Level()
	if strings.EqualFold(c.LogFormat, LogFormatDev) {
		return logger.NewDevLogger(w, level)
	}
	return logger.NewLogger(level, w)
}
