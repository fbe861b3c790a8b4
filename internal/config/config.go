// Package config resolves CLI settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel = "SPIRAL_LOG_LEVEL"
	EnvWorkers  = "SPIRAL_WORKERS"
)

// Defaults applied when a variable is unset.
const (
	DefaultLogLevel = "info"
	DefaultWorkers  = 4
)

// ErrInvalidConfig indicates a variable holding an unusable value.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the CLI settings.
type Config struct {
	LogLevel slog.Level // Minimum level written to stderr
	Workers  int        // Grids traversed concurrently by `spiral file`
}

// Load reads the given .env files (".env" when none are named) without
// overriding variables already set, then builds a Config. Missing .env
// files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	level, err := ParseLevel(getEnvWithDefault(EnvLogLevel, DefaultLogLevel))
	if err != nil {
		return Config{}, err
	}
	workers, err := getEnvAsInt(EnvWorkers, DefaultWorkers)
	if err != nil {
		return Config{}, err
	}
	if workers < 1 {
		return Config{}, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, EnvWorkers, workers)
	}

	return Config{LogLevel: level, Workers: workers}, nil
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}

	return l, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}

// getEnvAsInt retrieves an environment variable as an integer, or def if unset.
func getEnvAsInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}

	return n, nil
}
