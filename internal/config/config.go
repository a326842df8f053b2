// Package config provides the configuration schema and loader for the
// weather agent CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/meteomark/weather-agent/internal/provider"
	"gopkg.in/yaml.v3"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Slog maps l onto the corresponding slog level.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	defaultMaxTokens = 1024
	defaultLogLevel  = LogInfo
)

// Config is the root configuration for the agent.
type Config struct {
	// Model is the provider model identifier used for every model step.
	Model string `yaml:"model"`

	// MaxTokens caps the provider response size per model step.
	MaxTokens int64 `yaml:"max_tokens"`

	// LogLevel controls CLI log verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// ObserveJSON turns on JSONL event telemetry by default; the
	// WXA_OBSERVE_JSON environment variable still overrides it.
	ObserveJSON bool `yaml:"observe_json"`
}

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{
		Model:     string(provider.DefaultModel),
		MaxTokens: defaultMaxTokens,
		LogLevel:  defaultLogLevel,
	}
}

// Load reads the YAML configuration file at path, applies environment
// overrides, and validates the result. A missing file is not an error; the
// defaults apply. The provider API key is intentionally not part of the
// schema — the SDK reads it from the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	default:
		defer f.Close()
		cfg, err = LoadFromReader(f)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of the defaults.
// Unknown keys are rejected. Useful in tests where configs are constructed
// from string literals.
func LoadFromReader(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode yaml: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays WXA_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("WXA_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("WXA_MAX_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: parse WXA_MAX_TOKENS %q: %w", v, err)
		}
		cfg.MaxTokens = n
	}
	if v := os.Getenv("WXA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = LogLevel(v)
	}
	return nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all failures found.
func Validate(cfg Config) error {
	var errs []error

	if cfg.Model == "" {
		errs = append(errs, errors.New("model must not be empty"))
	}
	if cfg.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("max_tokens must be > 0, got %d", cfg.MaxTokens))
	}
	if !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	return errors.Join(errs...)
}
