// Package config resolves runtime settings from defaults, an optional YAML
// file and REGFORM_* environment variables. Command line flags are applied
// by the caller on top of the returned Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/submit"
)

// EnvPrefix namespaces environment overrides, e.g. REGFORM_ENDPOINT.
const EnvPrefix = "REGFORM"

var (
	ErrMissingEndpoint = errors.New("config: endpoint is required")
	ErrUnknownFallback = errors.New("config: unknown fallback mode")
)

// FallbackMode selects how a payload is delivered when the primary post fails.
type FallbackMode string

const (
	// FallbackPost sends a plain urlencoded form post.
	FallbackPost FallbackMode = "post"
	// FallbackPage writes a self-submitting HTML page into PageDir.
	FallbackPage FallbackMode = "page"
)

// Config holds every runtime setting.
type Config struct {
	Endpoint   string        `yaml:"endpoint" envconfig:"ENDPOINT"`
	Subject    string        `yaml:"subject" envconfig:"SUBJECT"`
	ResetDelay time.Duration `yaml:"reset_delay" envconfig:"RESET_DELAY"`
	Fallback   FallbackMode  `yaml:"fallback" envconfig:"FALLBACK"`
	PageDir    string        `yaml:"page_dir" envconfig:"PAGE_DIR"`
	LogLevel   string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Endpoint:   submit.DefaultEndpoint,
		Subject:    submit.DefaultSubject,
		ResetDelay: form.DefaultResetDelay,
		Fallback:   FallbackPost,
		PageDir:    os.TempDir(),
		LogLevel:   "info",
	}
}

// Load layers the YAML file at path (skipped when path is empty) and the
// environment over the defaults, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable fallback.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return ErrMissingEndpoint
	}
	switch c.Fallback {
	case FallbackPost, FallbackPage:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFallback, c.Fallback)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config: log level: %w", err)
	}
	return lvl, nil
}
