// Package config loads the genai-site configuration from the environment
// and command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the site reads.
const EnvPrefix = "GENAI_SITE_"

var (
	// ErrLogFormat is returned for log formats other than text and json.
	ErrLogFormat = errors.New(`log format must be "text" or "json"`)

	// ErrRateLimit is returned when the rate limit or burst isn't
	// positive.
	ErrRateLimit = errors.New("rate limit and burst must be positive")

	// ErrBaseURL is returned when the base URL isn't an absolute path.
	ErrBaseURL = errors.New(`base URL must be a path starting with "/"`)
)

// Config is the configuration shared by every genai-site command.
type Config struct {
	Addr    string `env:"ADDR" envDefault:"localhost:8080"`
	BaseURL string `env:"BASE_URL" envDefault:"/"`
	Title   string `env:"TITLE" envDefault:"OpenVINO GenAI"`
	OutDir  string `env:"OUT_DIR" envDefault:"build"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`

	// RateLimit is the sustained number of requests per second the server
	// accepts, RateBurst how many it accepts at once.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"50"`
	RateBurst int     `env:"RATE_BURST" envDefault:"100"`

	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OTelEndpoint is the OTLP/HTTP endpoint traces are exported to.
	// Tracing is off when it's empty.
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// Load reads the configuration from environ, or from the process
// environment when environ is nil.
func Load(environ map[string]string) (Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags adds flags overriding cfg to fs. The current values of cfg
// are the flag defaults, so flags win over the environment.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "path the site is served under")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "site title")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory the static site is written to")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, `log format, "text" or "json"`)
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP trace endpoint")
}

// Validate reports settings that can't work.
func (cfg Config) Validate() error {
	var errs []error
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w, got %q", ErrLogFormat, cfg.LogFormat))
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" && !strings.HasPrefix(base, "/") {
		errs = append(errs, fmt.Errorf("%w, got %q", ErrBaseURL, cfg.BaseURL))
	}
	if cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%w, got %v/s burst %d", ErrRateLimit, cfg.RateLimit, cfg.RateBurst))
	}
	return errors.Join(errs...)
}

// Logger returns a logger writing to w in the configured format and level.
func (cfg Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
