package config

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(map[string]string{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != "localhost:8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "localhost:8080")
	}
	if cfg.BaseURL != "/" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "/")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelInfo)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, 10*time.Second)
	}
	if cfg.OTelEndpoint != "" || !cfg.OTelEnabled {
		t.Errorf("expected tracing enabled without an endpoint, got %q/%v", cfg.OTelEndpoint, cfg.OTelEnabled)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadPrefixedEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := Load(map[string]string{
		"GENAI_SITE_ADDR":       ":9000",
		"GENAI_SITE_LOG_LEVEL":  "debug",
		"GENAI_SITE_RATE_BURST": "7",
		"ADDR":                  ":1",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9000")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelDebug)
	}
	if cfg.RateBurst != 7 {
		t.Errorf("RateBurst = %d, want 7", cfg.RateBurst)
	}
}

func TestLoadError(t *testing.T) {
	t.Parallel()

	_, err := Load(map[string]string{"GENAI_SITE_RATE_LIMIT": "lots"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := Load(map[string]string{"GENAI_SITE_OUT_DIR": "from-env", "GENAI_SITE_TITLE": "Env"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-out", "from-flag", "-log-level", "warn"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.OutDir != "from-flag" {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, "from-flag")
	}
	if cfg.Title != "Env" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Env")
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelWarn)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg, err := Load(map[string]string{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.LogFormat = "xml"
	cfg.RateLimit = 0
	err = cfg.Validate()
	if !errors.Is(err, ErrLogFormat) {
		t.Errorf("expected %v, got %v", ErrLogFormat, err)
	}
	if !errors.Is(err, ErrRateLimit) {
		t.Errorf("expected %v, got %v", ErrRateLimit, err)
	}
}

func TestValidateBaseURL(t *testing.T) {
	t.Parallel()

	for base, valid := range map[string]bool{
		"":                     true,
		"/":                    true,
		"/genai/":              true,
		"genai":                false,
		"genai/":               false,
		"https://example.com/": false,
	} {
		cfg, err := Load(map[string]string{"GENAI_SITE_BASE_URL": base})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		err = cfg.Validate()
		if valid && err != nil {
			t.Errorf("%q: unexpected error: %v", base, err)
		}
		if !valid && !errors.Is(err, ErrBaseURL) {
			t.Errorf("%q: expected %v, got %v", base, ErrBaseURL, err)
		}
	}
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := Config{LogFormat: "json", LogLevel: slog.LevelWarn}
	logger := cfg.Logger(&out)
	logger.Info("dropped")
	logger.Warn("kept", "page", "home")
	if got := out.String(); strings.Contains(got, "dropped") || !strings.Contains(got, `"msg":"kept"`) || !strings.Contains(got, `"page":"home"`) {
		t.Errorf("unexpected log output %q", got)
	}
}
