// Command genai-site serves or builds the OpenVINO GenAI website.
//
// Usage:
//
//	genai-site serve [-addr host:port] [-base-url /path/]
//	genai-site build [-out dir] [-base-url /path/]
//
// Every flag can also be set through a GENAI_SITE_ environment variable;
// flags win.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/openvinotoolkit/genai-site/internal/build"
	"github.com/openvinotoolkit/genai-site/internal/config"
	"github.com/openvinotoolkit/genai-site/internal/homepage"
	"github.com/openvinotoolkit/genai-site/internal/render"
	"github.com/openvinotoolkit/genai-site/internal/server"
	"github.com/openvinotoolkit/genai-site/internal/telemetry"
)

var version = "dev"

var errUsage = errors.New("usage: genai-site <serve|build> [flags]")

func main() {
	os.Exit(runMain(os.Args[1:], os.Stderr))
}

// runMain runs the command in args with the process environment and
// returns the exit code, after every deferred cleanup has run.
func runMain(args []string, stderr io.Writer) int {
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, v ...any) {
		slog.Debug(fmt.Sprintf(format, v...))
	}))
	defer undo()
	if err != nil {
		slog.Warn("error setting GOMAXPROCS", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args, nil, stderr); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// run executes the command in args. environ replaces the process
// environment when it isn't nil.
func run(ctx context.Context, args []string, environ map[string]string, stderr io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}
	command, args := args[0], args[1:]
	if command != "serve" && command != "build" {
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}

	cfg, err := config.Load(environ)
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("genai-site "+command, flag.ContinueOnError)
	flags.SetOutput(stderr)
	cfg.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := cfg.Logger(stderr).With("command", command)
	ctx = render.LoggingContext(ctx, logger)

	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    "genai-site",
		ServiceVersion: version,
		Endpoint:       cfg.OTelEndpoint,
		Enabled:        cfg.OTelEnabled,
	}, logger)
	if err != nil {
		return fmt.Errorf("error setting up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.ErrorContext(ctx, "error flushing traces", "error", err)
		}
	}()

	site, err := homepage.NewSite(ctx, homepage.Options{Title: cfg.Title, BaseURL: cfg.BaseURL})
	if err != nil {
		return fmt.Errorf("error loading site: %w", err)
	}

	switch command {
	case "build":
		return build.Build(ctx, site, cfg.OutDir)
	default:
		srv, err := server.New(site, logger, server.Config{
			Addr:              cfg.Addr,
			RateLimit:         cfg.RateLimit,
			RateBurst:         cfg.RateBurst,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ShutdownTimeout:   cfg.ShutdownTimeout,
		})
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx)
	}
}
