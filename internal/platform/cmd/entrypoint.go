// Package cmd holds the startup plumbing shared by service binaries: env
// and flag parsing, then a run loop wrapped in tracing.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/platform/config"
	"github.com/louisbranch/emergencyhelp/internal/platform/otel"
	"github.com/louisbranch/emergencyhelp/internal/platform/timeouts"
)

// ServiceWeb names the browser-facing service for telemetry and logs.
const ServiceWeb = "web"

// ParseConfig fills cfg from optional .env files, then from the
// environment. Flags registered afterwards default to these values, so a
// flag given on the command line always wins.
func ParseConfig[T any](cfg *T, dotEnvPaths ...string) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDotEnv(dotEnvPaths...); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. Nil args parse as none rather than
// falling back to os.Args.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs the tracer provider for service, runs run and
// flushes pending spans once it returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	case ctx == nil:
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("%s otel setup: %w", service, err)
	}
	defer flush(service, shutdown)
	return run(ctx)
}

func flush(service string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s otel shutdown: %v", service, err)
	}
}
