// Package commands implements the advent subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/advent/pkg/config"
	"github.com/Sumatoshi-tech/advent/pkg/observability"
	"github.com/Sumatoshi-tech/advent/pkg/version"
)

// Globals carries the root command's persistent flags.
type Globals struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// loadConfig reads the config file and environment.
func (g *Globals) loadConfig() (*config.Config, error) {
	path := ""
	if g != nil {
		path = g.ConfigPath
	}

	return config.LoadConfig(path)
}

// logLevel lets --verbose and --quiet override logging.level.
func (g *Globals) logLevel(cfg *config.Config) (slog.Level, error) {
	switch {
	case g != nil && g.Verbose:
		return slog.LevelDebug, nil
	case g != nil && g.Quiet:
		return slog.LevelError, nil
	default:
		return cfg.Logging.SlogLevel()
	}
}

// startTelemetry initializes logging, tracing and metrics for one command.
func (g *Globals) startTelemetry(cfg *config.Config, stderr io.Writer) (observability.Providers, error) {
	level, err := g.logLevel(cfg)
	if err != nil {
		return observability.Providers{}, err
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.LogLevel = level
	obsCfg.LogJSON = cfg.Logging.JSON
	obsCfg.LogOutput = stderr
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(cfg.Telemetry.OTLPHeaders)
	obsCfg.MetricsTextfile = cfg.Telemetry.MetricsOut

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return observability.Providers{}, fmt.Errorf("init telemetry: %w", err)
	}

	return providers, nil
}

// shutdown flushes telemetry and folds its error into err.
func shutdown(ctx context.Context, providers observability.Providers, err *error) {
	if providers.Shutdown == nil {
		return
	}

	if shutdownErr := providers.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
		*err = errors.Join(*err, fmt.Errorf("shutdown telemetry: %w", shutdownErr))
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
