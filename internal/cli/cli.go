// Package cli wires the duty-roster command: configuration from flags and
// environment, schedule generation to a file, and the HTTP serve mode.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	roster "github.com/Thomblin/duty-roster"
	"github.com/Thomblin/duty-roster/export"
	"github.com/Thomblin/duty-roster/internal/httpapi"
	"github.com/Thomblin/duty-roster/internal/logging"
	"github.com/Thomblin/duty-roster/internal/metrics"
	"github.com/Thomblin/duty-roster/types"
)

const shutdownTimeout = 10 * time.Second

// Config holds command configuration.
type Config struct {
	ConfigPath  string
	OutPath     string
	Seed        uint64
	LogLevel    string
	MetricsFile string
	ServeAddr   string
	Dir         string
}

type envConfig struct {
	ConfigPath  string `env:"CONFIG" envDefault:"config.yaml"`
	OutPath     string `env:"OUT" envDefault:"schedule.csv"`
	Seed        uint64 `env:"SEED"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	MetricsFile string `env:"METRICS_FILE"`
	ServeAddr   string `env:"SERVE"`
	Dir         string `env:"DIR" envDefault:"."`
}

// EnvPrefix prefixes every environment variable read by ParseConfig.
const EnvPrefix = "DUTY_ROSTER_"

// ParseConfig reads DUTY_ROSTER_* environment variables, then parses flags
// into a Config. Flags win over the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := env.ParseWithOptions(&envCfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config(envCfg)

	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "path to the roster configuration file")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, "path of the generated schedule file")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed (0 = from config or random)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this textfile after the run")
	fs.StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "serve the HTTP API on this address instead of writing a file")
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory searched for configuration files in serve mode")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run executes the command: it serves HTTP when ServeAddr is set and
// generates a schedule file otherwise. Logs go to errOut.
func Run(ctx context.Context, cfg Config, errOut io.Writer) error {
	if errOut == nil {
		errOut = io.Discard
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewText(errOut, level)

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, metrics.DefaultNamespace)

	if cfg.ServeAddr != "" {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		return serve(ctx, cfg, logger, collector, reg)
	}

	return generate(cfg, logger, collector, reg)
}

func generate(cfg Config, logger types.Logger, collector types.MetricsCollector, reg *prometheus.Registry) error {
	rcfg, err := roster.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}
	rcfg.ValidateWithWarnings(logger)

	opts := []roster.Option{roster.WithLogger(logger), roster.WithMetrics(collector)}
	if cfg.Seed != 0 {
		opts = append(opts, roster.WithSeed(cfg.Seed))
	}

	schedule, err := roster.Generate(rcfg, opts...)
	if err != nil {
		return err
	}

	if err := export.WriteScheduleFile(cfg.OutPath, schedule.Assignments, schedule.People); err != nil {
		return err
	}
	logger.Info("schedule written",
		"path", cfg.OutPath,
		"seed", schedule.Seed,
		"assignments", len(schedule.Assignments),
		"unfilled", len(schedule.Unfilled),
	)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
	}

	return nil
}

func serve(ctx context.Context, cfg Config, logger types.Logger, collector types.MetricsCollector, reg *prometheus.Registry) error {
	api := httpapi.New(cfg.Dir,
		httpapi.WithLogger(logger),
		httpapi.WithMetrics(collector, reg),
	)

	srv := &http.Server{
		Addr:              cfg.ServeAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.ServeAddr, "dir", cfg.Dir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}
