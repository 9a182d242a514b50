// Package main implements the workpool demo binary. It constructs a
// fixed-size worker pool from flags, environment variables, or a YAML
// config file, pushes a sample workload through it, and shuts the pool
// down cleanly on completion or SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/c360/workpool"
	"github.com/c360/workpool/config"
	"github.com/c360/workpool/metric"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "workpool"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}
	if cliCfg.ShowVersion {
		fmt.Printf("%s %s (build %s)\n", appName, Version, BuildTime)
		return nil
	}
	if err := validateFlags(cliCfg); err != nil {
		return err
	}

	cfg, err := loadConfiguration(cliCfg)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional metrics surface
	var metricsServer *metric.Server
	poolOpts := []workpool.Option{workpool.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		registry := metric.NewRegistry()
		metricsServer = metric.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, registry)
		poolOpts = append(poolOpts, workpool.WithMetrics(registry, appName))
	}

	pool, err := workpool.New(cfg.Pool.Workers, poolOpts...)
	if err != nil {
		return err
	}

	logger.Info("pool started",
		"workers", cfg.Pool.Workers,
		"jobs", cliCfg.Jobs,
		"rate", cliCfg.Rate)

	var g errgroup.Group
	if metricsServer != nil {
		g.Go(metricsServer.Start)
		logger.Info("metrics server listening", "address", metricsServer.Address())
	}

	submitSampleJobs(ctx, pool, cliCfg, logger)

	logger.Info("draining pool")
	pool.Close()

	stats := pool.Stats()
	logger.Info("pool terminated",
		"submitted", stats.Submitted,
		"completed", stats.Completed,
		"panicked", stats.Panicked,
		"live_workers", stats.LiveWorkers)

	if metricsServer != nil {
		if err := metricsServer.Stop(); err != nil {
			return err
		}
	}
	return g.Wait()
}

// loadConfiguration layers CLI flags over the config file over defaults.
func loadConfiguration(cliCfg *CLIConfig) (*config.Config, error) {
	cfg := config.Default()

	if cliCfg.ConfigPath != "" {
		loaded, err := config.Load(cliCfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cliCfg.Workers > 0 {
		cfg.Pool.Workers = cliCfg.Workers
	}
	if cliCfg.LogLevel != "" {
		cfg.Log.Level = cliCfg.LogLevel
	}
	if cliCfg.LogFormat != "" {
		cfg.Log.Format = cliCfg.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// submitSampleJobs pushes the demo workload onto the pool, throttled by the
// configured rate. Cancellation stops submission; jobs already enqueued
// still run to completion during Close.
func submitSampleJobs(ctx context.Context, pool *workpool.Pool, cliCfg *CLIConfig, logger *slog.Logger) {
	var limiter *rate.Limiter
	if cliCfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cliCfg.Rate), 1)
	}

	for i := 0; i < cliCfg.Jobs; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				logger.Info("submission interrupted", "submitted", i)
				return
			}
		} else if ctx.Err() != nil {
			logger.Info("submission interrupted", "submitted", i)
			return
		}

		tag := uuid.NewString()
		seq := i
		pool.Submit(func() {
			logger.Debug("sample job running", "job", tag, "seq", seq)
			time.Sleep(cliCfg.JobDuration)
		})
	}
}
