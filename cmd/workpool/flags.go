package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	Workers     int
	Jobs        int
	JobDuration time.Duration
	Rate        float64
	LogLevel    string
	LogFormat   string
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("WORKPOOL_CONFIG", ""),
		"Path to configuration file, empty for defaults (env: WORKPOOL_CONFIG)")

	flag.IntVar(&cfg.Workers, "workers",
		getEnvInt("WORKPOOL_WORKERS", 0),
		"Worker count, overrides config when positive (env: WORKPOOL_WORKERS)")

	flag.IntVar(&cfg.Jobs, "jobs",
		getEnvInt("WORKPOOL_JOBS", 20),
		"Number of sample jobs to submit (env: WORKPOOL_JOBS)")

	flag.DurationVar(&cfg.JobDuration, "job-duration",
		getEnvDuration("WORKPOOL_JOB_DURATION", 100*time.Millisecond),
		"Simulated duration of each sample job (env: WORKPOOL_JOB_DURATION)")

	flag.Float64Var(&cfg.Rate, "rate",
		getEnvFloat("WORKPOOL_RATE", 50),
		"Maximum job submissions per second, 0 for unlimited (env: WORKPOOL_RATE)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("WORKPOOL_LOG_LEVEL", ""),
		"Log level: debug, info, warn, error; overrides config (env: WORKPOOL_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("WORKPOOL_LOG_FORMAT", ""),
		"Log format: json, text; overrides config (env: WORKPOOL_LOG_FORMAT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}

	if cfg.Jobs < 0 {
		return fmt.Errorf("invalid job count: %d", cfg.Jobs)
	}

	if cfg.Rate < 0 {
		return fmt.Errorf("invalid submission rate: %f", cfg.Rate)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Fixed-Size Worker Pool Demo

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Run eight workers through the default sample workload
  %s --workers=8

  # Run with a config file and text logs
  %s --config=/etc/workpool/config.yaml --log-format=text

  # Run with environment variables
  export WORKPOOL_WORKERS=4
  export WORKPOOL_LOG_LEVEL=debug
  %s

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
