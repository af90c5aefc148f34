package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	envInterval = "PROCTABLE_INTERVAL"
	envLogFile  = "PROCTABLE_LOG_FILE"
)

// Config carries runtime options for proctable.
type Config struct {
	Interval time.Duration // 0 captures once at startup
	Title    string
	JSON     bool
	LogFile  string
}

func Default() Config {
	return Config{
		Interval: 2 * time.Second,
		Title:    "Processes",
	}
}

// FromFlags parses os.Args-style flags and environment overrides.
func FromFlags(args []string) (Config, error) {
	return Load(args, os.Getenv, os.Stderr)
}

// Load parses args with getenv supplying overrides. Environment values win
// over defaults; flags win over both. Usage text goes to usage.
func Load(args []string, getenv func(string) string, usage io.Writer) (Config, error) {
	cfg := Default()

	if v := getenv(envInterval); v != "" {
		d, err := parseInterval(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envInterval, err)
		}
		cfg.Interval = d
	}
	if v := getenv(envLogFile); v != "" {
		cfg.LogFile = v
	}

	fs := flag.NewFlagSet("proctable", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "refresh interval (0 captures once)")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "frame title")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print one capture as JSON and exit")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write debug log to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.Interval < 0 {
		return Config{}, fmt.Errorf("interval must be >= 0 (got %s)", cfg.Interval)
	}
	return cfg, nil
}

// parseInterval accepts a Go duration or a bare number of seconds.
func parseInterval(v string) (time.Duration, error) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	return time.ParseDuration(v + "s")
}
