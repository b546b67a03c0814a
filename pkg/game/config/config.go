// Package config loads game settings from the environment and the command line.
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"

	"escaperoom/pkg/engine/logging"
)

// EnvPrefix is prepended to every environment variable, e.g. ESCAPE_SEED.
const EnvPrefix = "ESCAPE"

// Config holds the settings for one run. Environment keys are the prefix
// plus the field name in upper snake case, e.g. ESCAPE_LOG_LEVEL.
type Config struct {
	Seed    int64  `split_words:"true" default:"0"` // 0 picks a time-based seed
	Clues   string `split_words:"true"`             // catalog file; empty uses the embedded one
	Lang    string `split_words:"true" default:"en"`
	NoColor bool   `split_words:"true" default:"false"`

	LogLevel    string `split_words:"true" default:"info"`
	LogEncoding string `split_words:"true" default:"console"`
	LogFile     string `split_words:"true"`

	// Command line only
	DumpMap bool `ignored:"true"`
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.LogLevel,
		Encoding:   c.LogEncoding,
		OutputPath: c.LogFile,
	}
}

// Load reads the environment, then lets args (without the program name)
// override it. Usage and flag errors are written to errOut.
func Load(args []string, errOut io.Writer) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	fs := flag.NewFlagSet("escaperoom", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 for time-based)")
	fs.StringVar(&cfg.Clues, "clues", cfg.Clues, "YAML clue catalog to use instead of the built-in one")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable coloured output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogEncoding, "log-encoding", cfg.LogEncoding, "log encoding: console or json")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write diagnostics to this file")
	fs.BoolVar(&cfg.DumpMap, "dump-map", false, "print the generated room graph and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return &cfg, nil
}
