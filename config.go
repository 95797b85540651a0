package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/crillab/gopherbool/bf"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// config holds the settings shared by all commands.
// They are read from the environment first, then overridden by command-line flags.
type config struct {
	LogLevel string `env:"GOPHERBOOL_LOG_LEVEL" envDefault:"info"`
	Prompt   string `env:"GOPHERBOOL_PROMPT"    envDefault:">> "`
	MaxVars  int    `env:"GOPHERBOOL_MAX_VARS"  envDefault:"26"`
	Workers  int    `env:"GOPHERBOOL_WORKERS"   envDefault:"4"`
	Output   string `env:"GOPHERBOOL_OUTPUT"    envDefault:"text"`
}

// loadConfig loads configuration from environment variables.
func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// addFlags registers one flag per setting, defaulting to the current value.
func (cfg *config) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warning, error)")
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "prompt displayed when reading from the standard input")
	fs.IntVar(&cfg.MaxVars, "max-vars", cfg.MaxVars, "maximum number of variables of a formula whose assignments are enumerated")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of formulas processed concurrently")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format (text or yaml)")
}

func (cfg config) validate() error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	if cfg.MaxVars < 0 || cfg.MaxVars > bf.NbSymbols {
		return errors.Errorf("invalid max number of variables %d, expected between 0 and %d", cfg.MaxVars, bf.NbSymbols)
	}
	if cfg.Workers < 1 {
		return errors.Errorf("invalid number of workers %d", cfg.Workers)
	}
	if cfg.Output != outputText && cfg.Output != outputYAML {
		return errors.Errorf("invalid output format %q", cfg.Output)
	}
	return nil
}
