package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process settings. Environment variables provide the
// defaults and command-line flags override them.
type Config struct {
	Addr      string `env:"TIERBOARD_ADDR" envDefault:":8080"`
	Print     bool   `env:"TIERBOARD_PRINT"`
	LogPrefix string `env:"TIERBOARD_LOG_PREFIX" envDefault:"[TIERBOARD] "`
}

// parseConfig loads env defaults into a Config and then applies args.
//
// Command-line flags:
//
//	-addr: Listen address for the dashboard server
//	-print: Render the dashboard once to stdout and exit
//	-log-prefix: Prefix for log lines
func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address for the dashboard server")
	fs.BoolVar(&cfg.Print, "print", cfg.Print, "Render the dashboard once to stdout and exit")
	fs.StringVar(&cfg.LogPrefix, "log-prefix", cfg.LogPrefix, "Prefix for log lines")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}
