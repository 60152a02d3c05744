// Package config loads client settings from defaults, an optional JSON file
// and command-line flags, in that order of precedence.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/apetrenko/contentgen/internal/flagx"
	"github.com/apetrenko/contentgen/internal/timex"
)

type Config struct {
	// BaseURL is the API server address, e.g. http://localhost:8118.
	BaseURL      string `json:"base_url"`
	DatabasePath string `json:"database_path"`

	HealthPollInterval timex.Duration `json:"health_poll_interval"`
	AdminPollInterval  timex.Duration `json:"admin_poll_interval"`
}

func defaultConfig() *Config {
	return &Config{
		BaseURL:            "http://localhost:8118",
		DatabasePath:       "contentgen.db",
		HealthPollInterval: timex.Duration(10 * time.Second),
		AdminPollInterval:  timex.Duration(30 * time.Second),
	}
}

var configFlags = []string{"-a", "-address", "-d", "-database"}

// LoadConfig builds the effective configuration. A missing config file is not
// an error unless its path was given explicitly.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if path := flagx.JSONConfigFlags(); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyFlags(flagx.FilterArgs(os.Args[1:], configFlags)); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&c.BaseURL, "address", c.BaseURL, "API server address")
	fs.StringVar(&c.BaseURL, "a", c.BaseURL, "API server address (short)")
	fs.StringVar(&c.DatabasePath, "database", c.DatabasePath, "settings database path")
	fs.StringVar(&c.DatabasePath, "d", c.DatabasePath, "settings database path (short)")
	return fs.Parse(args)
}
