package app

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Dir is the root of the Terraform configuration tree to scan.
	Dir string
	// OutPath receives the JSON graph document; empty means stdout.
	OutPath string

	LogFormat     string
	LogLevel      string
	WorkerCount   int
	CloudPrefixes []string
}

// Defaults are the environment-derived default values the CLI seeds its
// flags with. Precedence is flags over environment over built-ins.
type Defaults struct {
	OutPath       string
	LogFormat     string
	LogLevel      string
	CloudPrefixes []string
}

// DefaultsFromEnv loads a .env file when present and reads the TFGRAPH_*
// environment variables on top of the built-in defaults.
func DefaultsFromEnv() Defaults {
	_ = godotenv.Load()

	d := Defaults{
		LogFormat: "text",
		LogLevel:  "info",
	}
	if v := os.Getenv("TFGRAPH_OUT"); v != "" {
		d.OutPath = v
	}
	if v := os.Getenv("TFGRAPH_LOG_FORMAT"); v != "" {
		d.LogFormat = v
	}
	if v := os.Getenv("TFGRAPH_LOG_LEVEL"); v != "" {
		d.LogLevel = v
	}
	if v := os.Getenv("TFGRAPH_CLOUD_PREFIXES"); v != "" {
		for _, prefix := range strings.Split(v, ",") {
			if prefix = strings.TrimSpace(prefix); prefix != "" {
				d.CloudPrefixes = append(d.CloudPrefixes, prefix)
			}
		}
	}
	return d
}

// NewConfig validates a Config and applies fallbacks for optional fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Dir == "" {
		return nil, errors.New("Dir is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 8
	}
	return &cfg, nil
}
