// Package config loads the trackport.yaml configuration file and its
// environment overrides. Flag handling stays with the CLI; precedence is
// flags > env > yaml > defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the trackport.yaml configuration file.
type Config struct {
	Email          string `yaml:"email"`
	OutputTimezone string `yaml:"output_timezone"`
	ProjectsFile   string `yaml:"projects_file"`
	MySQLDSN       string `yaml:"mysql_dsn"`
}

// Load reads the config file at path (missing file is fine, it just means
// defaults) and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		OutputTimezone: "Asia/Bangkok",
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
		}
		// Handle env var interpolation in the DSN so credentials can stay
		// out of the file.
		cfg.MySQLDSN = os.Expand(cfg.MySQLDSN, os.Getenv)
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if v := os.Getenv("TRACKPORT_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("TRACKPORT_OUTPUT_TZ"); v != "" {
		cfg.OutputTimezone = v
	}
	if v := os.Getenv("TRACKPORT_PROJECTS"); v != "" {
		cfg.ProjectsFile = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		cfg.MySQLDSN = v
	}
	if cfg.OutputTimezone == "" {
		cfg.OutputTimezone = "Asia/Bangkok"
	}

	return cfg, nil
}
