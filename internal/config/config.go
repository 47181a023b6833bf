package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model.
// It captures where posts come from, how analysis runs, and observability.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type StorageConfig struct {
	// SQLite corpus path. Env MENTIONGRAPH_DB overrides it
	DBPath string `yaml:"dbPath"`
}

type CorpusConfig struct {
	// Optional JSON or YAML corpus read instead of the store
	Path string `yaml:"path"`
}

type AnalysisConfig struct {
	// Goroutines used to build the follows graph
	Workers int `yaml:"workers"`
	// Number of influencers to report; 0 reports everyone
	TopN int `yaml:"topN"`
	// Only posts from the last WindowHours are analyzed; 0 means all posts
	WindowHours int `yaml:"windowHours"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // e.g. ":9090"
}

type LoggingConfig struct {
	Level string `yaml:"level"` // info, warn, error
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Storage:  StorageConfig{DBPath: "./mentiongraph.db"},
		Analysis: AnalysisConfig{Workers: 4, TopN: 20},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if v := os.Getenv("MENTIONGRAPH_DB"); v != "" {
		c.Storage.DBPath = v
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
	if v := os.Getenv("MENTIONGRAPH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Analysis.Workers < 0 {
		return fmt.Errorf("analysis.workers must be >= 0, got %d", c.Analysis.Workers)
	}
	if c.Analysis.TopN < 0 {
		return fmt.Errorf("analysis.topN must be >= 0, got %d", c.Analysis.TopN)
	}
	if c.Analysis.WindowHours < 0 {
		return fmt.Errorf("analysis.windowHours must be >= 0, got %d", c.Analysis.WindowHours)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

// Load reads YAML config from path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.ResolveEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
