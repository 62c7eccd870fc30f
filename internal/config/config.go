package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/wqi/internal/wqi"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Hermes  HermesConfig  `yaml:"hermes"`
	Batch   BatchConfig   `yaml:"batch"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port               int    `yaml:"port"`
	MetricsPort        int    `yaml:"metrics_port"`
	AdminToken         string `yaml:"admin_token"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

// HermesConfig points at the NATS server. An empty URL disables messaging.
type HermesConfig struct {
	URL string `yaml:"url"`
}

type BatchConfig struct {
	MaxSamples  int `yaml:"max_samples"`
	Concurrency int `yaml:"concurrency"`
}

type ScoringConfig struct {
	Weights wqi.WeightSet `yaml:"weights"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Batch: BatchConfig{
			MaxSamples:  500,
			Concurrency: 8,
		},
		Scoring: ScoringConfig{
			Weights: wqi.DefaultWeights(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Scoring.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("scoring.weights: %w", err)
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("server.rate_limit_per_minute must be positive, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Batch.MaxSamples <= 0 {
		return nil, fmt.Errorf("batch.max_samples must be positive, got %d", cfg.Batch.MaxSamples)
	}
	if cfg.Batch.Concurrency <= 0 {
		return nil, fmt.Errorf("batch.concurrency must be positive, got %d", cfg.Batch.Concurrency)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WQI_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("WQI_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("WQI_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("WQI_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("WQI_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("WQI_BATCH_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Batch.MaxSamples = n
		}
	}
	if v := os.Getenv("WQI_BATCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Batch.Concurrency = n
		}
	}
	if v := os.Getenv("WQI_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WQI_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
