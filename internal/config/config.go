// Package config provides unified configuration loading for the concierge engine.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the concierge engine.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Mongo         MongoConfig         `yaml:"mongo"`
	Session       SessionConfig       `yaml:"session"`
	Completion    CompletionConfig    `yaml:"completion"`
	Retrieval     RetrievalConfig     `yaml:"retrieval"`
	Refresh       RefreshConfig       `yaml:"refresh"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI             string        `yaml:"uri"`
	Database        string        `yaml:"database"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"`
	SocketTimeout   time.Duration `yaml:"socket_timeout"`
	MaxPoolSize     uint64        `yaml:"max_pool_size"`
	MinPoolSize     uint64        `yaml:"min_pool_size"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
}

// SessionConfig holds conversation history store settings.
type SessionConfig struct {
	Driver   string        `yaml:"driver"` // memory or redis
	TTL      time.Duration `yaml:"ttl"`
	MaxTurns int           `yaml:"max_turns"`
	Redis    RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis-specific settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// CompletionConfig holds text-completion service settings.
type CompletionConfig struct {
	APIKey            string  `yaml:"-"` // environment only, never from file
	BaseURL           string  `yaml:"base_url"`
	IntentModel       string  `yaml:"intent_model"`
	AnswerModel       string  `yaml:"answer_model"`
	IntentTemperature float32 `yaml:"intent_temperature"`
	IntentMaxTokens   int     `yaml:"intent_max_tokens"`
	AnswerTemperature float32 `yaml:"answer_temperature"`
	AnswerMaxTokens   int     `yaml:"answer_max_tokens"`
}

// RetrievalConfig holds retrieval caps and history bounds.
type RetrievalConfig struct {
	MaxTours        int `yaml:"max_tours"`
	MaxTourFacts    int `yaml:"max_tour_facts"`
	MaxGeneralFacts int `yaml:"max_general_facts"`
	PreviewTours    int `yaml:"preview_tours"`
	HistoryTurns    int `yaml:"history_turns"`
}

// RefreshConfig holds the fact refresh job settings.
type RefreshConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Interval     time.Duration `yaml:"interval"`
	InitialDelay time.Duration `yaml:"initial_delay"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             3000,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     60 * time.Second,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Mongo: MongoConfig{
			URI:             "mongodb://localhost:27017",
			Database:        "concierge",
			ConnectTimeout:  30 * time.Second,
			SocketTimeout:   45 * time.Second,
			MaxPoolSize:     10,
			MinPoolSize:     5,
			MaxConnIdleTime: 30 * time.Second,
		},
		Session: SessionConfig{
			Driver:   "memory",
			TTL:      24 * time.Hour,
			MaxTurns: 10,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				DB:       0,
				PoolSize: 10,
			},
		},
		Completion: CompletionConfig{
			IntentModel:       "gpt-3.5-turbo",
			AnswerModel:       "gpt-4-turbo-preview",
			IntentTemperature: 0.3,
			IntentMaxTokens:   100,
			AnswerTemperature: 0.7,
			AnswerMaxTokens:   800,
		},
		Retrieval: RetrievalConfig{
			MaxTours:        10,
			MaxTourFacts:    5,
			MaxGeneralFacts: 10,
			PreviewTours:    3,
			HistoryTurns:    6,
		},
		Refresh: RefreshConfig{
			Enabled:      true,
			Interval:     24 * time.Hour,
			InitialDelay: 5 * time.Second,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo uri is required")
	}

	if c.Session.Driver != "memory" && c.Session.Driver != "redis" {
		return fmt.Errorf("invalid session driver: %s", c.Session.Driver)
	}

	if c.Retrieval.MaxTours < 1 || c.Retrieval.MaxTours > 50 {
		return fmt.Errorf("max_tours must be between 1 and 50")
	}

	if c.Retrieval.PreviewTours < 1 || c.Retrieval.PreviewTours > c.Retrieval.MaxTours {
		return fmt.Errorf("preview_tours must be between 1 and max_tours")
	}

	if c.Retrieval.HistoryTurns < 0 {
		return fmt.Errorf("history_turns must not be negative")
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("MONGODB_URI"); v != "" {
		cfg.Mongo.URI = v
	}

	if v := os.Getenv("MONGODB_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Session.Driver = "redis"
		cfg.Session.Redis.Addr = strings.TrimPrefix(v, "redis://")
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Completion.APIKey = v
	}

	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.Completion.BaseURL = v
	}

	if v := os.Getenv("INTENT_MODEL"); v != "" {
		cfg.Completion.IntentModel = v
	}

	if v := os.Getenv("ANSWER_MODEL"); v != "" {
		cfg.Completion.AnswerModel = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}

	if v := os.Getenv("FACT_REFRESH_ENABLED"); v == "false" {
		cfg.Refresh.Enabled = false
	}
}
