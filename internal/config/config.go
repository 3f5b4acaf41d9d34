package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type ContributionStoreType string

const (
	ContributionStoreRedis  ContributionStoreType = "redis"
	ContributionStoreMemory ContributionStoreType = "memory"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`
	RedisHost        string `toml:"redis_host"`
	RedisPort        string `toml:"redis_port"`

	// smart tracking
	ContributionStore           ContributionStoreType `toml:"contribution_store"`
	ContributionCacheSizeMB     int                   `toml:"contribution_cache_size_mb"`
	TimeZone                    string                `toml:"time_zone"`
	NotesRateLimitAllowedPerMin int                   `toml:"notes_rate_limit_allowed_per_min"`
	MaxRequestBodyKB            int                   `toml:"max_request_body_kb"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the config table of the given env.
func Load(env, path string) (*Config, error) {
	var cfgToml Toml
	if _, err := toml.DecodeFile(path, &cfgToml); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := cfgToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not set", env)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ContributionStore == "" {
		c.ContributionStore = ContributionStoreRedis
	}
	if c.ContributionCacheSizeMB <= 0 {
		c.ContributionCacheSizeMB = 8
	}
	if c.NotesRateLimitAllowedPerMin <= 0 {
		c.NotesRateLimitAllowedPerMin = 60
	}
	if c.MaxRequestBodyKB <= 0 {
		c.MaxRequestBodyKB = 256
	}
	if c.TimeZone == "" {
		c.TimeZone = "Local"
	}
}
