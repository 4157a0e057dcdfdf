package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	PrometheusHost string `toml:"prometheus_host"`
	PrometheusPort int    `toml:"prometheus_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	SentryEnabled    bool   `toml:"sentry_enabled"`
	HoneycombEnabled bool   `toml:"honeycomb_enabled"`
	Environment      string `toml:"environment"`

	// login requests per minute per client ip, before rate limiting kicks in
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
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

func Load(env, path string) (*Config, error) {
	var cfgToml Toml
	if _, err := toml.DecodeFile(path, &cfgToml); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := cfgToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s is empty", env)
	}

	return cfg, nil
}
