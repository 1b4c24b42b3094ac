package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPath is read when Load is called with an empty path.
const ConfigPath = "config.yaml"

const (
	defaultLogLevel              = "info"
	defaultArticleListLimit      = 50
	defaultAPIRateLimitPerMinute = 120
	defaultShutdownTimeout       = 10
)

// TablesConfig names the externally managed tables the reader queries.
type TablesConfig struct {
	Books    string `yaml:"books"`
	Verses   string `yaml:"verses"`
	Articles string `yaml:"articles"`
}

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	Port                     string       `yaml:"port"`
	LogLevel                 string       `yaml:"logLevel"`
	DatabaseURL              string       `yaml:"databaseURL"`
	DBMaxOpenConns           int          `yaml:"dbMaxOpenConns"`
	DBMaxIdleConns           int          `yaml:"dbMaxIdleConns"`
	DBConnMaxLifetimeMinutes int          `yaml:"dbConnMaxLifetimeMinutes"`
	Tables                   TablesConfig `yaml:"tables"`
	RedisAddr                string       `yaml:"redisAddr"`
	RedisPassword            string       `yaml:"redisPassword"`
	APIRateLimitPerMinute    int          `yaml:"apiRateLimitPerMinute"`
	TrustedProxyCIDRs        []string     `yaml:"trustedProxyCidrs"`
	ArticleListLimit         int          `yaml:"articleListLimit"`
	ShutdownTimeoutSeconds   int          `yaml:"shutdownTimeoutSeconds"`
}

// DBConnMaxLifetime converts the configured minutes to a duration.
func (c FileConfig) DBConnMaxLifetime() time.Duration {
	return time.Duration(c.DBConnMaxLifetimeMinutes) * time.Minute
}

// ShutdownTimeout converts the configured seconds to a duration.
func (c FileConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// RateLimitEnabled reports whether the API limiter should be built.
func (c FileConfig) RateLimitEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

// Load reads config from path (defaults to config.yaml).
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func applyEnv(cfg *FileConfig) error {
	if v := os.Getenv("READER_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("READER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("READER_TRUSTED_PROXY_CIDRS"); v != "" {
		cfg.TrustedProxyCIDRs = splitCSV(v)
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"READER_API_RATE_LIMIT_PER_MINUTE", &cfg.APIRateLimitPerMinute},
		{"READER_ARTICLE_LIST_LIMIT", &cfg.ArticleListLimit},
	}
	for _, item := range ints {
		v := strings.TrimSpace(os.Getenv(item.name))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", item.name, err)
		}
		*item.dst = n
	}
	return nil
}

func applyDefaults(cfg *FileConfig) {
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.ArticleListLimit == 0 {
		cfg.ArticleListLimit = defaultArticleListLimit
	}
	if cfg.APIRateLimitPerMinute == 0 {
		cfg.APIRateLimitPerMinute = defaultAPIRateLimitPerMinute
	}
	if cfg.ShutdownTimeoutSeconds == 0 {
		cfg.ShutdownTimeoutSeconds = defaultShutdownTimeout
	}
}

func validateConfig(cfg FileConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required (set in config.yaml or READER_PORT)")
	}
	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("config: port %q is not a valid TCP port", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return errors.New("config: databaseURL is required (set in config.yaml or DATABASE_URL)")
	}
	if cfg.ArticleListLimit < 0 {
		return errors.New("config: articleListLimit must be positive")
	}
	if cfg.APIRateLimitPerMinute < 0 {
		return errors.New("config: apiRateLimitPerMinute must be positive")
	}
	if cfg.DBMaxOpenConns < 0 || cfg.DBMaxIdleConns < 0 || cfg.DBConnMaxLifetimeMinutes < 0 {
		return errors.New("config: database pool settings must not be negative")
	}
	if cfg.ShutdownTimeoutSeconds < 0 {
		return errors.New("config: shutdownTimeoutSeconds must not be negative")
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
