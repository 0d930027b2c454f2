package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	defaultAppEnv        = "dev"
	defaultServerPort    = "8080"
	defaultDatabaseURL   = "equiprent.db"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultOverdueSweep  = "0 */15 * * * *"
	defaultSeedOnStart   = "false"
	defaultCORSOrigins   = "http://localhost:3000,http://localhost:5173"
	defaultShutdownGrace = 10
)

type Config struct {
	AppEnv               string   `yaml:"app_env"`
	ServerPort           string   `yaml:"server_port"`
	DatabaseURL          string   `yaml:"database_url"`
	LogLevel             string   `yaml:"log_level"`
	LogFormat            string   `yaml:"log_format"`
	CORSAllowedOrigins   []string `yaml:"cors_allowed_origins"`
	OverdueSweepSchedule string   `yaml:"overdue_sweep_schedule"`
	SeedOnStart          bool     `yaml:"seed_on_start"`
	ShutdownGraceSeconds int      `yaml:"shutdown_grace_seconds"`
}

// Load reads an optional .env file, then an optional YAML file named by
// CONFIG_FILE, then lets environment variables override both.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:               defaultAppEnv,
		ServerPort:           defaultServerPort,
		DatabaseURL:          defaultDatabaseURL,
		LogLevel:             defaultLogLevel,
		LogFormat:            defaultLogFormat,
		CORSAllowedOrigins:   splitList(defaultCORSOrigins),
		OverdueSweepSchedule: defaultOverdueSweep,
		SeedOnStart:          parseBool(defaultSeedOnStart),
		ShutdownGraceSeconds: defaultShutdownGrace,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", cfg.AppEnv)))
	cfg.ServerPort = strings.TrimSpace(getEnv("SERVER_PORT", cfg.ServerPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", cfg.DatabaseURL))
	cfg.LogLevel = strings.TrimSpace(getEnv("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.TrimSpace(getEnv("LOG_FORMAT", cfg.LogFormat))
	cfg.OverdueSweepSchedule = strings.TrimSpace(getEnv("OVERDUE_SWEEP_SCHEDULE", cfg.OverdueSweepSchedule))

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}
	if v := os.Getenv("SEED_ON_START"); v != "" {
		cfg.SeedOnStart = parseBool(v)
	}
	if v := os.Getenv("SHUTDOWN_GRACE_SECONDS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("SHUTDOWN_GRACE_SECONDS must be a whole number of seconds, got %q", v)
		}
		cfg.ShutdownGraceSeconds = n
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a port number, got %q", cfg.ServerPort)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json")
	}
	if cfg.OverdueSweepSchedule != "" && cfg.OverdueSweepSchedule != "off" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(cfg.OverdueSweepSchedule); err != nil {
			return fmt.Errorf("invalid OVERDUE_SWEEP_SCHEDULE %q: %w", cfg.OverdueSweepSchedule, err)
		}
	}
	if cfg.ShutdownGraceSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_GRACE_SECONDS must be > 0")
	}
	if IsProdLike(cfg.AppEnv) && cfg.SeedOnStart {
		return fmt.Errorf("in prod/release SEED_ON_START must be false")
	}
	return nil
}

// SweepEnabled reports whether the overdue sweep should be scheduled.
func (c *Config) SweepEnabled() bool {
	return c.OverdueSweepSchedule != "" && c.OverdueSweepSchedule != "off"
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
