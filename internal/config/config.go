package config

import (
	"fmt"
	"time"

	"github.com/shettypp/ai-syllabus-planner/pkg/config"
	"github.com/shettypp/ai-syllabus-planner/pkg/logger"
	"go.uber.org/zap"
)

const serviceName = "planner"

// Config holds the planner service settings
type Config struct {
	Service struct {
		Name    string
		Version string
	}

	Server struct {
		HTTP struct {
			Port    string
			Timeout time.Duration
			Debug   bool
		}
		GRPC struct {
			Port string
		}
	}

	Database DatabaseConfig

	Redis struct {
		Host     string
		Port     int
		Password string
		DB       int
	}

	JWT struct {
		Secret            string
		AccessTokenExpiry time.Duration
	}

	Auth struct {
		PasswordMinLength int
		HashCost          int
	}

	Log struct {
		Level    string
		Format   string
		Output   string
		FilePath string
	}

	AI struct {
		Provider string
		Model    string
		APIKey   string
		BaseURL  string
		CacheTTL time.Duration
		Timeout  time.Duration
	}

	Planner struct {
		// Timezone decides which calendar date "today" is.
		Timezone      string
		TemplatesFile string
		DailyCap      int
		LockTTL       time.Duration
	}

	Logger *zap.Logger
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SlowThreshold   time.Duration
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisAddr returns host:port of the redis server
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Location resolves the planner timezone, defaulting to UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Planner.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Planner.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid planner timezone %q: %w", c.Planner.Timezone, err)
	}
	return loc, nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"service.name":                serviceName,
		"service.version":             "dev",
		"server.http.port":            "8080",
		"server.http.timeout":         "30s",
		"server.grpc.port":            "9090",
		"database.host":               "localhost",
		"database.port":               5432,
		"database.name":               "planner",
		"database.user":               "postgres",
		"database.sslmode":            "disable",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "30m",
		"database.conn_max_idle_time": "5m",
		"database.slow_threshold":     "200ms",
		"redis.host":                  "localhost",
		"redis.port":                  6379,
		"jwt.access_token_expiry":     "24h",
		"auth.password_min_length":    8,
		"auth.hash_cost":              10,
		"log.level":                   "info",
		"log.format":                  "json",
		"log.output":                  "stdout",
		"ai.provider":                 "googleai",
		"ai.model":                    "gemini-1.5-flash",
		"ai.cache_ttl":                "24h",
		"ai.timeout":                  "60s",
		"planner.timezone":            "UTC",
		"planner.daily_cap":           2,
		"planner.lock_ttl":            "30s",
	}
}

// Load reads the planner configuration and builds its logger
func Load() (*Config, error) {
	cfg, err := config.Load(serviceName, defaults())
	if err != nil {
		return nil, err
	}

	appConfig := &Config{}

	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")

	appConfig.Server.HTTP.Port = cfg.GetString("server.http.port")
	appConfig.Server.HTTP.Timeout = cfg.GetDuration("server.http.timeout")
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.http.debug")
	appConfig.Server.GRPC.Port = cfg.GetString("server.grpc.port")

	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.SSLMode = cfg.GetString("database.sslmode")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetDuration("database.conn_max_lifetime")
	appConfig.Database.ConnMaxIdleTime = cfg.GetDuration("database.conn_max_idle_time")
	appConfig.Database.SlowThreshold = cfg.GetDuration("database.slow_threshold")

	appConfig.Redis.Host = cfg.GetString("redis.host")
	appConfig.Redis.Port = cfg.GetInt("redis.port")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	appConfig.JWT.Secret = cfg.GetString("jwt.secret")
	appConfig.JWT.AccessTokenExpiry = cfg.GetDuration("jwt.access_token_expiry")

	appConfig.Auth.PasswordMinLength = cfg.GetInt("auth.password_min_length")
	appConfig.Auth.HashCost = cfg.GetInt("auth.hash_cost")

	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")
	appConfig.Log.FilePath = cfg.GetString("log.file_path")

	appConfig.AI.Provider = cfg.GetString("ai.provider")
	appConfig.AI.Model = cfg.GetString("ai.model")
	appConfig.AI.APIKey = cfg.GetString("ai.api_key")
	appConfig.AI.BaseURL = cfg.GetString("ai.base_url")
	appConfig.AI.CacheTTL = cfg.GetDuration("ai.cache_ttl")
	appConfig.AI.Timeout = cfg.GetDuration("ai.timeout")

	appConfig.Planner.Timezone = cfg.GetString("planner.timezone")
	appConfig.Planner.TemplatesFile = cfg.GetString("planner.templates_file")
	appConfig.Planner.DailyCap = cfg.GetInt("planner.daily_cap")
	appConfig.Planner.LockTTL = cfg.GetDuration("planner.lock_ttl")

	if appConfig.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}
	if _, err := appConfig.Location(); err != nil {
		return nil, err
	}

	appConfig.Logger, err = logger.NewZapLogger(logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		FilePath:    appConfig.Log.FilePath,
		Development: appConfig.Server.HTTP.Debug,
	})
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}
