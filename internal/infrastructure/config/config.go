package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Model    ModelConfig    `mapstructure:"model"`
	Limits   LimitsConfig   `mapstructure:"limits"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig holds Redis settings for the result cache
type RedisConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db"`
	ResultTTLHours int    `mapstructure:"result_ttl_hours"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AuthConfig holds token signing settings
type AuthConfig struct {
	SecretKey       string `mapstructure:"secret_key"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
}

// ModelConfig holds sentiment model settings. Mode selects the classifier:
// "lexicon" runs the built-in classifier, "remote" calls a model server.
type ModelConfig struct {
	Name           string `mapstructure:"name"`
	Mode           string `mapstructure:"mode"`
	ServiceURL     string `mapstructure:"service_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LimitsConfig holds the request ceilings
type LimitsConfig struct {
	MaxTextLength int `mapstructure:"max_text_length"`
	MaxBatchSize  int `mapstructure:"max_batch_size"`
	MaxFileSizeMB int `mapstructure:"max_file_size_mb"`
	Workers       int `mapstructure:"workers"`
}

// TokenTTL returns the configured token lifetime
func (c *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// Timeout returns the configured model server timeout
func (c *ModelConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MaxFileSizeBytes returns the file-size ceiling in bytes
func (c *LimitsConfig) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// ResultTTL returns the cache lifetime for classification results
func (c *RedisConfig) ResultTTL() time.Duration {
	return time.Duration(c.ResultTTLHours) * time.Hour
}

// Load reads configuration from an optional config file and from
// SENTIMENT_-prefixed environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvPrefix("SENTIMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file, defaults and environment apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "sentiment")
	v.SetDefault("database.password", "sentiment")
	v.SetDefault("database.dbname", "sentiment")
	v.SetDefault("database.sslmode", "disable")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.result_ttl_hours", 24)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Auth defaults
	v.SetDefault("auth.secret_key", "change-this-in-production")
	v.SetDefault("auth.token_ttl_minutes", 30)

	// Model defaults
	v.SetDefault("model.name", "cardiffnlp/twitter-xlm-roberta-base-sentiment")
	v.SetDefault("model.mode", "lexicon")
	v.SetDefault("model.service_url", "http://localhost:8500")
	v.SetDefault("model.timeout_seconds", 30)

	// Limit defaults
	v.SetDefault("limits.max_text_length", 512)
	v.SetDefault("limits.max_batch_size", 100)
	v.SetDefault("limits.max_file_size_mb", 10)
	v.SetDefault("limits.workers", 8)
}
