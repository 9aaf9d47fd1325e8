package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	URL            string `mapstructure:"url"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// envOverrides are the environment variables that take precedence over the
// config file. DATABASE_URL is the single connection string selecting the
// backing database.
type envOverrides struct {
	DatabaseURL string `envconfig:"DATABASE_URL"`
	ServerPort  int    `envconfig:"SERVER_PORT"`
	CORSOrigin  string `envconfig:"CORS_ORIGIN"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("database.migrations_path", "migrations")
	viper.SetDefault("cors.allowed_origin", "http://localhost:3000")
	viper.SetDefault("rate_limit.rps", 100)
	viper.SetDefault("rate_limit.burst", 200)
	viper.SetDefault("logging.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional, environment variables can carry
		// everything needed.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if env.DatabaseURL != "" {
		config.Database.URL = env.DatabaseURL
	}
	if env.ServerPort != 0 {
		config.Server.Port = env.ServerPort
	}
	if env.CORSOrigin != "" {
		config.CORS.AllowedOrigin = env.CORSOrigin
	}
	if env.LogLevel != "" {
		config.Logging.Level = env.LogLevel
	}

	if config.Database.URL == "" {
		return nil, fmt.Errorf("database URL is not configured, set DATABASE_URL or database.url")
	}

	return &config, nil
}
