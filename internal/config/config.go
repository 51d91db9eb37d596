package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig represents HTTP server settings.
type ServerConfig struct {
	Port int    `yaml:"port" env:"SERVER_PORT"`
	Mode string `yaml:"mode" env:"SERVER_MODE"`
}

// DatabaseConfig represents PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`
	MaxConns int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
}

// JWTConfig represents token issuing settings.
type JWTConfig struct {
	Secret         string `yaml:"secret" env:"JWT_SECRET"`
	AccessTokenExp string `yaml:"accessTokenExpiration" env:"JWT_ACCESS_EXPIRATION"`
	Issuer         string `yaml:"issuer" env:"JWT_ISSUER"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
}

// LoadConfig loads configuration from a YAML file, then applies environment
// variable overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		JWT: JWTConfig{
			AccessTokenExp: "24h",
			Issuer:         "sysgesco",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// GetPostgresConnectionString builds the pgx connection string.
func (c *DatabaseConfig) GetPostgresConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}
