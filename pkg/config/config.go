package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Groq     GroqConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8000"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	LogLevel        string   `envconfig:"LOG_LEVEL" default:"info"`
}

// DatabaseConfig holds database configuration.
// Host, User, Password and Name have no defaults.
type DatabaseConfig struct {
	Driver         string `envconfig:"DB_DRIVER" default:"postgres"`
	Host           string `envconfig:"DB_HOST"`
	Port           string `envconfig:"DB_PORT"`
	User           string `envconfig:"DB_USER"`
	Password       string `envconfig:"DB_PASSWORD"`
	Name           string `envconfig:"DB_NAME"`
	SSLMode        string `envconfig:"DB_SSLMODE" default:"disable"`
	PoolSize       int    `envconfig:"DB_POOL_SIZE" default:"5"`
	ConnectRetries uint64 `envconfig:"DB_CONNECT_RETRIES" default:"0"`
	AutoMigrate    bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// GroqConfig holds the text-completion provider configuration
type GroqConfig struct {
	APIKey      string        `envconfig:"GROQ_API_KEY"`
	BaseURL     string        `envconfig:"GROQ_BASE_URL" default:"https://api.groq.com/openai/v1"`
	Model       string        `envconfig:"GROQ_MODEL" default:"llama3-70b-8192"`
	Timeout     time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`
	Temperature float32       `envconfig:"GROQ_TEMPERATURE" default:"0"`
}

// Load loads configuration from the environment, reading .env first when present
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return FromEnv()
}

// FromEnv decodes configuration from process environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Groq); err != nil {
		return nil, fmt.Errorf("groq config: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.Server.AllowedOrigins = trimAll(cfg.Server.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects malformed values. Missing credentials are not errors here:
// they leave the corresponding collaborator unavailable at startup.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMySQL, c.Database.Driver)
	}
	if c.Database.PoolSize < 1 {
		return fmt.Errorf("DB_POOL_SIZE must be at least 1, got %d", c.Database.PoolSize)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must not be negative")
	}
	return nil
}

// IsProduction reports whether the server runs with the production posture
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// Address returns host:port for the HTTP listener
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// MissingSettings lists the required database settings that were not supplied
func (d DatabaseConfig) MissingSettings() []string {
	var missing []string
	if d.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if d.User == "" {
		missing = append(missing, "DB_USER")
	}
	if d.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	return missing
}

// EffectivePort returns DB_PORT or the driver's standard port
func (d DatabaseConfig) EffectivePort() string {
	if d.Port != "" {
		return d.Port
	}
	if d.Driver == DriverMySQL {
		return "3306"
	}
	return "5432"
}

// DSN returns the driver-specific connection string
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverMySQL {
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			d.User,
			d.Password,
			d.Host,
			d.EffectivePort(),
			d.Name,
		)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.EffectivePort(),
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
