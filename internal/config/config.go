package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Session  SessionConfig
	OpenAI   OpenAIConfig
	App      AppConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration. When URL is set the server
// connects to Postgres; otherwise it uses the SQLite file at Path.
type DatabaseConfig struct {
	URL  string
	Path string
}

// SMTPConfig holds mail relay configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Provider string // "smtp" or "log"
}

// Address returns the relay host:port
func (c SMTPConfig) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// SessionConfig holds session cookie signing configuration
type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

// OpenAIConfig holds text-generation provider configuration
type OpenAIConfig struct {
	APIKey string
}

// AppConfig holds application-level settings
type AppConfig struct {
	BaseURL      string
	FreeSOPLimit int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:  getEnv("DATABASE_URL", ""),
			Path: getEnv("DB_FILE", "leads.db"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_SERVER", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			Provider: getEnv("MAIL_PROVIDER", "smtp"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "change-this-in-production"),
			Expiry: getEnvAsDuration("SESSION_EXPIRY", 24*time.Hour),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
		App: AppConfig{
			BaseURL:      getEnv("BASE_URL", "http://127.0.0.1:8000"),
			FreeSOPLimit: getEnvAsInt("FREE_SOP_LIMIT", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
