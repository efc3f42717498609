package config

import (
	"net"
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings for execution history.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host has been configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig holds object storage settings for archived execution output.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an object storage endpoint has been configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// SendGridConfig holds settings for the outbound marketing contacts API.
// APIKey is a secret: it has no default and must never be logged.
type SendGridConfig struct {
	APIKey         string
	BaseURL        string
	HTTPTimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	// AppHost is the interface the harness API binds to; empty means all interfaces.
	AppHost  string
	Port     string
	LogLevel string
	SendGrid SendGridConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
}

// ListenAddr is the host:port the harness API listens on.
func (c *AppConfig) ListenAddr() string {
	return net.JoinHostPort(c.AppHost, c.Port)
}

// HistoryEnabled reports whether both history backends are configured.
func (c *AppConfig) HistoryEnabled() bool {
	return c.Database.Enabled() && c.MinIO.Enabled()
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", ""),
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		SendGrid: SendGridConfig{
			APIKey:         getEnv("SENDGRID_API_KEY", ""),
			BaseURL:        getEnv("SENDGRID_BASE_URL", "https://api.sendgrid.com"),
			HTTPTimeoutSec: getEnvInt("HTTP_TIMEOUT_SEC", 30),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "friendgrid-executions"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
