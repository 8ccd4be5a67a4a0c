package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI               string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Name              string `env:"DB_NAME" env-default:"nosql_demo"`
	Collection        string `env:"MONGO_COLLECTION" env-default:"students"`
	ConnectTimeoutSec int    `env:"MONGO_CONNECT_TIMEOUT_SEC" env-default:"10"`
}

// ConnectTimeout bounds the initial connect + ping.
func (c MongoConfig) ConnectTimeout() time.Duration {
	if c.ConnectTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ConnectTimeoutSec) * time.Second
}

// MinIOConfig holds object storage settings used by student exports.
// Exports are disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" env-default:"student-exports"`
	UseSSL    bool   `env:"MINIO_USE_SSL" env-default:"false"`
	// URLExpiryMin is the lifetime of presigned download links.
	URLExpiryMin int `env:"EXPORT_URL_EXPIRY_MIN" env-default:"15"`
}

// Enabled reports whether an object storage endpoint was configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// URLExpiry returns the presigned URL lifetime.
func (c MinIOConfig) URLExpiry() time.Duration {
	if c.URLExpiryMin <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.URLExpiryMin) * time.Minute
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; every value has a default so the demo runs with no setup.
type AppConfig struct {
	AppHost   string `env:"APP_HOST" env-default:"localhost:3000"`
	Port      string `env:"PORT" env-default:"3000"`
	StaticDir string `env:"STATIC_DIR" env-default:"public"`
	Mongo     MongoConfig
	MinIO     MinIOConfig
	Log       LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over .env entries.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return &cfg, nil
}

// Describe renders the env variables Load understands, for --help output.
func Describe(header string) string {
	var cfg AppConfig
	text, err := cleanenv.GetDescription(&cfg, &header)
	if err != nil {
		return header
	}
	return text
}
