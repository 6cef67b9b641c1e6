package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	GoogleAPIKey   string `yaml:"google_api_key"`
	GeminiModel    string `yaml:"gemini_model"`
	HTTPAddr       string `yaml:"http_addr"`
	CORSOrigin     string `yaml:"cors_origin"`
	StorageBackend string `yaml:"storage_backend"`
	JournalFile    string `yaml:"journal_db_file"`
	PostgresDSN    string `yaml:"postgres_dsn"`
	LogLevel       string `yaml:"log_level"`
	Env            string `yaml:"app_env"`
}

// New reads .env (if any), the optional YAML file named by CONFIG_FILE and
// then the process environment. Environment values win.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		GeminiModel:    "gemini-1.5-flash",
		HTTPAddr:       ":8000",
		CORSOrigin:     "http://localhost:5173",
		StorageBackend: BackendFile,
		JournalFile:    "journal_db.json",
		LogLevel:       "info",
		Env:            "development",
	}
}

func (c *Config) loadFile(path string) error {
	op := "internal/config/config.go loadFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: read %s: %w", op, path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%s: parse %s: %w", op, path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.GoogleAPIKey = getEnv("GOOGLE_API_KEY", c.GoogleAPIKey)
	c.GeminiModel = getEnv("GEMINI_MODEL", c.GeminiModel)
	c.HTTPAddr = getEnv("HTTP_ADDR", c.HTTPAddr)
	c.CORSOrigin = getEnv("CORS_ORIGIN", c.CORSOrigin)
	c.StorageBackend = getEnv("STORAGE_BACKEND", c.StorageBackend)
	c.JournalFile = getEnv("JOURNAL_DB_FILE", c.JournalFile)
	c.PostgresDSN = getEnv("POSTGRES_DSN", c.PostgresDSN)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Env = getEnv("APP_ENV", c.Env)
}

// Validate checks the storage and environment settings. The API key is not
// checked here: without one the reflection requests fail on their own.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile:
		if c.JournalFile == "" {
			return errors.New("JOURNAL_DB_FILE is required when STORAGE_BACKEND=file")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
