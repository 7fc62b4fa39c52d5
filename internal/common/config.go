package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	OCR        OCRConfig
	Classifier ClassifierConfig
	Vault      VaultConfig
	Ingest     IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	LitePath         string // sqlite fallback for single-node runs when DSN is empty
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm    string
	Tesseract   string
	DPI         int
	TessdataDir string
}

// ClassifierConfig holds classification rule table configuration
type ClassifierConfig struct {
	RulesetPath string // optional JSON rule table; empty -> compiled-in default
}

// VaultConfig holds document vault (filesystem) configuration
type VaultConfig struct {
	RootDir string
}

// IngestConfig holds batch/watch ingestion configuration
type IngestConfig struct {
	WatchDir       string // optional drop folder; empty -> watcher disabled
	WatchUploader  string // user UUID that owns drop folder ingests
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			LitePath:         getEnv("DB_LITE_PATH", "./docuvault.db"),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftoppm:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			DPI:         getEnvAsInt("OCR_DPI", 300),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
		Classifier: ClassifierConfig{
			RulesetPath: getEnv("CLASSIFIER_RULESET", ""),
		},
		Vault: VaultConfig{
			RootDir: getEnv("VAULT_DIR", "./uploads"),
		},
		Ingest: IngestConfig{
			WatchDir:       getEnv("WATCH_DIR", ""),
			WatchUploader:  getEnv("WATCH_UPLOADER_ID", ""),
			Workers:        getEnvAsInt("INGEST_WORKERS", 4),
			QueueSize:      getEnvAsInt("INGEST_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("INGEST_PROCESS_TIMEOUT", 3*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
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

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Database.LitePath == "" {
		return NewAppError("CONFIG_ERROR", "one of DB_URL or DB_LITE_PATH is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Vault.RootDir == "" {
		return NewAppError("CONFIG_ERROR", "VAULT_DIR is required", ErrInvalidInput)
	}
	if c.Ingest.WatchDir != "" && c.Ingest.WatchUploader == "" {
		return NewAppError("CONFIG_ERROR", "WATCH_UPLOADER_ID is required when WATCH_DIR is set", ErrInvalidInput)
	}
	return nil
}
