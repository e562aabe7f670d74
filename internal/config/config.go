// Package config reads process configuration from the environment.
//
// A .env file in the working directory is loaded first (see cmd/ entrypoints,
// which import github.com/joho/godotenv/autoload).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SessionStoreSQL      = "sql"
	SessionStoreDynamoDB = "dynamodb"
)

var (
	ErrMissingConnectionString = errors.New("POSTGRES_CONNECTION_STRING is required when DATABASE_DRIVER=postgres")
	ErrUnknownDatabaseDriver   = errors.New("unknown DATABASE_DRIVER")
	ErrUnknownSessionStore     = errors.New("unknown SESSION_STORE")
	ErrUnknownEnvironment      = errors.New("APP_ENV must be development, test or production")
)

type Config struct {
	Env        string
	Port       int
	APIVersion string

	Log       LogConfig
	Database  DatabaseConfig
	DynamoDB  DynamoDBConfig
	LLM       LLMConfig
	RateLimit RateLimitConfig
	Estimate  EstimateConfig

	APIKeyRequired bool
	NATSURL        string
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	Driver           string
	ConnectionString string
	SQLitePath       string
	SessionStore     string
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	EstimatesTable  string
	ItemsTable      string
	QuestionsTable  string
}

type LLMConfig struct {
	BaseURL            string
	APIKey             string
	ChatModel          string
	EmbeddingModel     string
	EmbeddingDimension int
	// EmbedInterval is waited between bulk embedding calls.
	EmbedInterval      time.Duration
}

// Enabled reports whether an LLM provider has been configured.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type EstimateConfig struct {
	TTL             time.Duration
	DefaultCategory string
}

// Load builds a Config from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Env:        getenvDefault("APP_ENV", "development"),
		Port:       getenvInt("PORT", 8080),
		APIVersion: getenvDefault("API_VERSION", "v1"),
		Log: LogConfig{
			Level:  getenvDefault("LOG_LEVEL", "info"),
			Format: getenvDefault("LOG_FORMAT", "text"),
		},
		Database: DatabaseConfig{
			Driver:           strings.ToLower(getenvDefault("DATABASE_DRIVER", DriverPostgres)),
			ConnectionString: os.Getenv("POSTGRES_CONNECTION_STRING"),
			SQLitePath:       getenvDefault("SQLITE_PATH", "estimate_agent.db"),
			SessionStore:     strings.ToLower(getenvDefault("SESSION_STORE", SessionStoreSQL)),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			EstimatesTable:  getenvDefault("ESTIMATES_TABLE", "estimates"),
			ItemsTable:      getenvDefault("ESTIMATE_ITEMS_TABLE", "estimate_items"),
			QuestionsTable:  getenvDefault("ESTIMATE_QUESTIONS_TABLE", "estimate_questions"),
		},
		LLM: LLMConfig{
			BaseURL:            getenvDefault("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
			APIKey:             firstNonEmpty(os.Getenv("LLM_API_KEY"), os.Getenv("GEMINI_API_KEY")),
			ChatModel:          getenvDefault("LLM_CHAT_MODEL", "gemini-1.5-pro-latest"),
			EmbeddingModel:     getenvDefault("LLM_EMBEDDING_MODEL", "text-embedding-004"),
			EmbeddingDimension: getenvInt("EMBEDDING_DIMENSION", 768),
			EmbedInterval:      time.Duration(getenvInt("EMBED_INTERVAL_MS", 1000)) * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			Max:    getenvInt("API_RATE_LIMIT", 100),
			Window: time.Duration(getenvInt("API_RATE_LIMIT_WINDOW_MS", 900000)) * time.Millisecond,
		},
		Estimate: EstimateConfig{
			TTL:             time.Duration(getenvInt("ESTIMATE_TTL_HOURS", 168)) * time.Hour,
			DefaultCategory: getenvDefault("DEFAULT_CATEGORY", "CRM"),
		},
		APIKeyRequired: getenvBool("API_KEY_REQUIRED", false),
		NATSURL:        os.Getenv("NATS_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case "development", "test", "production":
	default:
		return ErrUnknownEnvironment
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.ConnectionString == "" {
			return ErrMissingConnectionString
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDatabaseDriver, c.Database.Driver)
	}

	switch c.Database.SessionStore {
	case SessionStoreSQL, SessionStoreDynamoDB:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSessionStore, c.Database.SessionStore)
	}

	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("API_RATE_LIMIT and API_RATE_LIMIT_WINDOW_MS must be positive")
	}
	if c.LLM.EmbeddingDimension <= 0 {
		return errors.New("EMBEDDING_DIMENSION must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
