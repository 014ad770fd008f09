package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/querysphere-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string     `env:"SERVER_ADDR,notEmpty"`
	CORSCfg    CORSConfig `envPrefix:"CORS_"`

	// Database configuration
	DatabaseURL         string               `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int                  `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int                  `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration        `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration        `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration        `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectRetry      pkgRetry.RetryConfig `envPrefix:"DB_CONNECT_RETRY_"`
	MigrationsPath      string               `env:"MIGRATIONS_PATH" envDefault:"file://internal/repository/migrations"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Chat rendering configuration
	ChatCfg ChatConfig `envPrefix:"CHAT_"`

	// Metered UniOffice key; DOCX export answers 501 without it
	UniofficeLicenseKey string `env:"UNIOFFICE_LICENSE_KEY"`

	// Document references configuration
	ReferencesCfg ReferencesConfig `envPrefix:"REFERENCES_"`

	// Example prompts for the empty chat state (loaded from JSON file)
	ExamplePrompts []string

	// Environment (set from flag, not from env var)
	Environment string
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type ChatConfig struct {
	// MarkerBase is the number the chat backend writes for the first source.
	MarkerBase       int    `env:"MARKER_BASE" envDefault:"0"`
	MaxContentLength int    `env:"MAX_CONTENT_LENGTH" envDefault:"200000"`
	MaxSources       int    `env:"MAX_SOURCES" envDefault:"100"`
	MaxRequestSize   int64  `env:"MAX_REQUEST_SIZE" envDefault:"1048576"`
	PromptsFile      string `env:"PROMPTS_FILE" envDefault:"internal/config/example_prompts.json"`
}

type ReferencesConfig struct {
	CacheTTL             time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	CacheCleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"10m"`
}

// examplePrompts represents the structure of example_prompts.json
type examplePrompts struct {
	Prompts []string `json:"prompts"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := loadExamplePrompts(cfg, cfg.ChatCfg.PromptsFile); err != nil {
		return nil, fmt.Errorf("load example prompts: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if err := cfg.DBConnectRetry.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("DB_CONNECT_RETRY: %v", err))
	}

	// Validate chat configuration
	if cfg.ChatCfg.MarkerBase != 0 && cfg.ChatCfg.MarkerBase != 1 {
		errors = append(errors, fmt.Sprintf("CHAT_MARKER_BASE must be 0 or 1, got %d", cfg.ChatCfg.MarkerBase))
	}

	if cfg.ChatCfg.MaxContentLength < 1 {
		errors = append(errors, fmt.Sprintf("CHAT_MAX_CONTENT_LENGTH must be positive, got %d", cfg.ChatCfg.MaxContentLength))
	}

	if cfg.ChatCfg.MaxSources < 0 || cfg.ChatCfg.MaxSources > 1000 {
		errors = append(errors, fmt.Sprintf("CHAT_MAX_SOURCES must be between 0 and 1000, got %d", cfg.ChatCfg.MaxSources))
	}

	if cfg.ChatCfg.MaxRequestSize < 1 {
		errors = append(errors, fmt.Sprintf("CHAT_MAX_REQUEST_SIZE must be positive, got %d", cfg.ChatCfg.MaxRequestSize))
	}

	if cfg.ReferencesCfg.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("REFERENCES_CACHE_TTL must not be negative, got %s", cfg.ReferencesCfg.CacheTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

var defaultExamplePrompts = []string{
	"How do I use a RecursiveUrlLoader to load content from a page?",
	"What is LangChain Expression Language?",
	"What are some ways of doing retrieval augmented generation?",
	"How do I run a model locally?",
}

func loadExamplePrompts(cfg *Config, path string) error {
	path = filepath.Clean(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("Warning: example prompts file not found at %s, using default prompts\n", path)
		cfg.ExamplePrompts = defaultExamplePrompts
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read example prompts file: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("example prompts file is empty: %s", path)
	}

	var promptsData examplePrompts
	if err := json.Unmarshal(data, &promptsData); err != nil {
		return fmt.Errorf("parse example prompts JSON: %w", err)
	}

	if len(promptsData.Prompts) == 0 {
		return fmt.Errorf("example prompts file contains no prompts: %s", path)
	}

	cfg.ExamplePrompts = promptsData.Prompts

	fmt.Printf("Loaded %d example prompts from %s\n", len(cfg.ExamplePrompts), path)
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
