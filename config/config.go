package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	App    AppConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string `validate:"required,numeric"`
}

// StoreConfig points at the remote proposals store
type StoreConfig struct {
	BaseURL      string        `validate:"required,url"`
	APIKey       string        `validate:"required"`
	Token        string        // optional default bearer token, falls back to APIKey
	ResourcePath string        `validate:"required,startswith=/"`
	Timeout      time.Duration `validate:"gt=0"`
}

type AppConfig struct {
	Environment string `validate:"oneof=development staging production"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	Version     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Store: StoreConfig{
			BaseURL:      getEnv("SUPABASE_URL", ""),
			APIKey:       getEnv("SUPABASE_ANON_KEY", ""),
			Token:        getEnv("SUPABASE_TOKEN", ""),
			ResourcePath: getEnv("PROPOSALS_PATH", "/rest/v1/proposals"),
			Timeout:      getEnvAsDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config %s: failed %q check", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// BearerToken is the token used when a caller brings none of its own
func (s StoreConfig) BearerToken() string {
	if s.Token != "" {
		return s.Token
	}
	return s.APIKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("15s") or a plain number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}

	log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
