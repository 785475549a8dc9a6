package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Server
	Port     string
	LogLevel string // debug, info, warn, error

	// Ark API
	APIKey     string
	ChatModel  string
	ImageModel string
	BaseURL    string

	// Step timeouts
	ArticleTimeout time.Duration
	ImageTimeout   time.Duration
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		Port:           getEnvOrDefault("ARTICLEFORGE_PORT", "8080"),
		LogLevel:       getEnvOrDefault("ARTICLEFORGE_LOG_LEVEL", "info"),
		APIKey:         os.Getenv("ARK_API_KEY"),
		ChatModel:      os.Getenv("ARK_MODEL"),
		ImageModel:     os.Getenv("ARK_IMAGE_MODEL"),
		BaseURL:        os.Getenv("ARK_BASE_URL"),
		ArticleTimeout: getEnvDurationOrDefault("ARTICLEFORGE_ARTICLE_TIMEOUT", 5*time.Minute),
		ImageTimeout:   getEnvDurationOrDefault("ARTICLEFORGE_IMAGE_TIMEOUT", time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIKey == "" || c.APIKey == "your_api_key_here" {
		return fmt.Errorf("ARK_API_KEY is required")
	}
	if c.ChatModel == "" {
		return fmt.Errorf("ARK_MODEL is required (an ep- inference endpoint ID)")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
