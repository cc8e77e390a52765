package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config - all environment values, read once at startup and read-only after
type Config struct {
	// Gemini API
	GeminiAPIKeys []string
	TextModel     string
	ImageModel    string

	// Server
	Port           string
	AllowedOrigins string
}

// LoadConfig - load environment variables (.env supported for local runs)
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	cfg := &Config{
		GeminiAPIKeys:  splitKeys(getEnv("GEMINI_API_KEYS", os.Getenv("GEMINI_API_KEY"))),
		TextModel:      getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		ImageModel:     getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Text model: %s", cfg.TextModel)
	log.Printf("   Image model: %s", cfg.ImageModel)
	log.Printf("   API keys: %d", len(cfg.GeminiAPIKeys))

	return cfg, nil
}

// validate - required environment variables
func (c *Config) validate() error {
	if len(c.GeminiAPIKeys) == 0 {
		return fmt.Errorf("GEMINI_API_KEYS (or GEMINI_API_KEY) is required")
	}
	if c.TextModel == "" {
		return fmt.Errorf("GEMINI_TEXT_MODEL is required")
	}
	if c.ImageModel == "" {
		return fmt.Errorf("GEMINI_IMAGE_MODEL is required")
	}
	return nil
}

// splitKeys - comma-separated key list, blanks removed
func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// getEnv - environment variable with default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
