package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	LLM      LLMConfig
	Match    MatchConfig
	Store    StoreConfig
	Server   ServerConfig
	Pipeline PipelineConfig
}

// LLMConfig holds generation-backend configuration
type LLMConfig struct {
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// MatchConfig holds name-matching configuration
type MatchConfig struct {
	// Threshold is the minimum similarity score (0..1) for a bigram to be
	// accepted as a known recipient.
	Threshold float64
}

// StoreConfig holds record-store configuration
type StoreConfig struct {
	DBPath string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// PipelineConfig holds pipeline-wide inputs loaded at process start
type PipelineConfig struct {
	RecipientsFile string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			BaseURL:     getEnv("OLLAMA_URL", "http://localhost:11434"),
			Model:       getEnv("MODEL_NAME", "gemma:2b"),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 120*time.Second),
		},
		Match: MatchConfig{
			Threshold: getEnvAsFloat64("MATCH_THRESHOLD", 0.75),
		},
		Store: StoreConfig{
			DBPath: getEnv("DB_PATH", "./labelextract.db"),
		},
		Server: ServerConfig{
			Addr: getEnv("HTTP_ADDR", ":8888"),
		},
		Pipeline: PipelineConfig{
			RecipientsFile: getEnv("RECIPIENTS_FILE", "./recipients.yaml"),
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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
	if c.LLM.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_URL is required", ErrInvalidInput)
	}
	if c.LLM.Model == "" {
		return NewAppError("CONFIG_ERROR", "MODEL_NAME is required", ErrInvalidInput)
	}
	if c.Match.Threshold <= 0 || c.Match.Threshold > 1 {
		return NewAppError("CONFIG_ERROR", "MATCH_THRESHOLD must be in (0, 1]", ErrInvalidInput)
	}
	return nil
}
