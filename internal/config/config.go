package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// OpenAI configuration
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIEmbedModel string

	// Qdrant configuration
	QdrantHost       string
	QdrantPort       int
	QdrantCollection string

	// Retrieval configuration
	SearchLimit   int
	ContextBudget int
	MaxPromptSize int

	// Generation configuration
	GenMaxAttempts    int
	GenTimeoutSeconds int
	GenTemperature    float64
	GenMaxTokens      int
	DefaultLanguage   string
}

// LoadConfig loads configuration from environment variables and command-line flags
// Flags take precedence over environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// Define flags
	serverPort := flag.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	openAIKey := flag.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIModel := flag.String("openai-model", getEnv("OPENAI_MODEL", "gpt-4.1-mini"), "OpenAI model for chat completions")
	openAIEmbedModel := flag.String("openai-embed-model", getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-large"), "OpenAI model for embeddings")
	qdrantHost := flag.String("qdrant-host", getEnv("QDRANT_HOST", "localhost"), "Qdrant host")
	qdrantPort := flag.Int("qdrant-port", getEnvAsInt("QDRANT_PORT", 6334), "Qdrant gRPC port (default: 6334)")
	qdrantCollection := flag.String("qdrant-collection", getEnv("QDRANT_COLLECTION", "legal-precedents"), "Qdrant collection name")
	searchLimit := flag.Int("search-limit", getEnvAsInt("SEARCH_LIMIT", 5), "Number of passages to retrieve per query")
	contextBudget := flag.Int("context-budget", getEnvAsInt("CONTEXT_BUDGET", 4000), "Character budget for assembled context")
	maxPromptSize := flag.Int("max-prompt-size", getEnvAsInt("MAX_PROMPT_SIZE", 12000), "Hard ceiling on prompt size in bytes")
	genMaxAttempts := flag.Int("gen-max-attempts", getEnvAsInt("GEN_MAX_ATTEMPTS", 3), "Generation attempts before giving up")
	genTimeout := flag.Int("gen-timeout", getEnvAsInt("GEN_TIMEOUT_SECONDS", 30), "Per-attempt generation timeout in seconds")
	genTemperature := flag.Float64("gen-temperature", getEnvAsFloat("GEN_TEMPERATURE", 0.3), "Generation temperature")
	genMaxTokens := flag.Int("gen-max-tokens", getEnvAsInt("GEN_MAX_TOKENS", 1024), "Cap on generated answer tokens")
	defaultLanguage := flag.String("default-language", getEnv("DEFAULT_LANGUAGE", "en"), "Default answer language tag")

	flag.Parse()

	// Set config values
	cfg.ServerPort = *serverPort
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIModel = *openAIModel
	cfg.OpenAIEmbedModel = *openAIEmbedModel
	cfg.QdrantHost = *qdrantHost
	cfg.QdrantPort = *qdrantPort
	cfg.QdrantCollection = *qdrantCollection
	cfg.SearchLimit = *searchLimit
	cfg.ContextBudget = *contextBudget
	cfg.MaxPromptSize = *maxPromptSize
	cfg.GenMaxAttempts = *genMaxAttempts
	cfg.GenTimeoutSeconds = *genTimeout
	cfg.GenTemperature = *genTemperature
	cfg.GenMaxTokens = *genMaxTokens
	cfg.DefaultLanguage = *defaultLanguage

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the loaded values before any client is constructed.
func (cfg *Config) validate() error {
	if cfg.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required (set via environment variable or -openai-key flag)")
	}
	if cfg.SearchLimit < 1 {
		return fmt.Errorf("SEARCH_LIMIT must be at least 1, got %d", cfg.SearchLimit)
	}
	if cfg.ContextBudget <= 0 {
		return fmt.Errorf("CONTEXT_BUDGET must be positive, got %d", cfg.ContextBudget)
	}
	if cfg.MaxPromptSize <= cfg.ContextBudget {
		return fmt.Errorf("MAX_PROMPT_SIZE (%d) must exceed CONTEXT_BUDGET (%d)", cfg.MaxPromptSize, cfg.ContextBudget)
	}
	if cfg.GenMaxAttempts < 1 {
		return fmt.Errorf("GEN_MAX_ATTEMPTS must be at least 1, got %d", cfg.GenMaxAttempts)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
