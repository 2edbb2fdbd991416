// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	JWTSecretKey string
	GroqAPIKey   string
	GroqBaseURL  string
	// The chat model used for both classification and detail resolution.
	GroqModel           string
	ConfidenceThreshold float64
	DatabasePath        string
	AllowedOrigin       string
	Environment         string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		GroqAPIKey:          getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:         getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:           getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		ConfidenceThreshold: getEnvAsFloat("CONFIDENCE_THRESHOLD", 0.6),
		DatabasePath:        getEnv("DATABASE_PATH", "pharma_assist.db"),
		AllowedOrigin:       getEnv("ALLOWED_ORIGIN", "*"),
		Environment:         env,
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if cfg.GroqAPIKey == "" {
			missing = append(missing, "GROQ_API_KEY")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsFloat gets an env var as a float, with a fallback.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as float. Using default value.", key)
		return defaultValue
	}
	return floatValue
}
