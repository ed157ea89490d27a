package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. Required
// values are checked once at load time so a misconfigured deployment dies
// at startup instead of failing per request.
type Config struct {
	// OpenAIAPIKey authenticates the completion service calls. Required.
	OpenAIAPIKey string
	// OpenAIModel selects the completion model.
	OpenAIModel string
	// MongoURI is the document store connection string. Required.
	MongoURI string
	// MongoDatabase is the database holding the diagnosis history.
	MongoDatabase string
	// Port the HTTP server listens on.
	Port string
	// AppEnv selects the logger mode ("prod" for JSON output).
	AppEnv string
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DB", "pulsenet_db"),
		Port:          getEnv("PORT", "8080"),
		AppEnv:        getEnv("APP_ENV", "development"),
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI must be set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
