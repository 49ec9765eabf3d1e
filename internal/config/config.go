package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI. An empty API key is not a startup error: the assistant
	// endpoint reports a configuration error at request time instead.
	GeminiAPIKey         string
	GeminiModel          string
	GeminiConcurrentReqs int

	// Reservation form backend
	FormEndpoint string

	// Frontend
	FrontendURL string

	// Assistant rate limit (requests per minute per IP)
	ChatRateLimit int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:         getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		FormEndpoint:         getEnvOrDefault("FORM_ENDPOINT", "https://donde-nando-grill.netlify.app/"),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		ChatRateLimit:        getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 10),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
