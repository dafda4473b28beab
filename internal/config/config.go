package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Keys    APIKeys
	Ai      AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type CatalogConfig struct {
	Path  string
	Watch bool
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	Provider       string // "gemini" or "ollama"
	Model          string // e.g. "gemini-2.5-flash", "llama3"
	OllamaBaseURL  string
	TimeoutSeconds int // per-request budget for the generation call
	CacheTTLSecs   int // reply cache TTL; 0 disables caching
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Catalog: CatalogConfig{
			Path:  getEnv("CATALOG_CSV_PATH", "data/item_data.csv"),
			Watch: getEnv("CATALOG_WATCH", "true") == "true",
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			Provider:       getEnv("LLM_PROVIDER", "gemini"),
			Model:          getEnv("LLM_MODEL", "gemini-2.5-flash"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 45),
			CacheTTLSecs:   getEnvAsInt("REPLY_CACHE_TTL_SECONDS", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
