package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Llm      LlmConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type LlmConfig struct {
	ApiKey          string
	GatewayBaseURL  string
	DefaultProvider string
	DefaultModel    string
	MaxTokens       int
}

type UploadConfig struct {
	Dir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Llm: LlmConfig{
			ApiKey:          getEnv("LLM_API_KEY", ""),
			GatewayBaseURL:  getEnv("LLM_GATEWAY_BASE_URL", "https://api.llm-gateway.local/v1"),
			DefaultProvider: getEnv("LLM_DEFAULT_PROVIDER", "anthropic"),
			DefaultModel:    getEnv("LLM_DEFAULT_MODEL", "claude-sonnet-4-20250514"),
			MaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 2048),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "/tmp/uploads"),
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
