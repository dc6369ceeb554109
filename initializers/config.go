package initializers

import (
	"os"
	"strings"
)

type Config struct {
	Port              string
	APIBaseURL        string
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	AllowedOrigins    []string
	MockBackend       bool
}

func LoadConfig() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:5000/api"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		MockBackend:       getEnv("MOCK_BACKEND", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
