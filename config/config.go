package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, loaded once at startup.
type Config struct {
	Port        int
	MongoURL    string
	DBName      string
	JWTSecret   string
	CORSOrigins []string
	Debug       bool
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	return &Config{
		Port:        port,
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "csm"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		Debug:       getEnv("GIN_MODE", "debug") == "debug",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
