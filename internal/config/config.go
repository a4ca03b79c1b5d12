package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment
type Config struct {
	Port                    string
	DatabaseURL             string
	RedisURL                string
	FirebaseCredentialsPath string
	DefaultLanguage         string
	AppURL                  string
	Env                     string
}

// Load reads .env (if present) and the process environment
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv reads the process environment without touching .env
func FromEnv() Config {
	return Config{
		Port:                    getEnv("PORT", "8080"),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		RedisURL:                os.Getenv("REDIS_URL"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json"),
		DefaultLanguage:         getEnv("DEFAULT_LANGUAGE", "en"),
		AppURL:                  getEnv("APP_URL", "http://localhost:8080"),
		Env:                     getEnv("ENV", "development"),
	}
}

// IsProduction reports whether the server runs in production mode
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
