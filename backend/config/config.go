package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	// Serendipity fraction of the recommendation feed, effective range
	// [0, 0.5].
	RecoRandomRatio float64

	AIEndpoint string
	AIModel    string
	AIAPIKey   string

	UploadDir string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "braingrow"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		RecoRandomRatio: getEnvFloat("RECO_RANDOM_RATIO", 0.15),
		AIEndpoint:      getEnv("AI_ENDPOINT", "https://aiplatform.googleapis.com/v1/answer"),
		AIModel:         getEnv("AI_MODEL", "gemini-2.5-flash-lite"),
		AIAPIKey:        getEnv("AI_API_KEY", ""),
		UploadDir:       getEnv("UPLOAD_DIR", "static/uploads"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid float for %s: %q, using default %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}
