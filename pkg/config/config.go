package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	FirestoreProject string
	Environment      string
	JWTSecret        string
	JWTExpiry        int64
	AdminAPIKey      string
	UploadDir        string
	ClientURL        string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		Environment:      getEnv("ENVIRONMENT", "development"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key"),
		JWTExpiry:        getEnvAsInt64("JWT_EXPIRY", 7*24*60*60), // 7 days
		AdminAPIKey:      getEnv("ADMIN_API_KEY", ""),
		UploadDir:        getEnv("UPLOAD_DIR", "./public/uploads"),
		ClientURL:        getEnv("CLIENT_URL", "http://localhost:3000"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
