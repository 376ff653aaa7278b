package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv           string
	BackendURL       string
	HTTPTimeout      time.Duration
	SessionDir       string
	ChatPollInterval time.Duration
	StartingBalance  float64

	// Dev stub server settings.
	Port          string
	JWTSecret     string
	JWTExpiry     string
	UploadDir     string
	MaxUploadSize int64
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	startingBalance, err := strconv.ParseFloat(os.Getenv("STARTING_BALANCE"), 64)
	if err != nil || startingBalance < 0 {
		startingBalance = 98323
	}

	AppConfig = &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		BackendURL:       getEnv("BACKEND_URL", "http://localhost:8082"),
		HTTPTimeout:      getDuration("HTTP_TIMEOUT", 15*time.Second),
		SessionDir:       getEnv("SESSION_DIR", defaultSessionDir()),
		ChatPollInterval: getDuration("CHAT_POLL_INTERVAL", 5*time.Second),
		StartingBalance:  startingBalance,
		Port:             getEnv("APP_PORT", getEnv("PORT", "8082")),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		JWTExpiry:        getEnv("JWT_EXPIRY", "24h"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:    maxUploadSize,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".farm-market"
	}
	return filepath.Join(home, ".farm-market")
}
