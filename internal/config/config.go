package config

import (
	"os"
	"strconv"

	"idle_garden/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DatabaseURL    string
	JWTSecret      string
	GoogleClientID string
	DevMode        bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel string
	LogJSON  bool

	// Request limits
	APIRateLimit   int
	APIRateWindow  int
	GameRateLimit  int
	GameRateWindow int
}

// Load reads configuration from the environment (.env is honored when present).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	devMode := os.Getenv("DEV_MODE") == "true"

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	if googleClientID == "" && !devMode {
		logger.Fatal("GOOGLE_CLIENT_ID is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:        port,
		DatabaseURL:    dbURL,
		JWTSecret:      jwtSecret,
		GoogleClientID: googleClientID,
		DevMode:        devMode,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		APIRateLimit:   envInt("API_RATE_LIMIT", 60),
		APIRateWindow:  envInt("API_RATE_WINDOW_SECONDS", 60),
		GameRateLimit:  envInt("GAME_RATE_LIMIT", 120),
		GameRateWindow: envInt("GAME_RATE_WINDOW_SECONDS", 60),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
