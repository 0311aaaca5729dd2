package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      *AppConfig
	Database *DatabaseConfig
	Redis    *RedisConfig
	Security *SecurityConfig
	Logger   *LoggerConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
	Host        string
	Debug       bool
}

type SecurityConfig struct {
	JWTSecret          string
	JWTTokenTTL        time.Duration
	ResetTokenTTL      time.Duration
	CORSAllowedOrigins string
}

type LoggerConfig struct {
	Level  string
	Format string // json, text
	Output string // stdout, stderr, file path
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		App: &AppConfig{
			Name:        getEnv("APP_NAME", "campusride"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnvAsInt("APP_PORT", 8080),
			Host:        getEnv("APP_HOST", "0.0.0.0"),
			Debug:       getEnvAsBool("APP_DEBUG", false),
		},
		Database: loadDatabaseConfig(),
		Redis:    loadRedisConfig(),
		Security: &SecurityConfig{
			JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
			JWTTokenTTL:        getEnvAsDuration("JWT_TOKEN_TTL", 24*time.Hour),
			ResetTokenTTL:      getEnvAsDuration("RESET_TOKEN_TTL", 15*time.Minute),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Logger: &LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
