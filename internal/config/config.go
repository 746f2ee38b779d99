package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Telegram
	BotToken string

	// Database
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	DBConnectTimeout int // seconds

	// Application
	AppEnv   string
	LogLevel string

	// Game
	QuestionsPerRound int

	// Rate Limiting
	RateLimitPerChat int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		BotToken:         getEnv("BOT_TOKEN", ""),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "quizbot"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", "quizbot_db"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		DBConnectTimeout: getEnvInt("DB_CONNECT_TIMEOUT", 2),

		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		QuestionsPerRound: getEnvInt("QUESTIONS_PER_ROUND", 5),

		RateLimitPerChat: getEnvInt("RATE_LIMIT_PER_CHAT", 20),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.DBConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive")
	}
	if c.QuestionsPerRound <= 0 {
		return fmt.Errorf("QUESTIONS_PER_ROUND must be positive")
	}
	return nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode, c.DBConnectTimeout,
	)
}

func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.DBConnectTimeout) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
