package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Upload   UploadConfig
	CORS     CORSConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

// DatabaseConfig holds either a full connection URL or the individual
// parts used to build one when DATABASE_URL is not set.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	Secret        string
	AdminUsername string
	AdminPassword string
	TokenTTL      time.Duration
}

type UploadConfig struct {
	Dir string
}

type CORSConfig struct {
	Origins []string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", ""),
		},
		Auth: AuthConfig{
			Secret:        getEnv("SECRET_KEY", ""),
			AdminUsername: getEnv("ADMIN_USERNAME", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			TokenTTL:      30 * time.Minute,
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" && (c.Database.User == "" || c.Database.Name == "") {
		return fmt.Errorf("DATABASE_URL or DB_USER/DB_NAME is required")
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}

	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
