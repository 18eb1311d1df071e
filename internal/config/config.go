// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	JWT      JWTConfig
	Study    StudyConfig
	Accounts []Account
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// StudyConfig holds study policy settings
type StudyConfig struct {
	// MaskForbidden reproduces the legacy behavior of answering study and
	// stats requests on forbidden or unknown dictionaries with empty
	// bodies instead of 403/404
	MaskForbidden bool
	// MaxCommonWords caps the common-word enrichment per character
	MaxCommonWords int
}

// Account is one configured login, declared as username:bcryptHash
type Account struct {
	Username     string
	PasswordHash string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		// If no valid origins found, default to allow all
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = jwtSecret

	// Access token expiry (default: 1 hour)
	accessExpiryStr := os.Getenv("JWT_ACCESS_TOKEN_EXPIRY")
	if accessExpiryStr == "" {
		accessExpiryStr = "1h"
	}
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY: %w", err)
	}
	cfg.JWT.AccessTokenExpiry = accessExpiry

	// Accounts configuration: comma-separated username:bcryptHash pairs
	accountsStr := os.Getenv("ACCOUNTS")
	if accountsStr == "" {
		return nil, fmt.Errorf("ACCOUNTS is required")
	}
	accounts, err := parseAccounts(accountsStr)
	if err != nil {
		return nil, err
	}
	cfg.Accounts = accounts

	// Study policy configuration
	maskStr := os.Getenv("STUDY_MASK_FORBIDDEN")
	if maskStr == "" {
		maskStr = "true" // legacy masking behavior by default
	}
	mask, err := strconv.ParseBool(maskStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STUDY_MASK_FORBIDDEN: %w", err)
	}
	cfg.Study.MaskForbidden = mask

	maxWordsStr := os.Getenv("MAX_COMMON_WORDS")
	if maxWordsStr == "" {
		maxWordsStr = "10" // default
	}
	maxWords, err := strconv.Atoi(maxWordsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_COMMON_WORDS: %w", err)
	}
	cfg.Study.MaxCommonWords = maxWords

	return cfg, nil
}

// parseAccounts parses comma-separated username:bcryptHash pairs
func parseAccounts(value string) ([]Account, error) {
	pairs := strings.Split(value, ",")
	accounts := make([]Account, 0, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		username, hash, ok := strings.Cut(pair, ":")
		if !ok || username == "" || hash == "" {
			return nil, fmt.Errorf("invalid ACCOUNTS entry: %q", pair)
		}
		accounts = append(accounts, Account{Username: username, PasswordHash: hash})
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("ACCOUNTS must declare at least one account")
	}
	return accounts, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}
