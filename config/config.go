package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/camden-git/totenbilder/database"
)

const (
	DefaultImageBaseURL       = "https://totenbilder.at/sites/default/files/totenbilder/"
	DefaultPlaceholderURL     = "https://placehold.co/400x600/eee/555?text="
	DefaultCORSAllowedOrigins = "http://localhost:3000"
)

const (
	defaultPort            = "8080"
	defaultMySQLPort       = "3306"
	defaultSessionTTL      = 24 * time.Hour
	defaultRecordCacheSize = 256
	defaultRecordCacheTTL  = 5 * time.Minute
)

type Config struct {
	// database; an empty DSN means the archive runs without a database
	DBDriver     string
	DBDSN        string
	MaxOpenConns int

	Port string

	// image URL resolution
	ImageBaseURL   string
	PlaceholderURL string

	// administrator sessions
	SessionSecret []byte
	SessionTTL    time.Duration
	CookieSecure  bool

	CORSAllowedOrigins []string

	// single-record lookup cache, size 0 disables it
	RecordCacheSize int
	RecordCacheTTL  time.Duration

	LogLevel  string
	LogFormat string
}

// DatabaseConfigured reports whether a database connection was configured.
func (c Config) DatabaseConfigured() bool {
	return c.DBDSN != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvDurationOrDefault(envVar string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %s. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %t. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// databaseSettings derives the driver and DSN. MySQL is enabled by DB_HOST,
// sqlite3 by DATABASE_PATH; with neither set the DSN stays empty.
func databaseSettings() (driver, dsn string, err error) {
	driver = getEnvOrDefault("DB_DRIVER", database.DriverMySQL)
	switch driver {
	case database.DriverMySQL:
		host := os.Getenv("DB_HOST")
		if host == "" {
			return driver, "", nil
		}
		dsn = database.MySQLDSN(
			host,
			getEnvOrDefault("DB_PORT", defaultMySQLPort),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
		)
		return driver, dsn, nil
	case database.DriverSQLite:
		return driver, os.Getenv("DATABASE_PATH"), nil
	default:
		return "", "", fmt.Errorf("unsupported DB_DRIVER '%s'", driver)
	}
}

func sessionSecret() ([]byte, error) {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s), nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	log.Printf("Warning: SESSION_SECRET not set, sessions will not survive a restart")
	return []byte(hex.EncodeToString(buf)), nil
}

func LoadConfig() (Config, error) {
	driver, dsn, err := databaseSettings()
	if err != nil {
		return Config{}, err
	}

	secret, err := sessionSecret()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBDriver:           driver,
		DBDSN:              dsn,
		MaxOpenConns:       getEnvIntOrDefault("DB_MAX_OPEN_CONNS", database.DefaultMaxOpenConns),
		Port:               getEnvOrDefault("PORT", defaultPort),
		ImageBaseURL:       getEnvOrDefault("IMAGE_BASE_URL", DefaultImageBaseURL),
		PlaceholderURL:     getEnvOrDefault("PLACEHOLDER_IMAGE_URL", DefaultPlaceholderURL),
		SessionSecret:      secret,
		SessionTTL:         getEnvDurationOrDefault("SESSION_TTL", defaultSessionTTL),
		CookieSecure:       getEnvBoolOrDefault("COOKIE_SECURE", false),
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", DefaultCORSAllowedOrigins)),
		RecordCacheSize:    getEnvIntOrDefault("RECORD_CACHE_SIZE", defaultRecordCacheSize),
		RecordCacheTTL:     getEnvDurationOrDefault("RECORD_CACHE_TTL", defaultRecordCacheTTL),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "json"),
	}
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = database.DefaultMaxOpenConns
	}

	return cfg, nil
}
